package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bedboard/config"
	"bedboard/infras/otel/mocks"
	"bedboard/internal/domains/occupancylog/model"
	repoMocks "bedboard/internal/domains/occupancylog/repository/mocks"
	"bedboard/internal/domains/occupancylog/service"
	"bedboard/shared/timezone"
)

func newOccupancyServiceFixture(t *testing.T) (*repoMocks.MockOccupancyLog, service.OccupancyLog) {
	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockOccupancyLog(ctrl)

	return repo, service.New(repo, &config.Config{}, mocks.NewOtel())
}

func ledgerEntry(bedID, userID, statusChange string, occurredAt time.Time) model.OccupancyLog {
	return model.OccupancyLog{
		ID:           "log-" + statusChange + "-" + occurredAt.Format(time.RFC3339),
		BedID:        bedID,
		UserID:       userID,
		StatusChange: statusChange,
		OccurredAt:   occurredAt,
	}
}

func TestOccupancyLogService_Append(t *testing.T) {
	repo, svc := newOccupancyServiceFixture(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry model.OccupancyLog) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "bed-1", entry.BedID)
			assert.Equal(t, "nurse-1", entry.UserID)
			assert.Equal(t, model.StatusChangeAssigned, entry.StatusChange)
			assert.False(t, entry.OccurredAt.IsZero())

			return nil
		})

	err := svc.Append(context.Background(), "bed-1", "nurse-1", model.StatusChangeAssigned)

	require.NoError(t, err)
}

func TestOccupancyLogService_GetOccupantHistory(t *testing.T) {
	repo, svc := newOccupancyServiceFixture(t)

	base := timezone.Now().Add(-24 * time.Hour)
	entries := []model.OccupancyLog{
		ledgerEntry("bed-1", "nurse-1", model.StatusChangeAssigned, base),
		ledgerEntry("bed-1", "nurse-2", model.StatusChangeReleased, base.Add(6*time.Hour)),
		ledgerEntry("bed-1", "nurse-1", model.StatusChangeMaintenanceEnd, base.Add(7*time.Hour)),
		ledgerEntry("bed-1", "nurse-3", model.StatusChangeAssigned, base.Add(8*time.Hour)),
	}

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)

	res, err := svc.GetOccupantHistory(context.Background(), "bed-1")

	require.NoError(t, err)
	assert.Equal(t, "bed-1", res.BedID)
	require.Len(t, res.Periods, 2)

	closed := res.Periods[0]
	assert.Equal(t, "nurse-1", closed.UserID)
	require.NotNil(t, closed.ReleasedAt)
	require.NotNil(t, closed.Hours)
	assert.InDelta(t, 6, *closed.Hours, 0.01)

	open := res.Periods[1]
	assert.Equal(t, "nurse-3", open.UserID)
	assert.Nil(t, open.ReleasedAt)
	assert.Nil(t, open.Hours)
}

func TestOccupancyLogService_GetOccupantHistory_ReleaseWithoutAssignment(t *testing.T) {
	repo, svc := newOccupancyServiceFixture(t)

	entries := []model.OccupancyLog{
		ledgerEntry("bed-1", "nurse-1", model.StatusChangeReleased, timezone.Now()),
	}

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)

	res, err := svc.GetOccupantHistory(context.Background(), "bed-1")

	require.NoError(t, err)
	assert.Empty(t, res.Periods)
}

func TestOccupancyLogService_LatestAssignments(t *testing.T) {
	repo, svc := newOccupancyServiceFixture(t)

	base := timezone.Now().Add(-12 * time.Hour)
	entries := []model.OccupancyLog{
		ledgerEntry("bed-1", "nurse-1", model.StatusChangeAssigned, base),
		ledgerEntry("bed-1", "nurse-2", model.StatusChangeAssigned, base.Add(4*time.Hour)),
		ledgerEntry("bed-2", "nurse-3", model.StatusChangeAssigned, base.Add(1*time.Hour)),
	}

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(entries, nil)

	res, err := svc.LatestAssignments(context.Background(), []string{"bed-1", "bed-2"})

	require.NoError(t, err)
	assert.Equal(t, base.Add(4*time.Hour), res["bed-1"])
	assert.Equal(t, base.Add(1*time.Hour), res["bed-2"])
}

func TestOccupancyLogService_LatestAssignments_NoBeds(t *testing.T) {
	_, svc := newOccupancyServiceFixture(t)

	res, err := svc.LatestAssignments(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, res)
}
