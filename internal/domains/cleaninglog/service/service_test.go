package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bedboard/config"
	"bedboard/infras/otel/mocks"
	"bedboard/internal/domains/cleaninglog/model"
	repoMocks "bedboard/internal/domains/cleaninglog/repository/mocks"
	"bedboard/internal/domains/cleaninglog/service"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/failure"
	"bedboard/shared/timezone"
)

func newCleaningServiceFixture(t *testing.T) (*repoMocks.MockCleaningLog, service.CleaningLog) {
	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockCleaningLog(ctrl)

	cfg := &config.Config{}
	cfg.Cleaning.DefaultDurationMinutes = 30

	return repo, service.New(repo, cfg, mocks.NewOtel())
}

func openEpisode(bedID string, startedAgo time.Duration, estimated int) model.CleaningLog {
	start := timezone.Now().Add(-startedAgo)
	assignedTo := "cleaner-1"

	return model.CleaningLog{
		ID:                "episode-" + bedID,
		BedID:             bedID,
		Ward:              constant.WardICU,
		StartTime:         start,
		EstimatedDuration: estimated,
		Status:            model.StatusInProgress,
		AssignedTo:        &assignedTo,
	}
}

func TestCleaningLogService_OpenEpisode(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	req := service.OpenEpisodeRequest{
		BedID:             "bed-1",
		Ward:              constant.WardICU,
		StartTime:         timezone.Now(),
		EstimatedDuration: 45,
		AssignedTo:        "cleaner-1",
	}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry model.CleaningLog) error {
			assert.Equal(t, req.BedID, entry.BedID)
			assert.Equal(t, req.Ward, entry.Ward)
			assert.Equal(t, req.EstimatedDuration, entry.EstimatedDuration)
			assert.Equal(t, model.StatusInProgress, entry.Status)
			require.NotNil(t, entry.AssignedTo)
			assert.Equal(t, "cleaner-1", *entry.AssignedTo)

			return nil
		})

	err := svc.OpenEpisode(context.Background(), req)

	require.NoError(t, err)
}

func TestCleaningLogService_OpenEpisode_AlreadyOpen(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

	err := svc.OpenEpisode(context.Background(), service.OpenEpisodeRequest{
		BedID:             "bed-1",
		Ward:              constant.WardICU,
		StartTime:         timezone.Now(),
		EstimatedDuration: 30,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCleaningLogService_CloseEpisode(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	episode := openEpisode("bed-1", 25*time.Minute, 30)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(episode, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
			assert.Equal(t, "cleaner-2", fields[model.FieldCompletedBy])
			assert.NotNil(t, fields[model.FieldEndTime])

			return nil
		})

	res, err := svc.CloseEpisode(context.Background(), "bed-1", "cleaner-2", nil)

	require.NoError(t, err)
	assert.Equal(t, episode.ID, res.ID)
	assert.Equal(t, model.StatusCompleted, res.Status)
	require.NotNil(t, res.ActualDuration)
	assert.InDelta(t, 25, *res.ActualDuration, 1)
	require.NotNil(t, res.CompletedBy)
	assert.Equal(t, "cleaner-2", *res.CompletedBy)
	assert.NotNil(t, res.EndTime)
}

func TestCleaningLogService_CloseEpisode_NoOpenEpisode(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CleaningLog{}, nil)

	_, err := svc.CloseEpisode(context.Background(), "bed-1", "cleaner-2", nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCleaningLogService_Queue_OverdueFirst(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	// started first but still within estimate
	onTrack := openEpisode("bed-1", 10*time.Minute, 30)
	// started later but already past its estimate
	overdue := openEpisode("bed-2", 20*time.Minute, 15)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.CleaningLog{onTrack, overdue}, nil)

	res, err := svc.Queue(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, res.Queue, 2)
	assert.Equal(t, overdue.ID, res.Queue[0].ID)
	assert.True(t, res.Queue[0].Overdue)
	assert.Equal(t, model.StatusOverdue, res.Queue[0].Status)
	assert.Equal(t, float64(1), res.Queue[0].Progress)
	assert.Equal(t, onTrack.ID, res.Queue[1].ID)
	assert.False(t, res.Queue[1].Overdue)
	assert.Equal(t, model.StatusInProgress, res.Queue[1].Status)
	assert.InDelta(t, 0.33, res.Queue[1].Progress, 0.05)
}

func TestCleaningLogService_GetHistory(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	completed := openEpisode("bed-1", 2*time.Hour, 30)
	completed.Status = model.StatusCompleted

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.CleaningLog, error) {
			assert.Equal(t, model.FieldStartTime, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.CleaningLog{completed}, nil
		})

	res, err := svc.GetHistory(context.Background(), "bed-1", gDto.QueryParams{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Logs, 1)
	assert.Equal(t, model.StatusCompleted, res.Logs[0].Status)
}

func TestCleaningLogService_SweepOverdue(t *testing.T) {
	repo, svc := newCleaningServiceFixture(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusOverdue, fields[model.FieldStatus])

			return nil
		})

	err := svc.SweepOverdue(context.Background())

	require.NoError(t, err)
}
