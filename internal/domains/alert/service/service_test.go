package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bedboard/config"
	"bedboard/infras/otel/mocks"
	"bedboard/internal/domains/alert/model"
	alertRepoMocks "bedboard/internal/domains/alert/repository/mocks"
	"bedboard/internal/domains/alert/service"
	"bedboard/internal/domains/bed/repository"
	bedRepoMocks "bedboard/internal/domains/bed/repository/mocks"
	eventMocks "bedboard/internal/events/mocks"
	"bedboard/shared/constant"
	"bedboard/shared/failure"
	"bedboard/shared/timezone"
)

type alertServiceFixture struct {
	repo      *alertRepoMocks.MockAlert
	bedRepo   *bedRepoMocks.MockBed
	publisher *eventMocks.MockPublisher
	svc       service.Alert
}

func newAlertServiceFixture(t *testing.T) *alertServiceFixture {
	ctrl := gomock.NewController(t)

	f := &alertServiceFixture{
		repo:      alertRepoMocks.NewMockAlert(ctrl),
		bedRepo:   bedRepoMocks.NewMockBed(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Occupancy.AlertThreshold = 0.90
	cfg.Occupancy.CriticalThreshold = 0.95

	f.svc = service.New(f.repo, f.bedRepo, cfg, mocks.NewOtel(), f.publisher)

	return f
}

func TestAlertService_CheckWardOccupancy(t *testing.T) {
	tests := []struct {
		name          string
		counts        repository.WardCount
		activeAlready bool
		wantRaised    bool
		wantSeverity  string
	}{
		{
			name:   "empty ward is a no-op",
			counts: repository.WardCount{Total: 0, Occupied: 0},
		},
		{
			name:   "rate at threshold does not raise",
			counts: repository.WardCount{Total: 10, Occupied: 9},
		},
		{
			name:         "rate at critical threshold raises critical",
			counts:       repository.WardCount{Total: 20, Occupied: 19},
			wantRaised:   true,
			wantSeverity: model.SeverityCritical,
		},
		{
			name:         "rate between thresholds raises high",
			counts:       repository.WardCount{Total: 100, Occupied: 92},
			wantRaised:   true,
			wantSeverity: model.SeverityHigh,
		},
		{
			name:          "active alert deduplicates",
			counts:        repository.WardCount{Total: 100, Occupied: 92},
			activeAlready: true,
			wantSeverity:  model.SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlertServiceFixture(t)

			f.bedRepo.EXPECT().CountByWard(gomock.Any(), constant.WardICU).Return(tt.counts, nil)

			if tt.wantSeverity != "" {
				f.repo.EXPECT().ExistActive(gomock.Any(), model.TypeOccupancyHigh, constant.WardICU).Return(tt.activeAlready, nil)
			}

			if tt.wantRaised {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, alert model.Alert) error {
						assert.Equal(t, model.TypeOccupancyHigh, alert.Type)
						assert.Equal(t, tt.wantSeverity, alert.Severity)
						require.NotNil(t, alert.Ward)
						assert.Equal(t, constant.WardICU, *alert.Ward)
						assert.ElementsMatch(t, []string{constant.RoleManager, constant.RoleHospitalAdmin}, alert.TargetRoles)
						assert.NotEmpty(t, alert.Message)

						return nil
					})
				f.publisher.EXPECT().PublishOccupancyAlert(gomock.Any(), gomock.Any())
			}

			res, err := f.svc.CheckWardOccupancy(context.Background(), constant.WardICU)

			require.NoError(t, err)
			assert.Equal(t, constant.WardICU, res.Ward)
			assert.Equal(t, tt.counts.Total, res.TotalBeds)
			assert.Equal(t, tt.counts.Occupied, res.OccupiedBeds)
			assert.Equal(t, tt.wantRaised, res.AlertRaised)
			assert.Equal(t, tt.wantSeverity, res.Severity)
		})
	}
}

func TestAlertService_CheckWardOccupancy_CountError(t *testing.T) {
	f := newAlertServiceFixture(t)

	f.bedRepo.EXPECT().CountByWard(gomock.Any(), constant.WardICU).
		Return(repository.WardCount{}, errors.New("db down"))

	_, err := f.svc.CheckWardOccupancy(context.Background(), constant.WardICU)

	require.Error(t, err)
}

func TestAlertService_GetActive(t *testing.T) {
	f := newAlertServiceFixture(t)

	ward := constant.WardGeneral
	alerts := []model.Alert{
		{
			ID:       "alert-1",
			Type:     model.TypeOccupancyHigh,
			Severity: model.SeverityHigh,
			Message:  "General ward occupancy at 92% (92 of 100 beds occupied)",
			Ward:     &ward,
			RaisedAt: timezone.Now(),
		},
	}

	f.repo.EXPECT().GetActiveForUser(gomock.Any(), constant.RoleManager, "user-1").Return(alerts, nil)

	res, err := f.svc.GetActive(context.Background(), constant.RoleManager, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "alert-1", res.Alerts[0].ID)
	assert.Equal(t, model.SeverityHigh, res.Alerts[0].Severity)
}

func TestAlertService_Dismiss(t *testing.T) {
	f := newAlertServiceFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().InsertDismissal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dismissal model.Dismissal) error {
			assert.Equal(t, "alert-1", dismissal.AlertID)
			assert.Equal(t, "user-1", dismissal.UserID)
			assert.False(t, dismissal.DismissedAt.IsZero())

			return nil
		})

	err := f.svc.Dismiss(context.Background(), "alert-1", "user-1")

	require.NoError(t, err)
}

func TestAlertService_Dismiss_NotFound(t *testing.T) {
	f := newAlertServiceFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Dismiss(context.Background(), "missing", "user-1")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
