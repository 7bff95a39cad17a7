package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bedboard/config"
	"bedboard/infras/otel/mocks"
	alertDto "bedboard/internal/domains/alert/model/dto"
	"bedboard/internal/domains/bed/model"
	"bedboard/internal/domains/bed/model/dto"
	"bedboard/internal/domains/bed/repository"
	bedRepoMocks "bedboard/internal/domains/bed/repository/mocks"
	"bedboard/internal/domains/bed/service"
	bedServiceMocks "bedboard/internal/domains/bed/service/mocks"
	cleaningDto "bedboard/internal/domains/cleaninglog/model/dto"
	cleaningService "bedboard/internal/domains/cleaninglog/service"
	cleaningMocks "bedboard/internal/domains/cleaninglog/service/mocks"
	occupancyModel "bedboard/internal/domains/occupancylog/model"
	occupancyMocks "bedboard/internal/domains/occupancylog/service/mocks"
	eventMocks "bedboard/internal/events/mocks"
	predictionMocks "bedboard/internal/external/prediction/mocks"
	cacheMocks "bedboard/shared/cache/mocks"
	"bedboard/shared/constant"
	"bedboard/shared/failure"
	"bedboard/shared/timezone"
)

type bedServiceFixture struct {
	repo       *bedRepoMocks.MockBed
	ledger     *occupancyMocks.MockOccupancyLog
	cleaning   *cleaningMocks.MockCleaningLog
	alerts     *bedServiceMocks.MockAlertChecker
	publisher  *eventMocks.MockPublisher
	prediction *predictionMocks.MockClient
	cache      *cacheMocks.MockRedisCache
	svc        service.Bed
}

func newBedServiceFixture(t *testing.T) *bedServiceFixture {
	ctrl := gomock.NewController(t)

	f := &bedServiceFixture{
		repo:       bedRepoMocks.NewMockBed(ctrl),
		ledger:     occupancyMocks.NewMockOccupancyLog(ctrl),
		cleaning:   cleaningMocks.NewMockCleaningLog(ctrl),
		alerts:     bedServiceMocks.NewMockAlertChecker(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		prediction: predictionMocks.NewMockClient(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cleaning.DefaultDurationMinutes = 30
	cfg.Cache.TTL = 60

	// cache traffic is incidental to these tests, and invalidation runs on
	// goroutines that may outlive the assertion
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.ledger, f.cleaning, f.alerts, f.publisher, f.prediction, cfg, f.cache, mocks.NewOtel())

	return f
}

func actorContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func availableBed() model.Bed {
	return model.Bed{
		ID:      "0b6cbd2e-33a5-4f4c-9c54-6d4a2f1c7c01",
		BedCode: "ICU-101",
		Ward:    constant.WardICU,
		Status:  model.StatusAvailable,
		Version: 3,
	}
}

func occupiedBed() model.Bed {
	name := "Jane Doe"
	patientID := "P-900"
	bed := availableBed()
	bed.Status = model.StatusOccupied
	bed.PatientName = &name
	bed.PatientID = &patientID

	return bed
}

func cleaningBed() model.Bed {
	now := timezone.Now()
	duration := 45
	bed := availableBed()
	bed.Status = model.StatusCleaning
	bed.CleaningStartTime = &now
	bed.EstimatedCleaningDuration = &duration

	return bed
}

func TestBedService_Transition_Occupy(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("nurse-1")

	bed := availableBed()
	patientName := "John Smith"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(nil)
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "nurse-1", occupancyModel.StatusChangeAssigned).Return(nil)
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())
	f.alerts.EXPECT().CheckWardOccupancy(gomock.Any(), constant.WardICU).Return(alertDto.CheckResult{}, nil)

	res, err := f.svc.Transition(ctx, "ICU-101", dto.TransitionRequest{
		Status:      model.StatusOccupied,
		PatientName: &patientName,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, res.PreviousStatus)
	assert.Equal(t, model.StatusOccupied, res.Bed.Status)
	assert.Equal(t, bed.Version+1, res.Bed.Version)
	assert.Equal(t, &patientName, res.Bed.PatientName)
}

func TestBedService_Transition_OccupiedToAvailableRedirectsThroughCleaning(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("nurse-2")

	bed := occupiedBed()

	var opened cleaningService.OpenEpisodeRequest

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(nil)
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "nurse-2", occupancyModel.StatusChangeReleased).Return(nil)
	f.cleaning.EXPECT().OpenEpisode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req cleaningService.OpenEpisodeRequest) error {
			opened = req

			return nil
		})
	f.publisher.EXPECT().PublishCleaningStarted(gomock.Any(), gomock.Any())
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())
	f.alerts.EXPECT().CheckWardOccupancy(gomock.Any(), constant.WardICU).Return(alertDto.CheckResult{}, nil)

	res, err := f.svc.Transition(ctx, "ICU-101", dto.TransitionRequest{Status: model.StatusAvailable})

	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, res.PreviousStatus)
	assert.Equal(t, model.StatusCleaning, res.Bed.Status)
	assert.Nil(t, res.Bed.PatientName)
	assert.Nil(t, res.Bed.PatientID)
	assert.NotNil(t, res.Bed.CleaningStartTime)
	assert.Equal(t, bed.ID, opened.BedID)
	assert.Equal(t, 30, opened.EstimatedDuration)
}

func TestBedService_Transition_CustomCleaningDuration(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("nurse-2")

	bed := availableBed()
	duration := 50

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(nil)
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "nurse-2", occupancyModel.StatusChangeAssigned).Return(nil)
	f.cleaning.EXPECT().OpenEpisode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req cleaningService.OpenEpisodeRequest) error {
			assert.Equal(t, duration, req.EstimatedDuration)

			return nil
		})
	f.publisher.EXPECT().PublishCleaningStarted(gomock.Any(), gomock.Any())
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())
	f.alerts.EXPECT().CheckWardOccupancy(gomock.Any(), constant.WardICU).Return(alertDto.CheckResult{}, nil)

	res, err := f.svc.Transition(ctx, "ICU-101", dto.TransitionRequest{
		Status:                  model.StatusCleaning,
		CleaningDurationMinutes: &duration,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusCleaning, res.Bed.Status)
	assert.Equal(t, &duration, res.Bed.EstimatedCleaningDuration)
}

func TestBedService_Transition_Validation(t *testing.T) {
	empty := ""
	negative := -5

	tests := []struct {
		name     string
		req      dto.TransitionRequest
		wantCode int
	}{
		{
			name:     "unknown status",
			req:      dto.TransitionRequest{Status: "retired"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "occupy without patient info",
			req:      dto.TransitionRequest{Status: model.StatusOccupied},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "occupy with empty patient fields",
			req:      dto.TransitionRequest{Status: model.StatusOccupied, PatientName: &empty, PatientID: &empty},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "nonpositive cleaning duration",
			req:      dto.TransitionRequest{Status: model.StatusCleaning, CleaningDurationMinutes: &negative},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBedServiceFixture(t)

			if model.ValidStatus(tt.req.Status) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableBed(), nil)
			}

			_, err := f.svc.Transition(actorContext("nurse-1"), "ICU-101", tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBedService_Transition_BedNotFound(t *testing.T) {
	f := newBedServiceFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Bed{}, nil)

	_, err := f.svc.Transition(actorContext("nurse-1"), "ICU-999", dto.TransitionRequest{Status: model.StatusCleaning})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBedService_Transition_VersionConflict(t *testing.T) {
	f := newBedServiceFixture(t)

	bed := availableBed()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(repository.ErrVersionConflict)

	patientName := "John Smith"
	_, err := f.svc.Transition(actorContext("nurse-1"), "ICU-101", dto.TransitionRequest{
		Status:      model.StatusOccupied,
		PatientName: &patientName,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBedService_Transition_LedgerFailureDoesNotAbort(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("nurse-1")

	bed := availableBed()
	patientName := "John Smith"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(nil)
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "nurse-1", occupancyModel.StatusChangeAssigned).Return(errors.New("ledger down"))
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())
	f.alerts.EXPECT().CheckWardOccupancy(gomock.Any(), constant.WardICU).Return(alertDto.CheckResult{}, errors.New("alert check down"))

	res, err := f.svc.Transition(ctx, "ICU-101", dto.TransitionRequest{
		Status:      model.StatusOccupied,
		PatientName: &patientName,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, res.Bed.Status)
}

func TestBedService_Transition_RestampCleaningKeepsTimestamps(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("nurse-3")

	bed := cleaningBed()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ string, _ int) error {
			assert.NotContains(t, fields, model.FieldCleaningStartTime)
			assert.NotContains(t, fields, model.FieldEstimatedCleaningDuration)

			return nil
		})
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "nurse-3", occupancyModel.StatusChangeAssigned).Return(nil)
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())
	f.alerts.EXPECT().CheckWardOccupancy(gomock.Any(), constant.WardICU).Return(alertDto.CheckResult{}, nil)

	res, err := f.svc.Transition(ctx, "ICU-101", dto.TransitionRequest{Status: model.StatusCleaning})

	require.NoError(t, err)
	assert.Equal(t, model.StatusCleaning, res.Bed.Status)
	assert.Equal(t, bed.CleaningStartTime, res.Bed.CleaningStartTime)
	assert.Equal(t, bed.EstimatedCleaningDuration, res.Bed.EstimatedCleaningDuration)
}

func TestBedService_CompleteCleaning(t *testing.T) {
	f := newBedServiceFixture(t)
	ctx := actorContext("cleaner-1")

	bed := cleaningBed()
	actual := 25
	episode := cleaningDto.CleaningLogResponse{
		ID:             "episode-1",
		BedID:          bed.ID,
		ActualDuration: &actual,
	}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.cleaning.EXPECT().CloseEpisode(gomock.Any(), bed.ID, "cleaner-1", gomock.Nil()).Return(episode, nil)
	f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), bed.ID, bed.Version).Return(nil)
	f.ledger.EXPECT().Append(gomock.Any(), bed.ID, "cleaner-1", occupancyModel.StatusChangeMaintenanceEnd).Return(nil)
	f.publisher.EXPECT().PublishCleaningCompleted(gomock.Any(), gomock.Any())
	f.publisher.EXPECT().PublishBedChanged(gomock.Any(), gomock.Any())

	res, err := f.svc.CompleteCleaning(ctx, "ICU-101", dto.CompleteCleaningRequest{})

	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, res.Bed.Status)
	assert.Nil(t, res.Bed.CleaningStartTime)
	assert.Equal(t, "episode-1", res.CleaningLog.ID)
	assert.Equal(t, &actual, res.CleaningLog.ActualDuration)
}

func TestBedService_CompleteCleaning_NotInCleaning(t *testing.T) {
	f := newBedServiceFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(occupiedBed(), nil)

	_, err := f.svc.CompleteCleaning(actorContext("cleaner-1"), "ICU-101", dto.CompleteCleaningRequest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
}

func TestBedService_CompleteCleaning_NoOpenEpisode(t *testing.T) {
	f := newBedServiceFixture(t)

	bed := cleaningBed()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bed, nil)
	f.cleaning.EXPECT().CloseEpisode(gomock.Any(), bed.ID, "cleaner-1", gomock.Nil()).
		Return(cleaningDto.CleaningLogResponse{}, failure.NotFound("no active cleaning log"))

	_, err := f.svc.CompleteCleaning(actorContext("cleaner-1"), "ICU-101", dto.CompleteCleaningRequest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBedService_GetOccupied(t *testing.T) {
	f := newBedServiceFixture(t)

	first := occupiedBed()
	second := occupiedBed()
	second.ID = "b5b1dfb3-92c2-4aa7-8f72-2a0a17f0a202"
	second.BedCode = "GEN-201"
	second.Ward = constant.WardGeneral

	assignedAt := timezone.Now().Add(-2 * time.Hour)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Bed{first, second}, nil)
	f.ledger.EXPECT().LatestAssignments(gomock.Any(), []string{first.ID, second.ID}).
		Return(map[string]time.Time{first.ID: assignedAt}, nil)

	res, err := f.svc.GetOccupied(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.WardSummary[constant.WardICU])
	assert.Equal(t, 1, res.WardSummary[constant.WardGeneral])
	require.NotNil(t, res.Beds[0].TimeInBedHours)
	assert.InDelta(t, 2, *res.Beds[0].TimeInBedHours, 0.1)
	assert.Nil(t, res.Beds[1].TimeInBedHours)
}

func TestBedService_UpdateDischargeTime_RequiresOccupied(t *testing.T) {
	f := newBedServiceFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableBed(), nil)

	err := f.svc.UpdateDischargeTime(actorContext("doc-1"), "ICU-101", dto.UpdateDischargeRequest{
		EstimatedDischargeTime: timezone.Now(),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
}
