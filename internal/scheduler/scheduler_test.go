package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bedboard/config"
	"bedboard/infras/otel/mocks"
	bedModel "bedboard/internal/domains/bed/model"
	bedRepoMocks "bedboard/internal/domains/bed/repository/mocks"
	cleaningModel "bedboard/internal/domains/cleaninglog/model"
	cleaningService "bedboard/internal/domains/cleaninglog/service"
	cleaningMocks "bedboard/internal/domains/cleaninglog/service/mocks"
	"bedboard/internal/scheduler"
	"bedboard/shared/constant"
	"bedboard/shared/timezone"
)

type schedulerFixture struct {
	beds     *bedRepoMocks.MockBed
	cleaning *cleaningMocks.MockCleaningLog
	sched    scheduler.Scheduler
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	ctrl := gomock.NewController(t)

	f := &schedulerFixture{
		beds:     bedRepoMocks.NewMockBed(ctrl),
		cleaning: cleaningMocks.NewMockCleaningLog(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cleaning.DefaultDurationMinutes = 30

	f.sched = scheduler.New(cfg, f.beds, f.cleaning, mocks.NewOtel())

	return f
}

func TestScheduler_Reconcile_OpensMissingEpisode(t *testing.T) {
	f := newSchedulerFixture(t)

	start := timezone.Now()
	duration := 45
	bed := bedModel.Bed{
		ID:                        "bed-1",
		BedCode:                   "ICU-101",
		Ward:                      constant.WardICU,
		Status:                    bedModel.StatusCleaning,
		CleaningStartTime:         &start,
		EstimatedCleaningDuration: &duration,
	}

	f.beds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bedModel.Bed{bed}, nil)
	f.cleaning.EXPECT().OpenEpisodes(gomock.Any()).Return(nil, nil)
	f.cleaning.EXPECT().OpenEpisode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req cleaningService.OpenEpisodeRequest) error {
			assert.Equal(t, bed.ID, req.BedID)
			assert.Equal(t, bed.Ward, req.Ward)
			assert.Equal(t, start, req.StartTime)
			assert.Equal(t, duration, req.EstimatedDuration)
			assert.Equal(t, "scheduler", req.AssignedTo)

			return nil
		})

	err := f.sched.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestScheduler_Reconcile_DefaultsWhenBedFieldsMissing(t *testing.T) {
	f := newSchedulerFixture(t)

	bed := bedModel.Bed{
		ID:     "bed-1",
		Ward:   constant.WardGeneral,
		Status: bedModel.StatusCleaning,
	}

	f.beds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bedModel.Bed{bed}, nil)
	f.cleaning.EXPECT().OpenEpisodes(gomock.Any()).Return(nil, nil)
	f.cleaning.EXPECT().OpenEpisode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req cleaningService.OpenEpisodeRequest) error {
			assert.Equal(t, 30, req.EstimatedDuration)
			assert.False(t, req.StartTime.IsZero())

			return nil
		})

	err := f.sched.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestScheduler_Reconcile_ClosesOrphanEpisode(t *testing.T) {
	f := newSchedulerFixture(t)

	orphan := cleaningModel.CleaningLog{
		ID:     "episode-1",
		BedID:  "bed-9",
		Status: cleaningModel.StatusInProgress,
	}

	f.beds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.cleaning.EXPECT().OpenEpisodes(gomock.Any()).Return([]cleaningModel.CleaningLog{orphan}, nil)
	f.cleaning.EXPECT().CloseOrphan(gomock.Any(), orphan.ID, "scheduler").Return(nil)

	err := f.sched.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestScheduler_Reconcile_ConsistentStateIsNoop(t *testing.T) {
	f := newSchedulerFixture(t)

	bed := bedModel.Bed{ID: "bed-1", Ward: constant.WardICU, Status: bedModel.StatusCleaning}
	episode := cleaningModel.CleaningLog{ID: "episode-1", BedID: "bed-1", Status: cleaningModel.StatusInProgress}

	f.beds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bedModel.Bed{bed}, nil)
	f.cleaning.EXPECT().OpenEpisodes(gomock.Any()).Return([]cleaningModel.CleaningLog{episode}, nil)

	err := f.sched.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestScheduler_Reconcile_RepairFailuresDoNotAbort(t *testing.T) {
	f := newSchedulerFixture(t)

	bed := bedModel.Bed{ID: "bed-1", Ward: constant.WardICU, Status: bedModel.StatusCleaning}
	orphan := cleaningModel.CleaningLog{ID: "episode-9", BedID: "bed-9", Status: cleaningModel.StatusInProgress}

	f.beds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bedModel.Bed{bed}, nil)
	f.cleaning.EXPECT().OpenEpisodes(gomock.Any()).Return([]cleaningModel.CleaningLog{orphan}, nil)
	f.cleaning.EXPECT().OpenEpisode(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	f.cleaning.EXPECT().CloseOrphan(gomock.Any(), orphan.ID, "scheduler").Return(errors.New("update failed"))

	err := f.sched.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestScheduler_SweepOverdue_Delegates(t *testing.T) {
	f := newSchedulerFixture(t)

	f.cleaning.EXPECT().SweepOverdue(gomock.Any()).Return(nil)

	err := f.sched.SweepOverdue(context.Background())

	require.NoError(t, err)
}
