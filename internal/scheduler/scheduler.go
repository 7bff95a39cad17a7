package scheduler

import (
	"context"
	"sync"
	"time"

	"bedboard/config"
	"bedboard/infras/otel"
	bedModel "bedboard/internal/domains/bed/model"
	bedRepo "bedboard/internal/domains/bed/repository"
	cleaningService "bedboard/internal/domains/cleaninglog/service"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

const systemActor = "scheduler"

// Scheduler runs the periodic jobs that keep durable state consistent: the
// bed/episode reconciliation and the overdue escalation sweep. It is an
// injected service with an explicit lifecycle, started once from main.
type Scheduler interface {
	Start(ctx context.Context)
	Stop()
	Reconcile(ctx context.Context) error
	SweepOverdue(ctx context.Context) error
}

type schedulerImpl struct {
	cfg      *config.Config
	beds     bedRepo.Bed
	cleaning cleaningService.CleaningLog
	otel     otel.Otel

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(cfg *config.Config, beds bedRepo.Bed, cleaning cleaningService.CleaningLog, otel otel.Otel) Scheduler {
	return &schedulerImpl{
		cfg:      cfg,
		beds:     beds,
		cleaning: cleaning,
		otel:     otel,
		stopCh:   make(chan struct{}),
	}
}

func (s *schedulerImpl) Start(ctx context.Context) {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled, skipping background jobs")

		return
	}

	reconcileInterval := time.Duration(s.cfg.Scheduler.ReconcileIntervalMinutes) * time.Minute
	sweepInterval := time.Duration(s.cfg.Scheduler.OverdueSweepMinutes) * time.Minute

	s.run(ctx, "reconcile", reconcileInterval, s.Reconcile)
	s.run(ctx, "overdue_sweep", sweepInterval, s.SweepOverdue)

	log.Info().
		Dur("reconcile_interval", reconcileInterval).
		Dur("sweep_interval", sweepInterval).
		Msg("Scheduler started")
}

func (s *schedulerImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})

	s.wg.Wait()

	log.Info().Msg("Scheduler stopped")
}

func (s *schedulerImpl) run(ctx context.Context, name string, interval time.Duration, job func(context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := job(ctx); err != nil {
					log.Error().Err(err).Str("job", name).Msg("scheduled job failed")
				}
			}
		}
	}()
}

// Reconcile repairs the drift a crash between the bed write and its episode
// side effect can leave behind: cleaning beds without an open episode get
// one, and open episodes whose bed has moved on get closed.
func (s *schedulerImpl) Reconcile(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bedModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bedModel.StatusCleaning,
				Table:    bedModel.TableName,
			},
		},
	}

	cleaningBeds, err := s.beds.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return err
	}

	openEpisodes, err := s.cleaning.OpenEpisodes(ctx)
	if err != nil {
		return err
	}

	episodeByBed := map[string]string{}
	for _, episode := range openEpisodes {
		episodeByBed[episode.BedID] = episode.ID
	}

	cleaningBedIDs := map[string]bool{}

	for _, bed := range cleaningBeds {
		cleaningBedIDs[bed.ID] = true

		if _, ok := episodeByBed[bed.ID]; ok {
			continue
		}

		startTime := timezone.Now()
		if bed.CleaningStartTime != nil {
			startTime = *bed.CleaningStartTime
		}

		duration := s.cfg.Cleaning.DefaultDurationMinutes
		if bed.EstimatedCleaningDuration != nil {
			duration = *bed.EstimatedCleaningDuration
		}

		if err := s.cleaning.OpenEpisode(ctx, cleaningService.OpenEpisodeRequest{
			BedID:             bed.ID,
			Ward:              bed.Ward,
			StartTime:         startTime,
			EstimatedDuration: duration,
			AssignedTo:        systemActor,
		}); err != nil {
			log.Error().Err(err).Str("bed_id", bed.ID).Msg("failed to open missing cleaning episode")

			continue
		}

		log.Info().Str("bed_id", bed.ID).Msg("reconciliation opened missing cleaning episode")
	}

	for _, episode := range openEpisodes {
		if cleaningBedIDs[episode.BedID] {
			continue
		}

		if err := s.cleaning.CloseOrphan(ctx, episode.ID, systemActor); err != nil {
			log.Error().Err(err).Str("episode_id", episode.ID).Msg("failed to close orphan cleaning episode")

			continue
		}

		log.Info().Str("episode_id", episode.ID).Msg("reconciliation closed orphan cleaning episode")
	}

	return nil
}

// SweepOverdue makes the durable episode status catch up with the lazy
// read-side overdue evaluation.
func (s *schedulerImpl) SweepOverdue(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".SweepOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cleaning.SweepOverdue(ctx)
}
