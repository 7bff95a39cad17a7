package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"bedboard/config"
	"bedboard/infras/otel"
	"bedboard/internal/domains/cleaninglog/model"
	"bedboard/internal/domains/cleaninglog/model/dto"
	"bedboard/internal/domains/cleaninglog/repository"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/failure"
	gModel "bedboard/shared/model"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type OpenEpisodeRequest struct {
	BedID             string
	Ward              string
	StartTime         time.Time
	EstimatedDuration int
	AssignedTo        string
}

type CleaningLog interface {
	OpenEpisode(ctx context.Context, req OpenEpisodeRequest) error
	GetOpenByBed(ctx context.Context, bedID string) (model.CleaningLog, error)
	CloseEpisode(ctx context.Context, bedID, completedBy string, notes *string) (dto.CleaningLogResponse, error)
	CloseOrphan(ctx context.Context, episodeID, modifiedBy string) error
	Queue(ctx context.Context, ward string) (dto.GetCleaningQueueResponse, error)
	GetHistory(ctx context.Context, bedID string, params gDto.QueryParams) (dto.GetCleaningLogsResponse, error)
	OpenEpisodes(ctx context.Context) ([]model.CleaningLog, error)
	SweepOverdue(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.CleaningLog
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.CleaningLog, cfg *config.Config, otel otel.Otel) CleaningLog {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// OpenEpisode inserts a fresh in_progress episode. The partial unique index
// on open episodes backs the one-open-episode-per-bed invariant; a violation
// surfaces as Conflict.
func (s *serviceImpl) OpenEpisode(ctx context.Context, req OpenEpisodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenCleaningEpisode")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	assignedTo := req.AssignedTo

	entry := model.CleaningLog{
		ID:                uuid.NewString(),
		BedID:             req.BedID,
		Ward:              req.Ward,
		StartTime:         req.StartTime,
		EstimatedDuration: req.EstimatedDuration,
		Status:            model.StatusInProgress,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  req.AssignedTo,
			ModifiedBy: req.AssignedTo,
		},
	}

	if assignedTo != "" {
		entry.AssignedTo = &assignedTo
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("a cleaning episode is already open for this bed")
		}

		log.Error().Err(err).Str("bed_id", req.BedID).Msg("failed to open cleaning episode")

		return fmt.Errorf("failed to open cleaning episode: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetOpenByBed(ctx context.Context, bedID string) (res model.CleaningLog, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOpenCleaningEpisode")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, openByBedFilter(bedID))
	if err != nil {
		log.Error().Err(err).Str("bed_id", bedID).Msg("failed to get open cleaning episode")

		return res, fmt.Errorf("failed to get open cleaning episode: %w", err)
	}

	return res, nil
}

// CloseEpisode completes the single open episode of a bed. The actual
// duration is computed exactly once here, from the episode's start time.
func (s *serviceImpl) CloseEpisode(ctx context.Context, bedID, completedBy string, notes *string) (res dto.CleaningLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseCleaningEpisode")
	defer scope.End()
	defer scope.TraceIfError(err)

	episode, err := s.repo.Get(ctx, openByBedFilter(bedID))
	if err != nil {
		log.Error().Err(err).Str("bed_id", bedID).Msg("failed to get open cleaning episode")

		return res, fmt.Errorf("failed to get open cleaning episode: %w", err)
	}

	if episode.ID == "" {
		return res, failure.NotFound("no active cleaning log")
	}

	now := timezone.Now()
	actualDuration := int(math.Round(now.Sub(episode.StartTime).Minutes()))

	updatedFields := map[string]any{
		model.FieldEndTime:        now,
		model.FieldStatus:         model.StatusCompleted,
		model.FieldActualDuration: actualDuration,
		model.FieldCompletedBy:    completedBy,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  completedBy,
	}
	if notes != nil {
		updatedFields[model.FieldNotes] = *notes
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    episode.ID,
				Table:    model.TableName,
			},
		},
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("bed_id", bedID).Msg("failed to close cleaning episode")

		return res, fmt.Errorf("failed to close cleaning episode: %w", err)
	}

	episode.EndTime = &now
	episode.Status = model.StatusCompleted
	episode.ActualDuration = &actualDuration
	episode.CompletedBy = &completedBy
	if notes != nil {
		episode.Notes = notes
	}

	res.FromModel(episode)

	return res, nil
}

// CloseOrphan completes an open episode whose bed is no longer in cleaning,
// without attributing an actual duration to anyone's work.
func (s *serviceImpl) CloseOrphan(ctx context.Context, episodeID, modifiedBy string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseOrphanEpisode")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	updatedFields := map[string]any{
		model.FieldEndTime:       now,
		model.FieldStatus:        model.StatusCompleted,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: modifiedBy,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    episodeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusInProgress, model.StatusOverdue},
				Table:    model.TableName,
			},
		},
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("episode_id", episodeID).Msg("failed to close orphan episode")

		return fmt.Errorf("failed to close orphan episode: %w", err)
	}

	return nil
}

// Queue lists open episodes, overdue first, oldest first within a bucket.
func (s *serviceImpl) Queue(ctx context.Context, ward string) (res dto.GetCleaningQueueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCleaningQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusInProgress, model.StatusOverdue},
				Table:    model.TableName,
			},
		},
	}

	if ward != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldWard,
			Operator: gDto.FilterOperatorEq,
			Value:    ward,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning queue")

		return res, fmt.Errorf("failed to get cleaning queue: %w", err)
	}

	sort.SliceStable(models, func(i, j int) bool {
		iOverdue := models[i].EffectiveStatus() == model.StatusOverdue
		jOverdue := models[j].EffectiveStatus() == model.StatusOverdue

		if iOverdue != jOverdue {
			return iOverdue
		}

		return models[i].StartTime.Before(models[j].StartTime)
	})

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, bedID string, params gDto.QueryParams) (res dto.GetCleaningLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCleaningHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBedID,
				Operator: gDto.FilterOperatorEq,
				Value:    bedID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cleaning logs")

		return res, fmt.Errorf("failed to count cleaning logs: %w", err)
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldStartTime
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning logs")

		return res, fmt.Errorf("failed to get cleaning logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// OpenEpisodes returns every open episode, for the reconciliation job.
func (s *serviceImpl) OpenEpisodes(ctx context.Context) (res []model.CleaningLog, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenCleaningEpisodes")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusInProgress, model.StatusOverdue},
				Table:    model.TableName,
			},
		},
	}

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open cleaning episodes")

		return res, fmt.Errorf("failed to get open cleaning episodes: %w", err)
	}

	return res, nil
}

// SweepOverdue persists the lazy in_progress -> overdue escalation for
// episodes past their estimate.
func (s *serviceImpl) SweepOverdue(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepOverdueEpisodes")
	defer scope.End()
	defer scope.TraceIfError(err)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusOverdue,
		constant.FieldModifiedAt: timezone.Now(),
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusInProgress,
				Table:    model.TableName,
			},
			gDto.Filter{
				Operator: gDto.FilterPlainQuery,
				Value:    "cleaning_logs.start_time + cleaning_logs.estimated_duration * interval '1 minute' <= NOW()",
			},
		},
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to sweep overdue episodes")

		return fmt.Errorf("failed to sweep overdue episodes: %w", err)
	}

	return nil
}

func openByBedFilter(bedID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBedID,
				Operator: gDto.FilterOperatorEq,
				Value:    bedID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusInProgress, model.StatusOverdue},
				Table:    model.TableName,
			},
		},
	}
}
