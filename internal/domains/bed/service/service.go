package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bedboard/config"
	"bedboard/infras/otel"
	alertDto "bedboard/internal/domains/alert/model/dto"
	"bedboard/internal/domains/bed/model"
	"bedboard/internal/domains/bed/model/dto"
	"bedboard/internal/domains/bed/repository"
	cleaningService "bedboard/internal/domains/cleaninglog/service"
	occupancyModel "bedboard/internal/domains/occupancylog/model"
	occupancyService "bedboard/internal/domains/occupancylog/service"
	"bedboard/internal/events"
	"bedboard/internal/external/prediction"
	"bedboard/shared"
	"bedboard/shared/cache"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/failure"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBed    = "bed:get"
	cacheGetAllBed = "bed:gets"
	cacheCountBed  = "bed:count"
)

// AlertChecker is the slice of the alert service the coordinator invokes
// after a transition. Failures never propagate back.
type AlertChecker interface {
	CheckWardOccupancy(ctx context.Context, ward string) (alertDto.CheckResult, error)
}

type Bed interface {
	Create(ctx context.Context, req dto.CreateBedRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBedsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, bedRef string) (dto.BedResponse, error)
	Transition(ctx context.Context, bedRef string, req dto.TransitionRequest) (dto.TransitionResponse, error)
	CompleteCleaning(ctx context.Context, bedRef string, req dto.CompleteCleaningRequest) (dto.CompleteCleaningResponse, error)
	GetOccupied(ctx context.Context, ward string) (dto.GetOccupiedBedsResponse, error)
	UpdateDischargeTime(ctx context.Context, bedRef string, req dto.UpdateDischargeRequest) error
	PredictDischarge(ctx context.Context, ward string) (dto.DischargePredictionResponse, error)
	PredictCleaningDuration(ctx context.Context, ward string) (dto.CleaningPredictionResponse, error)
}

type serviceImpl struct {
	repo       repository.Bed
	ledger     occupancyService.OccupancyLog
	cleaning   cleaningService.CleaningLog
	alerts     AlertChecker
	publisher  events.Publisher
	prediction prediction.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Bed,
	ledger occupancyService.OccupancyLog,
	cleaning cleaningService.CleaningLog,
	alerts AlertChecker,
	publisher events.Publisher,
	predictionClient prediction.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Bed {
	return &serviceImpl{
		repo:       repo,
		ledger:     ledger,
		cleaning:   cleaning,
		alerts:     alerts,
		publisher:  publisher,
		prediction: predictionClient,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBedRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBed")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, bedCodeFilter(req.BedCode))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bed exists")

		return fmt.Errorf("failed to check if bed exists: %w", err)
	}

	if exists {
		return failure.Conflict("bed code already registered")
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create bed")

		return fmt.Errorf("failed to create bed: %w", err)
	}

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBedsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBeds")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBed, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for beds")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count beds")

		return res, fmt.Errorf("failed to count beds: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get beds")

		return res, fmt.Errorf("failed to get beds: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save beds to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBeds")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBed, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count beds")

		return res, fmt.Errorf("failed to count beds: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bed count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bedRef string) (res dto.BedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBed")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBed, bedRef)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bed")

		return res, nil
	}

	bed, err := s.resolve(ctx, bedRef)
	if err != nil {
		return res, err
	}

	res.FromModel(bed)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bed to cache")
		}
	}()

	return res, nil
}

// Transition is the single entry point for bed status changes. Validation
// and the versioned bed write are fail-fast; the ledger append, episode
// open, notifications and the alert check are best-effort side effects that
// never abort a committed state change.
func (s *serviceImpl) Transition(ctx context.Context, bedRef string, req dto.TransitionRequest) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TransitionBed")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !model.ValidStatus(req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status %q: must be one of available, cleaning, occupied", req.Status))
	}

	bed, err := s.resolve(ctx, bedRef)
	if err != nil {
		return res, err
	}

	previousStatus := bed.Status

	// A bed never goes straight from occupied to available; it always
	// passes through cleaning first.
	finalStatus := req.Status
	if previousStatus == model.StatusOccupied && req.Status == model.StatusAvailable {
		finalStatus = model.StatusCleaning
	}

	if finalStatus == model.StatusOccupied && previousStatus != model.StatusOccupied {
		if !hasValue(req.PatientName) && !hasValue(req.PatientID) {
			return res, failure.BadRequestFromString("patient name or patient id is required to occupy a bed")
		}
	}

	if req.Status == model.StatusCleaning && req.CleaningDurationMinutes != nil && *req.CleaningDurationMinutes <= 0 {
		return res, failure.BadRequestFromString("cleaning duration must be a positive number of minutes")
	}

	now := timezone.Now()
	freshCleaning := finalStatus == model.StatusCleaning && previousStatus != model.StatusCleaning

	updatedFields := map[string]any{
		model.FieldStatus:        finalStatus,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	if finalStatus == model.StatusOccupied {
		if req.PatientName != nil {
			updatedFields[model.FieldPatientName] = *req.PatientName
			bed.PatientName = req.PatientName
		}

		if req.PatientID != nil {
			updatedFields[model.FieldPatientID] = *req.PatientID
			bed.PatientID = req.PatientID
		}
	} else {
		updatedFields[model.FieldPatientName] = nil
		updatedFields[model.FieldPatientID] = nil
		updatedFields[model.FieldEstimatedDischargeTime] = nil
		updatedFields[model.FieldDischargeNotes] = nil
		bed.ClearOccupancyFields()
	}

	switch {
	case freshCleaning:
		duration := s.cfg.Cleaning.DefaultDurationMinutes
		if req.CleaningDurationMinutes != nil {
			duration = *req.CleaningDurationMinutes
		}

		endTime := now.Add(time.Duration(duration) * time.Minute)

		updatedFields[model.FieldCleaningStartTime] = now
		updatedFields[model.FieldEstimatedCleaningDuration] = duration
		updatedFields[model.FieldEstimatedCleaningEndTime] = endTime

		bed.CleaningStartTime = &now
		bed.EstimatedCleaningDuration = &duration
		bed.EstimatedCleaningEndTime = &endTime
	case finalStatus != model.StatusCleaning:
		updatedFields[model.FieldCleaningStartTime] = nil
		updatedFields[model.FieldEstimatedCleaningDuration] = nil
		updatedFields[model.FieldEstimatedCleaningEndTime] = nil
		bed.ClearCleaningFields()
	}

	if req.Notes != nil {
		updatedFields[model.FieldNotes] = *req.Notes
		bed.Notes = req.Notes
	}

	if err = s.repo.UpdateVersioned(ctx, updatedFields, bed.ID, bed.Version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return res, failure.Conflict("bed was modified concurrently, retry the transition")
		}

		log.Error().Err(err).Str("bed_id", bed.ID).Msg("failed to persist bed transition")

		return res, fmt.Errorf("failed to persist bed transition: %w", err)
	}

	bed.Status = finalStatus
	bed.Version++
	bed.ModifiedAt = now
	bed.ModifiedBy = actor

	statusChange := deriveStatusChange(previousStatus, finalStatus)

	shared.BestEffort("occupancy ledger append", func() error {
		return s.ledger.Append(ctx, bed.ID, actor, statusChange)
	})

	if freshCleaning {
		shared.BestEffort("open cleaning episode", func() error {
			return s.cleaning.OpenEpisode(ctx, cleaningService.OpenEpisodeRequest{
				BedID:             bed.ID,
				Ward:              bed.Ward,
				StartTime:         now,
				EstimatedDuration: *bed.EstimatedCleaningDuration,
				AssignedTo:        actor,
			})
		})

		s.publisher.PublishCleaningStarted(ctx, events.CleaningEvent{
			BedID:             bed.ID,
			BedCode:           bed.BedCode,
			Ward:              bed.Ward,
			EstimatedDuration: *bed.EstimatedCleaningDuration,
			Actor:             actor,
			OccurredAt:        now,
		})
	}

	var bedResponse dto.BedResponse
	bedResponse.FromModel(bed)

	s.publisher.PublishBedChanged(ctx, events.BedChangedEvent{
		Bed:            bedResponse,
		PreviousStatus: previousStatus,
		NewStatus:      finalStatus,
		Ward:           bed.Ward,
		Actor:          actor,
		OccurredAt:     now,
	})

	shared.BestEffort("ward occupancy check", func() error {
		_, checkErr := s.alerts.CheckWardOccupancy(ctx, bed.Ward)

		return checkErr
	})

	s.invalidateBedCaches(ctx, bed)

	res.Bed = bedResponse
	res.PreviousStatus = previousStatus

	return res, nil
}

// CompleteCleaning closes the bed's open cleaning episode and returns the
// bed to available. It does not route through Transition: it carries its own
// precondition, an open episode must exist.
func (s *serviceImpl) CompleteCleaning(ctx context.Context, bedRef string, req dto.CompleteCleaningRequest) (res dto.CompleteCleaningResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteCleaning")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bed, err := s.resolve(ctx, bedRef)
	if err != nil {
		return res, err
	}

	if bed.Status != model.StatusCleaning {
		return res, failure.UnprocessableEntity("bed is not currently in cleaning status")
	}

	episode, err := s.cleaning.CloseEpisode(ctx, bed.ID, actor, req.Notes)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	updatedFields := map[string]any{
		model.FieldStatus:                    model.StatusAvailable,
		model.FieldCleaningStartTime:         nil,
		model.FieldEstimatedCleaningDuration: nil,
		model.FieldEstimatedCleaningEndTime:  nil,
		constant.FieldModifiedAt:             now,
		constant.FieldModifiedBy:             actor,
	}

	if err = s.repo.UpdateVersioned(ctx, updatedFields, bed.ID, bed.Version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return res, failure.Conflict("bed was modified concurrently, retry the completion")
		}

		log.Error().Err(err).Str("bed_id", bed.ID).Msg("failed to persist cleaning completion")

		return res, fmt.Errorf("failed to persist cleaning completion: %w", err)
	}

	previousStatus := bed.Status
	bed.Status = model.StatusAvailable
	bed.ClearCleaningFields()
	bed.Version++
	bed.ModifiedAt = now
	bed.ModifiedBy = actor

	shared.BestEffort("occupancy ledger append", func() error {
		return s.ledger.Append(ctx, bed.ID, actor, occupancyModel.StatusChangeMaintenanceEnd)
	})

	var bedResponse dto.BedResponse
	bedResponse.FromModel(bed)

	s.publisher.PublishCleaningCompleted(ctx, events.CleaningEvent{
		BedID:          bed.ID,
		BedCode:        bed.BedCode,
		Ward:           bed.Ward,
		EpisodeID:      episode.ID,
		ActualDuration: episode.ActualDuration,
		Actor:          actor,
		OccurredAt:     now,
	})

	s.publisher.PublishBedChanged(ctx, events.BedChangedEvent{
		Bed:            bedResponse,
		PreviousStatus: previousStatus,
		NewStatus:      model.StatusAvailable,
		Ward:           bed.Ward,
		Actor:          actor,
		OccurredAt:     now,
	})

	s.invalidateBedCaches(ctx, bed)

	res.Bed = bedResponse
	res.CleaningLog = episode

	return res, nil
}

// GetOccupied lists occupied beds with time-in-bed enrichment and a per-ward
// summary.
func (s *serviceImpl) GetOccupied(ctx context.Context, ward string) (res dto.GetOccupiedBedsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOccupiedBeds")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusOccupied,
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

	params := gDto.QueryParams{SortBy: model.FieldWard, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied beds")

		return res, fmt.Errorf("failed to get occupied beds: %w", err)
	}

	bedIDs := make([]string, len(models))
	for i, bed := range models {
		bedIDs[i] = bed.ID
	}

	assignments, err := s.ledger.LatestAssignments(ctx, bedIDs)
	if err != nil {
		log.Warn().Err(err).Msg("failed to enrich occupied beds with time in bed")

		assignments = map[string]time.Time{}
	}

	now := timezone.Now()

	res.Beds = make([]dto.OccupiedBedResponse, len(models))
	res.WardSummary = map[string]int{}
	res.TotalData = len(models)

	for i, bed := range models {
		res.Beds[i].FromModel(bed)
		res.WardSummary[bed.Ward]++

		if assignedAt, ok := assignments[bed.ID]; ok {
			hours := now.Sub(assignedAt).Hours()
			res.Beds[i].TimeInBedHours = &hours
		}
	}

	return res, nil
}

// UpdateDischargeTime sets the expected discharge of an occupied bed.
func (s *serviceImpl) UpdateDischargeTime(ctx context.Context, bedRef string, req dto.UpdateDischargeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDischargeTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bed, err := s.resolve(ctx, bedRef)
	if err != nil {
		return err
	}

	if bed.Status != model.StatusOccupied {
		return failure.UnprocessableEntity("discharge time can only be set on an occupied bed")
	}

	updatedFields := map[string]any{
		model.FieldEstimatedDischargeTime: req.EstimatedDischargeTime,
		constant.FieldModifiedAt:          timezone.Now(),
		constant.FieldModifiedBy:          actor,
	}
	if req.DischargeNotes != nil {
		updatedFields[model.FieldDischargeNotes] = *req.DischargeNotes
	}

	if err = s.repo.UpdateVersioned(ctx, updatedFields, bed.ID, bed.Version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return failure.Conflict("bed was modified concurrently, retry the update")
		}

		log.Error().Err(err).Str("bed_id", bed.ID).Msg("failed to update discharge time")

		return fmt.Errorf("failed to update discharge time: %w", err)
	}

	s.invalidateBedCaches(ctx, bed)

	return nil
}

func (s *serviceImpl) PredictDischarge(ctx context.Context, ward string) (res dto.DischargePredictionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PredictDischarge")
	defer scope.End()

	estimate := s.prediction.PredictDischarge(ctx, ward, timezone.Now())

	res.Ward = ward
	res.HoursUntilDischarge = estimate.Hours
	res.Source = estimate.Source

	return res, nil
}

func (s *serviceImpl) PredictCleaningDuration(ctx context.Context, ward string) (res dto.CleaningPredictionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PredictCleaningDuration")
	defer scope.End()

	estimate := s.prediction.PredictCleaningDuration(ctx, ward)

	res.Ward = ward
	res.DurationMinutes = estimate.Minutes
	res.Source = estimate.Source

	return res, nil
}

// resolve loads a bed by internal id or human bed code.
func (s *serviceImpl) resolve(ctx context.Context, bedRef string) (model.Bed, error) {
	var filter gDto.FilterGroup
	if uuid.Validate(bedRef) == nil {
		filter = shared.FilterByID(bedRef, model.FieldID, model.TableName)
	} else {
		filter = bedCodeFilter(bedRef)
	}

	bed, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("bed_ref", bedRef).Msg("failed to get bed")

		return bed, fmt.Errorf("failed to get bed: %w", err)
	}

	if bed.ID == "" {
		return bed, failure.NotFound("bed not found")
	}

	return bed, nil
}

func deriveStatusChange(previousStatus, finalStatus string) string {
	switch {
	case finalStatus == model.StatusOccupied:
		return occupancyModel.StatusChangeAssigned
	case previousStatus == model.StatusOccupied && finalStatus == model.StatusCleaning:
		return occupancyModel.StatusChangeReleased
	case previousStatus == model.StatusCleaning && finalStatus == model.StatusAvailable:
		return occupancyModel.StatusChangeMaintenanceEnd
	default:
		return occupancyModel.StatusChangeAssigned
	}
}

func (s *serviceImpl) invalidateBedCaches(ctx context.Context, bed model.Bed) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBed, bed.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete bed from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBed, bed.BedCode)); err != nil {
			log.Error().Err(err).Msg("failed to delete bed from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
		shared.InvalidateCaches(c, s.cache, cacheCountBed)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
		shared.InvalidateCaches(c, s.cache, cacheCountBed)
	}()
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

func bedCodeFilter(bedCode string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBedCode,
				Operator: gDto.FilterOperatorEq,
				Value:    bedCode,
				Table:    model.TableName,
			},
		},
	}
}
