package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"bedboard/config"
	"bedboard/infras/otel"
	"bedboard/internal/domains/occupancylog/model"
	"bedboard/internal/domains/occupancylog/model/dto"
	"bedboard/internal/domains/occupancylog/repository"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	gModel "bedboard/shared/model"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type OccupancyLog interface {
	Append(ctx context.Context, bedID, userID, statusChange string) error
	GetHistory(ctx context.Context, bedID string, params gDto.QueryParams) (dto.GetOccupancyLogsResponse, error)
	GetOccupantHistory(ctx context.Context, bedID string) (dto.GetOccupantHistoryResponse, error)
	LatestAssignments(ctx context.Context, bedIDs []string) (map[string]time.Time, error)
}

type serviceImpl struct {
	repo repository.OccupancyLog
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.OccupancyLog, cfg *config.Config, otel otel.Otel) OccupancyLog {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Append writes one immutable ledger row for a bed status change.
func (s *serviceImpl) Append(ctx context.Context, bedID, userID, statusChange string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AppendOccupancyLog")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	entry := model.OccupancyLog{
		ID:           uuid.NewString(),
		BedID:        bedID,
		UserID:       userID,
		StatusChange: statusChange,
		OccurredAt:   now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("bed_id", bedID).Msg("failed to append occupancy log")

		return fmt.Errorf("failed to append occupancy log: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, bedID string, params gDto.QueryParams) (res dto.GetOccupancyLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOccupancyHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := bedFilter(bedID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupancy logs")

		return res, fmt.Errorf("failed to count occupancy logs: %w", err)
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldOccurredAt
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy logs")

		return res, fmt.Errorf("failed to get occupancy logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// GetOccupantHistory derives stay periods from the ledger by pairing each
// assignment with the next release on the same bed.
func (s *serviceImpl) GetOccupantHistory(ctx context.Context, bedID string) (res dto.GetOccupantHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOccupantHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldOccurredAt, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, bedFilter(bedID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy logs")

		return res, fmt.Errorf("failed to get occupancy logs: %w", err)
	}

	res.BedID = bedID
	res.Periods = []dto.OccupantPeriod{}

	var open *dto.OccupantPeriod

	for _, entry := range models {
		switch entry.StatusChange {
		case model.StatusChangeAssigned:
			if open != nil {
				res.Periods = append(res.Periods, *open)
			}

			open = &dto.OccupantPeriod{UserID: entry.UserID, AssignedAt: entry.OccurredAt}
		case model.StatusChangeReleased:
			if open == nil {
				continue
			}

			releasedAt := entry.OccurredAt
			hours := releasedAt.Sub(open.AssignedAt).Hours()
			open.ReleasedAt = &releasedAt
			open.Hours = &hours

			res.Periods = append(res.Periods, *open)
			open = nil
		}
	}

	if open != nil {
		res.Periods = append(res.Periods, *open)
	}

	return res, nil
}

// LatestAssignments returns the most recent assignment timestamp per bed,
// for time-in-bed enrichment of occupied-bed listings.
func (s *serviceImpl) LatestAssignments(ctx context.Context, bedIDs []string) (res map[string]time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LatestAssignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = map[string]time.Time{}

	if len(bedIDs) == 0 {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBedID,
				Operator: gDto.FilterOperatorIn,
				Value:    bedIDs,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatusChange,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusChangeAssigned,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldOccurredAt, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest assignments")

		return res, fmt.Errorf("failed to get latest assignments: %w", err)
	}

	for _, entry := range models {
		res[entry.BedID] = entry.OccurredAt
	}

	return res, nil
}

func bedFilter(bedID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBedID,
				Operator: gDto.FilterOperatorEq,
				Value:    bedID,
				Table:    model.TableName,
			},
		},
	}
}
