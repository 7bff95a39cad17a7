package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bedboard/config"
	"bedboard/infras/otel"
	"bedboard/internal/domains/alert/model"
	"bedboard/internal/domains/alert/model/dto"
	"bedboard/internal/domains/alert/repository"
	bedRepo "bedboard/internal/domains/bed/repository"
	"bedboard/internal/events"
	"bedboard/shared"
	"bedboard/shared/constant"
	"bedboard/shared/failure"
	gModel "bedboard/shared/model"
	"bedboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Alert interface {
	CheckWardOccupancy(ctx context.Context, ward string) (dto.CheckResult, error)
	GetActive(ctx context.Context, role, userID string) (dto.GetAlertsResponse, error)
	Dismiss(ctx context.Context, alertID, userID string) error
}

type serviceImpl struct {
	repo      repository.Alert
	bedRepo   bedRepo.Bed
	cfg       *config.Config
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Alert, bedRepo bedRepo.Bed, cfg *config.Config, otel otel.Otel, publisher events.Publisher) Alert {
	return &serviceImpl{
		repo:      repo,
		bedRepo:   bedRepo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// CheckWardOccupancy evaluates the ward's occupancy rate and raises a
// threshold alert when it crosses the configured line. The check-then-act
// sequence is unsynchronized; a rare duplicate under concurrent callers is
// accepted as at-least-once signaling.
func (s *serviceImpl) CheckWardOccupancy(ctx context.Context, ward string) (res dto.CheckResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckWardOccupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Ward = ward

	counts, err := s.bedRepo.CountByWard(ctx, ward)
	if err != nil {
		log.Error().Err(err).Str("ward", ward).Msg("failed to count beds by ward")

		return res, fmt.Errorf("failed to count beds by ward: %w", err)
	}

	res.TotalBeds = counts.Total
	res.OccupiedBeds = counts.Occupied

	if counts.Total == 0 {
		return res, nil
	}

	res.OccupancyRate = float64(counts.Occupied) / float64(counts.Total)

	if res.OccupancyRate <= s.cfg.Occupancy.AlertThreshold {
		return res, nil
	}

	severity := model.SeverityHigh
	if res.OccupancyRate >= s.cfg.Occupancy.CriticalThreshold {
		severity = model.SeverityCritical
	}

	res.Severity = severity

	active, err := s.repo.ExistActive(ctx, model.TypeOccupancyHigh, ward)
	if err != nil {
		log.Error().Err(err).Str("ward", ward).Msg("failed to check active alert")

		return res, fmt.Errorf("failed to check active alert: %w", err)
	}

	if active {
		return res, nil
	}

	now := timezone.Now()
	wardCopy := ward
	alert := model.Alert{
		ID:          uuid.NewString(),
		Type:        model.TypeOccupancyHigh,
		Severity:    severity,
		Message:     fmt.Sprintf("%s ward occupancy at %.0f%% (%d of %d beds occupied)", ward, res.OccupancyRate*100, counts.Occupied, counts.Total),
		Ward:        &wardCopy,
		TargetRoles: []string{constant.RoleManager, constant.RoleHospitalAdmin},
		RaisedAt:    now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	if err = s.repo.Insert(ctx, alert); err != nil {
		log.Error().Err(err).Str("ward", ward).Msg("failed to create occupancy alert")

		return res, fmt.Errorf("failed to create occupancy alert: %w", err)
	}

	res.AlertRaised = true

	s.publisher.PublishOccupancyAlert(ctx, events.OccupancyAlertEvent{
		AlertID:       alert.ID,
		Ward:          ward,
		Severity:      severity,
		OccupancyRate: res.OccupancyRate,
		Message:       alert.Message,
		OccurredAt:    now,
	})

	return res, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, role, userID string) (res dto.GetAlertsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActiveAlerts")
	defer scope.End()
	defer scope.TraceIfError(err)

	alerts, err := s.repo.GetActiveForUser(ctx, role, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active alerts")

		return res, fmt.Errorf("failed to get active alerts: %w", err)
	}

	res.FromModels(alerts)

	return res, nil
}

// Dismiss records a per-user dismissal. The alert row itself is never
// deleted; it simply stops being active for this user.
func (s *serviceImpl) Dismiss(ctx context.Context, alertID, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DismissAlert")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(alertID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if alert exists")

		return fmt.Errorf("failed to check if alert exists: %w", err)
	}

	if !exist {
		return failure.NotFound("alert not found")
	}

	dismissal := model.Dismissal{
		AlertID:     alertID,
		UserID:      userID,
		DismissedAt: timezone.Now(),
	}

	if err = s.repo.InsertDismissal(ctx, dismissal); err != nil {
		log.Error().Err(err).Msg("failed to dismiss alert")

		return fmt.Errorf("failed to dismiss alert: %w", err)
	}

	return nil
}
