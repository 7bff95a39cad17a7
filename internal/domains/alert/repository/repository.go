package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bedboard/infras/otel"
	"bedboard/infras/postgres"
	"bedboard/internal/domains/alert/model"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/logger"
	gRepo "bedboard/shared/repository"
)

type Alert interface {
	Insert(ctx context.Context, model model.Alert) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Alert, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Alert, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistActive(ctx context.Context, alertType, ward string) (bool, error)
	GetActiveForUser(ctx context.Context, role, userID string) ([]model.Alert, error)
	InsertDismissal(ctx context.Context, dismissal model.Dismissal) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Alert]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Alert {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Alert](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExistActive reports whether an alert of the given type and ward exists with
// no dismissal rows at all. Active means untouched by every user, matching
// the dedup rule keyed on the structured (type, ward) pair.
func (repo *repositoryImpl) ExistActive(ctx context.Context, alertType, ward string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".alert.ExistActive")
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT EXISTS(
			SELECT 1 FROM %s a
			WHERE a.%s = :type AND a.%s = :ward
			AND NOT EXISTS (SELECT 1 FROM %s d WHERE d.%s = a.%s)
		)`,
		model.TableName, model.FieldType, model.FieldWard,
		model.DismissalTableName, model.FieldDismissalAlertID, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (alert): %w", err)
	}
	defer prepare.Close()

	args := map[string]any{"type": alertType, "ward": ward}

	if err := prepare.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check active alert: %w", err)
	}

	return exist, nil
}

// GetActiveForUser lists alerts targeting the role that the user has not yet
// dismissed, newest first.
func (repo *repositoryImpl) GetActiveForUser(ctx context.Context, role, userID string) ([]model.Alert, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".alert.GetActiveForUser")
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT a.* FROM %s a
		WHERE :role = ANY(a.%s)
		AND NOT EXISTS (SELECT 1 FROM %s d WHERE d.%s = a.%s AND d.%s = :user_id)
		ORDER BY a.%s DESC`,
		model.TableName, model.FieldTargetRoles,
		model.DismissalTableName, model.FieldDismissalAlertID, model.FieldID, model.FieldDismissalUserID,
		model.FieldRaisedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var alerts []model.Alert

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (alert): %w", err)
	}
	defer prepare.Close()

	args := map[string]any{"role": role, "user_id": userID}

	if err := prepare.SelectContext(ctx, &alerts, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active alerts: %w", err)
	}

	return alerts, nil
}

func (repo *repositoryImpl) InsertDismissal(ctx context.Context, dismissal model.Dismissal) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".alert.InsertDismissal")
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, dismissed_at) VALUES (:alert_id, :user_id, :dismissed_at)
		ON CONFLICT (%s, %s) DO NOTHING`,
		model.DismissalTableName, model.FieldDismissalAlertID, model.FieldDismissalUserID,
		model.FieldDismissalAlertID, model.FieldDismissalUserID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, dismissal); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert alert dismissal: %w", err)
	}

	return nil
}
