package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"bedboard/infras/otel"
	"bedboard/infras/postgres"
	"bedboard/internal/domains/bed/model"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/logger"
	gRepo "bedboard/shared/repository"
)

// ErrVersionConflict is returned when a versioned update matches no row,
// meaning another writer got there first.
var ErrVersionConflict = errors.New("bed was modified concurrently")

type WardCount struct {
	Total    int `db:"total"`
	Occupied int `db:"occupied"`
}

type Bed interface {
	Insert(ctx context.Context, model model.Bed) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bed, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bed, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpdateVersioned(ctx context.Context, fields map[string]any, id string, version int) error
	CountByWard(ctx context.Context, ward string) (WardCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bed]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bed {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bed](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateVersioned applies fields to a single bed guarded by its optimistic
// concurrency token. The version column is bumped in the same statement; a
// zero-row result means the caller lost the race.
func (repo *repositoryImpl) UpdateVersioned(ctx context.Context, fields map[string]any, id string, version int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bed.UpdateVersioned")
	defer scope.End()

	setClauses := []string{}
	for col := range maps.Keys(fields) {
		setClauses = append(setClauses, fmt.Sprintf("%s = :%s", col, col))
	}
	setClauses = append(setClauses, "version = version + 1")

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = :_id AND %s = :_version",
		model.TableName, strings.Join(setClauses, ", "), model.FieldID, model.FieldVersion,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{"_id": id, "_version": version}
	maps.Copy(args, fields)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update bed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		scope.TraceError(ErrVersionConflict)

		return ErrVersionConflict
	}

	return nil
}

// CountByWard returns the total and occupied bed counts of a ward in one
// round trip.
func (repo *repositoryImpl) CountByWard(ctx context.Context, ward string) (WardCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bed.CountByWard")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE %s = :occupied) AS occupied FROM %s WHERE %s = :ward",
		model.FieldStatus, model.TableName, model.FieldWard,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count WardCount

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return count, fmt.Errorf("failed to prepare statement (bed): %w", err)
	}
	defer prepare.Close()

	args := map[string]any{"occupied": model.StatusOccupied, "ward": ward}

	if err := prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return count, fmt.Errorf("failed to count beds by ward: %w", err)
	}

	return count, nil
}
