package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"bedboard/infras/otel"
	"bedboard/infras/postgres"
	"bedboard/internal/domains/occupancylog/model"
	gDto "bedboard/shared/dto"
	gRepo "bedboard/shared/repository"
)

type OccupancyLog interface {
	Insert(ctx context.Context, model model.OccupancyLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OccupancyLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OccupancyLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OccupancyLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) OccupancyLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OccupancyLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
