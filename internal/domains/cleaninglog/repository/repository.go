package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"bedboard/infras/otel"
	"bedboard/infras/postgres"
	"bedboard/internal/domains/cleaninglog/model"
	gDto "bedboard/shared/dto"
	gRepo "bedboard/shared/repository"
)

type CleaningLog interface {
	Insert(ctx context.Context, model model.CleaningLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CleaningLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningLog, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CleaningLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
