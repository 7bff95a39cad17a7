//go:build wireinject
// +build wireinject

package di

import (
	"bedboard/config"
	"bedboard/infras/jwt"
	"bedboard/infras/kafka"
	"bedboard/infras/otel"
	"bedboard/infras/postgres"
	"bedboard/infras/redis"
	"bedboard/internal/events"
	"bedboard/internal/external/prediction"
	"bedboard/internal/scheduler"
	"bedboard/permissions"
	"bedboard/shared/cache"
	"bedboard/transport/http"
	"bedboard/transport/http/middleware"
	"bedboard/transport/http/router"

	alertRepository "bedboard/internal/domains/alert/repository"
	alertService "bedboard/internal/domains/alert/service"
	authService "bedboard/internal/domains/auth/service"
	bedRepository "bedboard/internal/domains/bed/repository"
	bedService "bedboard/internal/domains/bed/service"
	cleaningRepository "bedboard/internal/domains/cleaninglog/repository"
	cleaningService "bedboard/internal/domains/cleaninglog/service"
	occupancyRepository "bedboard/internal/domains/occupancylog/repository"
	occupancyService "bedboard/internal/domains/occupancylog/service"
	userRepository "bedboard/internal/domains/user/repository"
	userService "bedboard/internal/domains/user/service"

	alertHandler "bedboard/internal/handlers/alert"
	authHandler "bedboard/internal/handlers/auth"
	bedHandler "bedboard/internal/handlers/bed"
	cleaningHandler "bedboard/internal/handlers/cleaninglog"
	occupancyHandler "bedboard/internal/handlers/occupancylog"
	userHandler "bedboard/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var integrations = wire.NewSet(
	events.New,
	prediction.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var bedDomain = wire.NewSet(
	bedRepository.New,
	bedService.New,
	occupancyRepository.New,
	occupancyService.New,
	cleaningRepository.New,
	cleaningService.New,
)

var alertDomain = wire.NewSet(
	alertRepository.New,
	alertService.New,
	wire.Bind(new(bedService.AlertChecker), new(alertService.Alert)),
)

var domains = wire.NewSet(
	authDomain,
	bedDomain,
	alertDomain,
)

var jobs = wire.NewSet(
	scheduler.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bedHandler.New,
	occupancyHandler.New,
	cleaningHandler.New,
	alertHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		integrations,
		domains,
		jobs,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
