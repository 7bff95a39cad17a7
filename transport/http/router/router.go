package router

import (
	"bedboard/internal/handlers/alert"
	"bedboard/internal/handlers/auth"
	"bedboard/internal/handlers/bed"
	"bedboard/internal/handlers/cleaninglog"
	"bedboard/internal/handlers/occupancylog"
	"bedboard/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Bed          bed.Handler
	OccupancyLog occupancylog.Handler
	CleaningLog  cleaninglog.Handler
	Alert        alert.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Bed.Router(routerGroup)
		r.DomainHandlers.OccupancyLog.Router(routerGroup)
		r.DomainHandlers.CleaningLog.Router(routerGroup)
		r.DomainHandlers.Alert.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
