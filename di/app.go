package di

import (
	"bedboard/internal/scheduler"
	"bedboard/transport/http"
)

// App bundles the long-lived processes wired from one dependency graph.
type App struct {
	HTTP      *http.HTTP
	Scheduler scheduler.Scheduler
}
