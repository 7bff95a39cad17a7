package alert

import (
	"net/http"

	"bedboard/infras/otel"
	"bedboard/internal/domains/alert/service"
	"bedboard/shared/constant"
	"bedboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Alert
	otel    otel.Otel
}

func New(service service.Alert, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/alerts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetActiveAlerts)
		routerGroup.Patch("/{id}/dismiss", handler.DismissAlert)
		routerGroup.Post("/check/{ward}", handler.CheckWard)
	})
}

// GetActiveAlerts lists the alerts visible to the requesting user.
// @Summary Get active alerts
// @Description Retrieve active alerts targeted at the user's role, excluding dismissed ones.
// @Tags Alert
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAlertsResponse] "Active alerts"
// @Failure 500 {object} response.Error
// @Router /v1/alerts [get]
// @Security BearerAuth
func (handler *Handler) GetActiveAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveAlerts")
	defer scope.End()

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	alerts, err := handler.service.GetActive(ctx, role, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active alerts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active alerts retrieved successfully")

	response.WithJSON(w, http.StatusOK, alerts)
}

// DismissAlert dismisses an alert for the requesting user.
// @Summary Dismiss an alert
// @Description Dismiss an alert for the current user only, other users keep seeing it.
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Message "Alert dismissed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/alerts/{id}/dismiss [patch]
// @Security BearerAuth
func (handler *Handler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissAlert")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Dismiss(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to dismiss alert")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Alert dismissed successfully")

	response.WithMessage(w, http.StatusOK, "Alert dismissed successfully")
}

// CheckWard evaluates a ward's occupancy against the alert thresholds.
// @Summary Check ward occupancy
// @Description Run the occupancy check for a ward and raise an alert if warranted.
// @Tags Alert
// @Accept json
// @Produce json
// @Param ward path string true "Ward name"
// @Success 200 {object} response.Data[dto.CheckResult] "Occupancy check result"
// @Failure 500 {object} response.Error
// @Router /v1/alerts/check/{ward} [post]
// @Security BearerAuth
func (handler *Handler) CheckWard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckWard")
	defer scope.End()

	ward := chi.URLParam(r, constant.RequestParamWard)

	res, err := handler.service.CheckWardOccupancy(ctx, ward)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check ward occupancy")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ward occupancy checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}
