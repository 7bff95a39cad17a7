package occupancylog

import (
	"net/http"

	"bedboard/infras/otel"
	"bedboard/internal/domains/occupancylog/service"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OccupancyLog
	otel    otel.Otel
}

func New(service service.OccupancyLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/logs/occupancy", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetHistory)
		routerGroup.Get("/{id}/occupants", handler.GetOccupantHistory)
	})
}

// GetHistory lists the occupancy ledger entries of a bed.
// @Summary Get occupancy history
// @Description Retrieve the occupancy ledger entries of a bed with pagination.
// @Tags OccupancyLog
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetOccupancyLogsResponse] "Occupancy history"
// @Failure 500 {object} response.Error
// @Router /v1/logs/occupancy/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	bedID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	history, err := handler.service.GetHistory(ctx, bedID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}

// GetOccupantHistory lists the stay periods derived from a bed's ledger.
// @Summary Get occupant history
// @Description Retrieve the stay periods of a bed, pairing assignments with releases.
// @Tags OccupancyLog
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Data[dto.GetOccupantHistoryResponse] "Occupant history"
// @Failure 500 {object} response.Error
// @Router /v1/logs/occupancy/{id}/occupants [get]
// @Security BearerAuth
func (handler *Handler) GetOccupantHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupantHistory")
	defer scope.End()

	bedID := chi.URLParam(r, constant.RequestParamID)

	history, err := handler.service.GetOccupantHistory(ctx, bedID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupant history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupant history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}
