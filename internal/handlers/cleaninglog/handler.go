package cleaninglog

import (
	"net/http"

	"bedboard/infras/otel"
	"bedboard/internal/domains/cleaninglog/service"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CleaningLog
	otel    otel.Otel
}

func New(service service.CleaningLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cleaning", func(routerGroup chi.Router) {
		routerGroup.Get("/queue", handler.GetQueue)
		routerGroup.Get("/history/{id}", handler.GetHistory)
	})
}

// GetQueue lists the active cleaning episodes, overdue first.
// @Summary Get the cleaning queue
// @Description Retrieve active cleaning episodes ordered with overdue episodes first.
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param ward query string false "Filter by ward"
// @Success 200 {object} response.Data[dto.GetCleaningQueueResponse] "Cleaning queue"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning/queue [get]
// @Security BearerAuth
func (handler *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQueue")
	defer scope.End()

	ward := r.URL.Query().Get(constant.RequestParamWard)

	queue, err := handler.service.Queue(ctx, ward)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning queue")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning queue retrieved successfully")

	response.WithJSON(w, http.StatusOK, queue)
}

// GetHistory lists the cleaning episodes of a bed.
// @Summary Get cleaning history
// @Description Retrieve the cleaning episodes of a bed with pagination.
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCleaningLogsResponse] "Cleaning history"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning/history/{id} [get]
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
		log.Error().Err(err).Msg("failed to get cleaning history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}
