package bed

import (
	"net/http"

	"bedboard/infras/otel"
	"bedboard/internal/domains/bed/model"
	"bedboard/internal/domains/bed/model/dto"
	"bedboard/internal/domains/bed/service"
	"bedboard/shared/constant"
	gDto "bedboard/shared/dto"
	"bedboard/shared/validator"
	"bedboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bed
	otel    otel.Otel
}

func New(service service.Bed, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/beds", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBed)
		routerGroup.Get("/", handler.GetBeds)
		routerGroup.Get("/occupied", handler.GetOccupiedBeds)
		routerGroup.Get("/predictions/discharge", handler.PredictDischarge)
		routerGroup.Get("/predictions/cleaning", handler.PredictCleaningDuration)
		routerGroup.Get("/{id}", handler.GetBedByID)
		routerGroup.Post("/{id}/transition", handler.TransitionBed)
		routerGroup.Post("/{id}/cleaning/complete", handler.CompleteCleaning)
		routerGroup.Patch("/{id}/discharge-time", handler.UpdateDischargeTime)
	})
}

// CreateBed registers a new bed.
// @Summary Create a new bed
// @Description Register a new bed with a unique code and a ward assignment.
// @Tags Bed
// @Accept json
// @Produce json
// @Param request body dto.CreateBedRequest true "Create Bed Request"
// @Success 201 {object} response.Message "Bed created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds [post]
// @Security BearerAuth
func (handler *Handler) CreateBed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBed")
	defer scope.End()

	req := dto.CreateBedRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed created successfully")

	response.WithMessage(w, http.StatusCreated, "Bed created successfully")
}

// GetBeds lists beds with optional ward and status filters.
// @Summary Get all beds
// @Description Retrieve beds with optional filtering and pagination.
// @Tags Bed
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param ward query string false "Filter by ward"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBedsResponse] "List of beds"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds [get]
// @Security BearerAuth
func (handler *Handler) GetBeds(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBeds")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if ward := r.URL.Query().Get(model.FieldWard); ward != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldWard,
			Operator: gDto.FilterOperatorEq,
			Value:    ward,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	beds, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get beds")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Beds retrieved successfully")

	response.WithJSON(w, http.StatusOK, beds)
}

// GetOccupiedBeds lists occupied beds enriched with time-in-bed.
// @Summary Get occupied beds
// @Description Retrieve occupied beds with time-in-bed and a per-ward summary.
// @Tags Bed
// @Accept json
// @Produce json
// @Param ward query string false "Filter by ward"
// @Success 200 {object} response.Data[dto.GetOccupiedBedsResponse] "List of occupied beds"
// @Failure 500 {object} response.Error
// @Router /v1/beds/occupied [get]
// @Security BearerAuth
func (handler *Handler) GetOccupiedBeds(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupiedBeds")
	defer scope.End()

	ward := r.URL.Query().Get(constant.RequestParamWard)

	beds, err := handler.service.GetOccupied(ctx, ward)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupied beds")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupied beds retrieved successfully")

	response.WithJSON(w, http.StatusOK, beds)
}

// GetBedByID retrieves a bed by its ID or bed code.
// @Summary Get a bed
// @Description Retrieve a bed by its unique identifier or bed code.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID or bed code"
// @Success 200 {object} response.Data[dto.BedResponse] "Bed details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBedByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBedByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bed, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed retrieved successfully")

	response.WithJSON(w, http.StatusOK, bed)
}

// TransitionBed changes a bed's lifecycle status.
// @Summary Transition a bed
// @Description Move a bed to a new status, applying the lifecycle rules.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID or bed code"
// @Param request body dto.TransitionRequest true "Transition Request"
// @Success 200 {object} response.Data[dto.TransitionResponse] "Bed transitioned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id}/transition [post]
// @Security BearerAuth
func (handler *Handler) TransitionBed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBed")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.TransitionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Transition(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed transitioned successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CompleteCleaning finishes a bed's cleaning episode.
// @Summary Complete cleaning
// @Description Close the active cleaning episode and return the bed to service.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID or bed code"
// @Param request body dto.CompleteCleaningRequest false "Complete Cleaning Request"
// @Success 200 {object} response.Data[dto.CompleteCleaningResponse] "Cleaning completed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id}/cleaning/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteCleaning")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CompleteCleaningRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CompleteCleaning(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete cleaning")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning completed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateDischargeTime sets the estimated discharge time on an occupied bed.
// @Summary Update discharge time
// @Description Update the estimated discharge time of an occupied bed.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID or bed code"
// @Param request body dto.UpdateDischargeRequest true "Update Discharge Request"
// @Success 200 {object} response.Message "Discharge time updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id}/discharge-time [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDischargeTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDischargeTime")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDischargeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDischargeTime(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update discharge time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discharge time updated successfully")

	response.WithMessage(w, http.StatusOK, "Discharge time updated successfully")
}

// PredictDischarge estimates hours until discharge for a ward.
// @Summary Predict discharge
// @Description Estimate the hours until discharge for beds in a ward.
// @Tags Bed
// @Accept json
// @Produce json
// @Param ward query string true "Ward name"
// @Success 200 {object} response.Data[dto.DischargePredictionResponse] "Discharge prediction"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/predictions/discharge [get]
// @Security BearerAuth
func (handler *Handler) PredictDischarge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PredictDischarge")
	defer scope.End()

	ward := r.URL.Query().Get(constant.RequestParamWard)

	res, err := handler.service.PredictDischarge(ctx, ward)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to predict discharge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Discharge prediction retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// PredictCleaningDuration estimates the cleaning duration for a ward.
// @Summary Predict cleaning duration
// @Description Estimate the cleaning duration in minutes for beds in a ward.
// @Tags Bed
// @Accept json
// @Produce json
// @Param ward query string true "Ward name"
// @Success 200 {object} response.Data[dto.CleaningPredictionResponse] "Cleaning duration prediction"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/predictions/cleaning [get]
// @Security BearerAuth
func (handler *Handler) PredictCleaningDuration(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PredictCleaningDuration")
	defer scope.End()

	ward := r.URL.Query().Get(constant.RequestParamWard)

	res, err := handler.service.PredictCleaningDuration(ctx, ward)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to predict cleaning duration")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning duration prediction retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
