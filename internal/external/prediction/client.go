package prediction

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"time"

	"bedboard/config"
	"bedboard/infras/otel"
	"bedboard/shared/constant"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

type dischargePrediction struct {
	HoursUntilDischarge float64 `json:"hours_until_discharge"`
}

type cleaningPrediction struct {
	DurationMinutes int `json:"duration_minutes"`
}

// DischargeEstimate is always usable; Source tells whether the model answered
// or the static per-ward table did.
type DischargeEstimate struct {
	Hours  float64
	Source string
}

type CleaningEstimate struct {
	Minutes int
	Source  string
}

// Client estimates discharge and cleaning durations, falling back to static
// per-ward constants when the model service fails or answers nonsense.
type Client interface {
	PredictDischarge(ctx context.Context, ward string, admissionTime time.Time) DischargeEstimate
	PredictCleaningDuration(ctx context.Context, ward string) CleaningEstimate
}

type clientImpl struct {
	rest *resty.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	rest := resty.New().
		SetBaseURL(cfg.External.Prediction.BaseURL).
		SetTimeout(time.Duration(cfg.External.Prediction.TimeoutSeconds) * time.Second)

	return &clientImpl{
		rest: rest,
		cfg:  cfg,
		otel: otel,
	}
}

func (c *clientImpl) PredictDischarge(ctx context.Context, ward string, admissionTime time.Time) DischargeEstimate {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".PredictDischarge")
	defer scope.End()

	var prediction dischargePrediction

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{"ward": ward, "admission_time": admissionTime}).
		SetResult(&prediction).
		Post("/predict/discharge")

	if err != nil || resp.IsError() || prediction.HoursUntilDischarge <= 0 {
		if err != nil {
			scope.TraceError(err)
		}

		log.Warn().Err(err).Str("ward", ward).Msg("discharge prediction unavailable, using fallback")

		return DischargeEstimate{Hours: c.fallbackHours(ward), Source: SourceFallback}
	}

	return DischargeEstimate{Hours: prediction.HoursUntilDischarge, Source: SourceModel}
}

func (c *clientImpl) PredictCleaningDuration(ctx context.Context, ward string) CleaningEstimate {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".PredictCleaningDuration")
	defer scope.End()

	var prediction cleaningPrediction

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]any{"ward": ward}).
		SetResult(&prediction).
		Post("/predict/cleaning-duration")

	if err != nil || resp.IsError() || prediction.DurationMinutes <= 0 {
		if err != nil {
			scope.TraceError(err)
		}

		log.Warn().Err(err).Str("ward", ward).Msg("cleaning prediction unavailable, using fallback")

		return CleaningEstimate{Minutes: c.cfg.Cleaning.DefaultDurationMinutes, Source: SourceFallback}
	}

	return CleaningEstimate{Minutes: prediction.DurationMinutes, Source: SourceModel}
}

func (c *clientImpl) fallbackHours(ward string) float64 {
	fallback := c.cfg.External.Prediction.FallbackHours

	switch ward {
	case constant.WardICU:
		return fallback.ICU
	case constant.WardEmergency:
		return fallback.Emergency
	default:
		return fallback.General
	}
}
