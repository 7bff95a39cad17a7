package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"bedboard/config"
	"bedboard/infras/kafka"
	"bedboard/infras/otel"
	bedDto "bedboard/internal/domains/bed/model/dto"
	"bedboard/shared/constant"

	"github.com/rs/zerolog/log"
)

const globalKey = "global"

const publishTimeout = 5 * time.Second

// BedChangedEvent carries the full bed snapshot of a completed transition.
type BedChangedEvent struct {
	Bed            bedDto.BedResponse `json:"bed"`
	PreviousStatus string             `json:"previous_status"`
	NewStatus      string             `json:"new_status"`
	Ward           string             `json:"ward"`
	Actor          string             `json:"actor"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

type CleaningEvent struct {
	BedID             string    `json:"bed_id"`
	BedCode           string    `json:"bed_code"`
	Ward              string    `json:"ward"`
	EpisodeID         string    `json:"episode_id,omitempty"`
	EstimatedDuration int       `json:"estimated_duration,omitempty"`
	ActualDuration    *int      `json:"actual_duration,omitempty"`
	Actor             string    `json:"actor"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type OccupancyAlertEvent struct {
	AlertID       string    `json:"alert_id"`
	Ward          string    `json:"ward"`
	Severity      string    `json:"severity"`
	OccupancyRate float64   `json:"occupancy_rate"`
	Message       string    `json:"message"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher is the notification sink of the lifecycle coordinator. Delivery
// is fire-and-forget; a slow or unreachable broker never stalls a bed
// transition.
type Publisher interface {
	PublishBedChanged(ctx context.Context, event BedChangedEvent)
	PublishCleaningStarted(ctx context.Context, event CleaningEvent)
	PublishCleaningCompleted(ctx context.Context, event CleaningEvent)
	PublishOccupancyAlert(ctx context.Context, event OccupancyAlertEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// PublishBedChanged emits a ward-keyed and a global copy of the snapshot so
// both ward dashboards and hospital-wide consumers see the change.
func (p *publisherImpl) PublishBedChanged(ctx context.Context, event BedChangedEvent) {
	p.send(ctx, p.cfg.Kafka.Topics.BedChanged,
		kafka.Message{Key: "ward:" + event.Ward, Value: event},
		kafka.Message{Key: globalKey, Value: event},
	)
}

func (p *publisherImpl) PublishCleaningStarted(ctx context.Context, event CleaningEvent) {
	p.send(ctx, p.cfg.Kafka.Topics.CleaningStarted, kafka.Message{Key: "ward:" + event.Ward, Value: event})
}

func (p *publisherImpl) PublishCleaningCompleted(ctx context.Context, event CleaningEvent) {
	p.send(ctx, p.cfg.Kafka.Topics.CleaningComplete, kafka.Message{Key: "ward:" + event.Ward, Value: event})
}

func (p *publisherImpl) PublishOccupancyAlert(ctx context.Context, event OccupancyAlertEvent) {
	p.send(ctx, p.cfg.Kafka.Topics.OccupancyAlert, kafka.Message{Key: globalKey, Value: event})
}

func (p *publisherImpl) send(ctx context.Context, topic string, messages ...kafka.Message) {
	detached := context.WithoutCancel(ctx)

	go func() {
		c, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()

		_, scope := p.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish."+topic)
		defer scope.End()

		if err := p.client.SendMessages(c, topic, messages...); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish event")
		}
	}()
}
