package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
	TypePaymentRecorded      = "payment.recorded"
)

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id,omitempty"`
	GuestID    string `json:"guest_id,omitempty"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// PaymentEvent is the payload published when a payment is recorded.
type PaymentEvent struct {
	Type       string  `json:"type"`
	PaymentID  string  `json:"payment_id"`
	BookingID  string  `json:"booking_id"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	OccurredAt string  `json:"occurred_at"`
}

// Publisher emits domain events to Kafka. Publishing is best-effort: a broker
// failure is logged and never fails the originating request.
type Publisher interface {
	PublishBooking(ctx context.Context, event BookingEvent)
	PublishPayment(ctx context.Context, event PaymentEvent)
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

func (p *publisherImpl) PublishBooking(ctx context.Context, event BookingEvent) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBooking")
	defer scope.End()

	event.OccurredAt = timezone.Now().Format(constant.DateFormat)

	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")
	}
}

func (p *publisherImpl) PublishPayment(ctx context.Context, event PaymentEvent) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishPayment")
	defer scope.End()

	event.OccurredAt = timezone.Now().Format(constant.DateFormat)

	err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.PaymentEvents, kafka.Message{
		Key:   event.PaymentID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish payment event")
	}
}
