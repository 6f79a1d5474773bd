package events

import (
	"context"
	"sync"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
)

type eventPublisher struct {
	Connection *amqp091.Connection
	QueueName  string
	Log        *zap.Logger
}

func NewEventPublisher(connection *amqp091.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.EventPublisher {
	onceEventPublisher.Do(func() {
		instance := &eventPublisher{
			Connection: connection,
			QueueName:  internalConfig.App.BookingEventsQueue,
			Log:        logger,
		}
		eventPublisherInstance = instance
	})
	return eventPublisherInstance
}

func (p *eventPublisher) PublishBookingEvent(ctx context.Context, event *contracts.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("eventPublisher.PublishBookingEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
		zap.String("event", event.Event),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	err = channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		p.Log.Error("eventPublisher.PublishBookingEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	p.Log.Info("eventPublisher.PublishBookingEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
	)
	return nil
}
