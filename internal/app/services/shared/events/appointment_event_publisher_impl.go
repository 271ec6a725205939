package events

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp091.Channel the publisher uses.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
	Close() error
}

type channelOpener func() (amqpChannel, error)

type appointmentEventPublisher struct {
	mu          sync.Mutex
	openChannel channelOpener
	Channel     amqpChannel
	Queue       string
}

func NewAppointmentEventPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.AppointmentEventPublisher, error) {
	return newAppointmentEventPublisher(func() (amqpChannel, error) {
		return rabbitMQConnection.Channel()
	}, queue)
}

func newAppointmentEventPublisher(openChannel channelOpener, queue string) (*appointmentEventPublisher, error) {
	publisher := &appointmentEventPublisher{
		openChannel: openChannel,
		Queue:       queue,
	}
	if err := publisher.connect(); err != nil {
		return nil, err
	}
	return publisher, nil
}

// connect opens a channel and declares the durable queue. Callers hold mu,
// except the constructor.
func (p *appointmentEventPublisher) connect() error {
	channel, err := p.openChannel()
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(p.Queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return err
	}

	p.Channel = channel
	return nil
}

func (p *appointmentEventPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Channel == nil || p.Channel.IsClosed() {
		if err := p.connect(); err != nil {
			return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
		}
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if errors.Is(err, amqp091.ErrClosed) {
		// The channel died between the check and the publish; retry once on a fresh one.
		if err = p.connect(); err == nil {
			err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
		}
	}
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
