package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("queue.publisher: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("queue.publisher: failed to publish event")
)

// Publisher публикует события бронирований в RabbitMQ.
// Ошибки публикации логируются и возвращаются вызывающему, но создание
// бронирования из-за них не откатывается: уведомление вторично.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	log   Logger
}

// NewPublisher подключается к брокеру и декларирует durable-очередь
func NewPublisher(url, queueName string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: declare queue %s: %v", ErrConnect, queueName, err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queueName, log: log}, nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// PublishBookingConfirmed публикует событие созданного бронирования.
// Сообщения помечаются persistent, чтобы пережить рестарт брокера.
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("PublishBookingConfirmed: publish failed for booking_id=%d: %v", event.BookingID, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("PublishBookingConfirmed: published booking_id=%d", event.BookingID)
	return nil
}
