package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer воркер уведомлений: читает события бронирований из очереди
// и отправляет клиенту подтверждение через SMS-шлюз
type Consumer struct {
	url    string
	queue  string
	sender NotificationSender
	log    Logger
}

// NewConsumer создает воркер уведомлений
func NewConsumer(url, queueName string, sender NotificationSender, log Logger) *Consumer {
	return &Consumer{url: url, queue: queueName, sender: sender, log: log}
}

// Run запускает цикл потребления с переподключением.
// Возвращается только после отмены контекста.
func (c *Consumer) Run(ctx context.Context) {
	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("notification-consumer: dial failed: %v, retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn); err != nil {
			c.log.Warn("notification-consumer: consume loop ended: %v, reconnecting", err)
		}
		conn.Close()
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var event BookingConfirmedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.log.Error("notification-consumer: malformed event, dropping: %v", err)
		// Некорректное сообщение не вернется в очередь
		delivery.Nack(false, false)
		return
	}

	text := fmt.Sprintf(
		"Ваше бронирование №%d подтверждено: %s %s, %d мин. К оплате: %d руб.",
		event.BookingID, event.BookingDate, event.StartTime, event.DurationMinutes, event.TotalPrice,
	)

	if err := c.sender.SendMessage(ctx, event.CustomerPhone, text); err != nil {
		c.log.Error("notification-consumer: failed to notify booking_id=%d: %v", event.BookingID, err)
		// Шлюз мог быть временно недоступен - возвращаем сообщение в очередь
		delivery.Nack(false, true)
		return
	}

	c.log.Info("notification-consumer: confirmation sent for booking_id=%d", event.BookingID)
	delivery.Ack(false)
}
