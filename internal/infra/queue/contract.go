package queue

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NotificationSender интерфейс отправки подтверждений клиенту.
// Реализуется клиентом SMS-шлюза.
type NotificationSender interface {
	SendMessage(ctx context.Context, phone, text string) error
}
