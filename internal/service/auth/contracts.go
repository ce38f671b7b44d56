package auth

import (
	"context"
	"time"
)

// CodeStore интерфейс хранилища одноразовых кодов и счетчиков попыток.
// Значения живут в Redis с TTL, состояние между инстансами общее.
type CodeStore interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// OTPSender интерфейс отправки одноразового кода
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
