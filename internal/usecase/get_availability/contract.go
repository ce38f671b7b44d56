package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на дату вместе с устройствами
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
