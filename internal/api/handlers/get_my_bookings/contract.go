package get_my_bookings

import (
	"context"

	"github.com/m04kA/GameZone-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByPhone(ctx context.Context, phone string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
