package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// UseCase use case получения занятости слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятости.
// Занятость считается заново на каждый запрос: дневной объем бронирований
// небольшой, а чтения сильно преобладают над записями, кэш не нужен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Загружаем бронирования на дату вместе с устройствами
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Строим занятость по экземплярам устройств и агрегируем по слотам
	occupied := buildOccupancy(bookings)
	slots := resolveSlots(occupied)

	uc.logger.Info("GetAvailability: resolved %d slots for date=%s from %d bookings",
		len(slots), req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
