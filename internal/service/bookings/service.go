package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GameZone-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Гость видит только свои бронирования (сверка по телефону из токена),
// админ - любые (requesterPhone пустой).
func (s *Service) GetByID(ctx context.Context, id int64, requesterPhone string, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && normalizePhone(booking.CustomerPhone) != normalizePhone(requesterPhone) {
		s.logger.Warn("GetByID: access denied to booking id=%d", id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetByPhone получает историю бронирований гостя по телефону
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: GetByPhone - empty phone", ErrInvalidInput)
	}

	s.logger.Info("GetByPhone: fetching bookings for phone=%s", phone)

	items, err := s.bookingRepo.GetByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(items), nil
}

// normalizePhone сводит телефон к цифрам, чтобы +7 (900) 123-45-67
// и 79001234567 считались одним номером
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
