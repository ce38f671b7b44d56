package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/queue"
	"github.com/m04kA/GameZone-BookingService/pkg/ptr"
	"github.com/m04kA/GameZone-BookingService/pkg/types"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Заголовок и строки устройств пишутся в одной serializable-транзакции:
// бронирование либо создается целиком, либо не создается вовсе. Перед
// вставкой занятость на дату перечитывается с блокировкой FOR UPDATE,
// поэтому два конкурентных запроса на одно устройство и пересекающееся
// время не могут закоммититься оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, date=%s, time=%s, duration=%d, consoles=%d, sim=%t",
		req.CustomerPhone, req.BookingDate, req.StartTime, req.DurationMinutes, len(req.Consoles), req.DrivingSim)

	now := uc.timeProvider.Now()

	// 1. Валидация запроса: все нарушения собираются и возвращаются разом
	if messages := validateRequest(req, now); len(messages) > 0 {
		uc.logger.Warn("CreateBooking: validation failed: %v", messages)
		return nil, &ValidationError{Messages: messages}
	}

	// После валидации разбор даты и времени не может не удаться
	date, err := time.Parse(domain.DateFormat, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: parse date: %v", ErrInternal, err)
	}
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: parse start time: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 2. Все операции с БД в serializable-транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Перечитываем занятость на дату с блокировкой FOR UPDATE
		existing, err := uc.bookingRepo.GetByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.2. Проверяем конфликты по каждому запрошенному устройству
		if conflict := findConflict(req, startTime, existing); conflict != "" {
			uc.logger.Warn("CreateBooking: conflict on %s for %s %s", conflict, req.BookingDate, req.StartTime)
			return fmt.Errorf("%w: %s", ErrSlotConflict, conflict)
		}

		// 2.3. Считаем цены построчно; нулевая цена - ошибка данных,
		// бронирование с такой строкой не записывается
		devices, totalPrice, err := buildAssignments(req)
		if err != nil {
			uc.logger.Error("CreateBooking: pricing failed: %v", err)
			return err
		}

		// 2.4. Вставляем заголовок бронирования
		booking := &domain.Booking{
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			BookingDate:     date,
			StartTime:       startTime,
			DurationMinutes: req.DurationMinutes,
			TotalPrice:      totalPrice,
			DrivingAfterPS5: req.DrivingAfterPS5,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.5. Вставляем строки устройств
		if err := uc.bookingRepo.CreateDeviceAssignments(txCtx, created.ID, devices); err != nil {
			uc.logger.Error("CreateBooking: failed to create device assignments: %v", err)
			return fmt.Errorf("%w: failed to create device assignments: %v", ErrInternal, err)
		}

		created.Devices = devices
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%d", result.ID, result.TotalPrice)

	// 3. Публикуем событие для воркера уведомлений (после коммита).
	// Ошибка публикации бронирование не откатывает.
	if uc.publisher != nil {
		event := queue.BookingConfirmedEvent{
			BookingID:       result.ID,
			CustomerName:    result.CustomerName,
			CustomerPhone:   result.CustomerPhone,
			BookingDate:     result.BookingDate.Format(domain.DateFormat),
			StartTime:       result.StartTime.String(),
			DurationMinutes: result.DurationMinutes,
			TotalPrice:      result.TotalPrice,
		}
		if err := uc.publisher.PublishBookingConfirmed(ctx, event); err != nil {
			uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result), nil
}

// findConflict ищет пересечение запрошенных устройств с существующими
// бронированиями. Возвращает идентификатор первого конфликтующего
// экземпляра устройства или пустую строку.
//
// Пересечение интервалов строгое: бронирование, заканчивающееся ровно
// в момент начала нового, конфликтом не считается.
func findConflict(req *Request, startTime types.TimeString, existing []*domain.Booking) string {
	requested := make(map[string]bool, len(req.Consoles)+1)
	for _, console := range req.Consoles {
		requested[domain.ConsoleInstanceID(console.DeviceNumber)] = true
	}
	if req.DrivingSim {
		requested[domain.SimulatorInstanceID] = true
	}

	// Сравниваем в минутах от полуночи: конец сеанса может быть ровно
	// 24:00, что не выражается как TimeString
	reqStart, err := startTime.Minutes()
	if err != nil {
		return ""
	}
	reqEnd := reqStart + req.DurationMinutes

	for _, booking := range existing {
		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bookingEnd := bookingStart + booking.DurationMinutes

		if bookingStart >= reqEnd || bookingEnd <= reqStart {
			continue
		}

		for _, device := range booking.Devices {
			if instance := device.InstanceID(); requested[instance] {
				return instance
			}
		}
	}

	return ""
}

// buildAssignments строит строки устройств с ценами и общую стоимость
func buildAssignments(req *Request) ([]domain.DeviceAssignment, int, error) {
	devices := make([]domain.DeviceAssignment, 0, len(req.Consoles)+1)
	total := 0

	for _, console := range req.Consoles {
		price := domain.ConsolePrice(console.PlayerCount, req.DurationMinutes)
		if price == 0 {
			return nil, 0, fmt.Errorf("%w: console players=%d duration=%d",
				ErrPricingLookup, console.PlayerCount, req.DurationMinutes)
		}
		devices = append(devices, domain.DeviceAssignment{
			DeviceType:   domain.DeviceConsole,
			DeviceNumber: ptr.Ptr(console.DeviceNumber),
			PlayerCount:  ptr.Ptr(console.PlayerCount),
			Price:        price,
		})
		total += price
	}

	if req.DrivingSim {
		price := domain.SimulatorPrice(req.DurationMinutes)
		if price == 0 {
			return nil, 0, fmt.Errorf("%w: driving_sim duration=%d", ErrPricingLookup, req.DurationMinutes)
		}
		devices = append(devices, domain.DeviceAssignment{
			DeviceType: domain.DeviceSimulator,
			Price:      price,
		})
		total += price
	}

	return devices, total, nil
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(booking *domain.Booking) *Response {
	devices := make([]DeviceLine, len(booking.Devices))
	for i, d := range booking.Devices {
		devices[i] = DeviceLine{
			DeviceType:   string(d.DeviceType),
			DeviceNumber: d.DeviceNumber,
			PlayerCount:  d.PlayerCount,
			Price:        d.Price,
		}
	}

	return &Response{
		ID:              booking.ID,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime.String(),
		DurationMinutes: booking.DurationMinutes,
		TotalPrice:      booking.TotalPrice,
		DrivingAfterPS5: booking.DrivingAfterPS5,
		Devices:         devices,
		CreatedAt:       booking.CreatedAt,
	}
}
