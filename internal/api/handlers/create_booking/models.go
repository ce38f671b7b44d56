package create_booking

import (
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	createBooking "github.com/m04kA/GameZone-BookingService/internal/usecase/create_booking"
)

// ConsoleRequest выбор одной приставки
type ConsoleRequest struct {
	DeviceNumber int `json:"deviceNumber"` // 1..3
	PlayerCount  int `json:"playerCount"`  // 1..4
}

// CreateBookingRequest HTTP request model.
// Дата и время остаются строками до use case: ошибки формата должны
// попасть в общий список нарушений валидации, а не обрываться на разборе.
type CreateBookingRequest struct {
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	BookingDate     string           `json:"bookingDate"` // "2026-09-01"
	StartTime       string           `json:"startTime"`   // "10:00"
	DurationMinutes int              `json:"durationMinutes"`
	Consoles        []ConsoleRequest `json:"consoles"`
	DrivingSim      bool             `json:"drivingSim"`
	DrivingAfterPS5 bool             `json:"drivingAfterPs5"`
}

// DeviceResponse строка устройства в ответе
type DeviceResponse struct {
	DeviceType   string `json:"deviceType"`
	DeviceNumber *int   `json:"deviceNumber,omitempty"`
	PlayerCount  *int   `json:"playerCount,omitempty"`
	Price        int    `json:"price"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success         bool             `json:"success"`
	BookingID       int64            `json:"bookingId"`
	CustomerName    string           `json:"customerName"`
	BookingDate     string           `json:"bookingDate"`
	StartTime       string           `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	TotalPrice      int              `json:"totalPrice"`
	DrivingAfterPS5 bool             `json:"drivingAfterPs5"`
	Devices         []DeviceResponse `json:"devices"`
	CreatedAt       string           `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	consoles := make([]createBooking.ConsoleSelection, len(r.Consoles))
	for i, c := range r.Consoles {
		consoles[i] = createBooking.ConsoleSelection{
			DeviceNumber: c.DeviceNumber,
			PlayerCount:  c.PlayerCount,
		}
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		BookingDate:     r.BookingDate,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Consoles:        consoles,
		DrivingSim:      r.DrivingSim,
		DrivingAfterPS5: r.DrivingAfterPS5,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	devices := make([]DeviceResponse, len(resp.Devices))
	for i, d := range resp.Devices {
		devices[i] = DeviceResponse{
			DeviceType:   d.DeviceType,
			DeviceNumber: d.DeviceNumber,
			PlayerCount:  d.PlayerCount,
			Price:        d.Price,
		}
	}

	return &CreateBookingResponse{
		Success:         true,
		BookingID:       resp.ID,
		CustomerName:    resp.CustomerName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		DrivingAfterPS5: resp.DrivingAfterPS5,
		Devices:         devices,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
