package models

import (
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// DeviceResponse строка устройства в ответе
type DeviceResponse struct {
	DeviceType   string `json:"deviceType"`
	DeviceNumber *int   `json:"deviceNumber,omitempty"`
	PlayerCount  *int   `json:"playerCount,omitempty"`
	Price        int    `json:"price"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64            `json:"id"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	BookingDate     string           `json:"bookingDate"` // "2026-09-01"
	StartTime       string           `json:"startTime"`   // "10:00"
	EndTime         string           `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
	TotalPrice      int              `json:"totalPrice"`
	DrivingAfterPS5 bool             `json:"drivingAfterPs5"`
	Devices         []DeviceResponse `json:"devices"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	devices := make([]DeviceResponse, len(b.Devices))
	for i, d := range b.Devices {
		devices[i] = DeviceResponse{
			DeviceType:   string(d.DeviceType),
			DeviceNumber: d.DeviceNumber,
			PlayerCount:  d.PlayerCount,
			Price:        d.Price,
		}
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime(),
		DurationMinutes: b.DurationMinutes,
		TotalPrice:      b.TotalPrice,
		DrivingAfterPS5: b.DrivingAfterPS5,
		Devices:         devices,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookings конвертирует список domain моделей в DTO списка
func FromDomainBookings(items []*domain.Booking) *BookingListResponse {
	bookings := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		bookings = append(bookings, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: bookings}
}
