package get_availability

import (
	"github.com/m04kA/GameZone-BookingService/internal/domain"
	getAvailability "github.com/m04kA/GameZone-BookingService/internal/usecase/get_availability"
)

// SlotResponse состояние одного получасового слота
type SlotResponse struct {
	Time        string   `json:"time"` // "09:00"
	FullyBooked bool     `json:"fullyBooked"`
	FreeDevices []string `json:"freeDevices"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"` // "2026-09-01"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:        s.Slot.String(),
			FullyBooked: s.FullyBooked,
			FreeDevices: s.FreeDevices,
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
