package get_availability

import (
	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/pkg/types"
)

// buildOccupancy строит по бронированиям множество занятых слотов
// для каждого экземпляра устройства.
//
// Бронирование занимает duration/30 подряд идущих слотов, начиная со своего
// времени начала, для каждого устройства из своих строк устройств. Метки вне
// дневной сетки (данные, прошедшие мимо валидации) молча отбрасываются -
// чтение занятости не должно падать из-за кривой строки.
func buildOccupancy(bookings []*domain.Booking) map[string]map[types.TimeString]bool {
	occupied := make(map[string]map[types.TimeString]bool)

	for _, booking := range bookings {
		slots := booking.AffectedSlots()
		if len(slots) == 0 {
			continue
		}

		for _, device := range booking.Devices {
			instance := device.InstanceID()
			if occupied[instance] == nil {
				occupied[instance] = make(map[types.TimeString]bool)
			}
			for _, slot := range slots {
				occupied[instance][slot] = true
			}
		}
	}

	return occupied
}

// resolveSlots вычисляет состояние каждого слота дневной сетки.
// Слот полностью занят, только когда заняты все экземпляры устройств;
// иначе перечисляются свободные устройства.
func resolveSlots(occupied map[string]map[types.TimeString]bool) []domain.SlotOccupancy {
	dailySlots := domain.DailySlots()
	instances := domain.AllDeviceInstances()

	result := make([]domain.SlotOccupancy, 0, len(dailySlots))

	for _, slot := range dailySlots {
		free := make([]string, 0, len(instances))
		for _, instance := range instances {
			if !occupied[instance][slot] {
				free = append(free, instance)
			}
		}

		result = append(result, domain.SlotOccupancy{
			Slot:        slot,
			FullyBooked: len(free) == 0,
			FreeDevices: free,
		})
	}

	return result
}
