package get_availability

import (
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// Request модель запроса занятости на дату
type Request struct {
	Date time.Time // Дата, на которую запрашивается занятость (без времени)
}

// Response модель ответа с занятостью по слотам.
// Слоты идут в фиксированном дневном порядке: "09:00" .. "23:30".
type Response struct {
	Date  time.Time
	Slots []domain.SlotOccupancy
}
