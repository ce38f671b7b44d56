package queue

// BookingConfirmedEvent событие успешно созданного бронирования.
// Публикуется после коммита транзакции и потребляется воркером уведомлений.
type BookingConfirmedEvent struct {
	BookingID       int64  `json:"bookingId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	BookingDate     string `json:"bookingDate"` // YYYY-MM-DD
	StartTime       string `json:"startTime"`   // HH:MM
	DurationMinutes int    `json:"durationMinutes"`
	TotalPrice      int    `json:"totalPrice"`
}
