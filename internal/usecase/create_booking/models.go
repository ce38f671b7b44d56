package create_booking

import "time"

// ConsoleSelection выбор одной приставки в запросе
type ConsoleSelection struct {
	DeviceNumber int // номер приставки, 1..3
	PlayerCount  int // количество игроков, 1..4
}

// Request модель запроса на создание бронирования.
// Дата и время передаются строками: их разбор - часть валидации,
// и ошибки формата попадают в общий список нарушений.
type Request struct {
	CustomerName    string
	CustomerPhone   string
	BookingDate     string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
	Consoles        []ConsoleSelection
	DrivingSim      bool // забронировать автосимулятор
	DrivingAfterPS5 bool // сессия на симуляторе после PS5
}

// DeviceLine строка устройства в ответе
type DeviceLine struct {
	DeviceType   string
	DeviceNumber *int
	PlayerCount  *int
	Price        int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	BookingDate     time.Time
	StartTime       string
	DurationMinutes int
	TotalPrice      int
	DrivingAfterPS5 bool
	Devices         []DeviceLine
	CreatedAt       time.Time
}
