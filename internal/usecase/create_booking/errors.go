package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrSlotConflict возвращается, когда запрошенное устройство уже занято
	// в пересекающемся интервале времени
	ErrSlotConflict = errors.New("create_booking: device already booked for this time")

	// ErrPricingLookup возвращается, когда комбинация устройства, длительности
	// и количества игроков отсутствует в таблице цен. Нулевая цена - ошибка
	// данных, такая строка не должна попасть в бронирование.
	ErrPricingLookup = errors.New("create_booking: no price for requested combination")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации запроса.
// Содержит все найденные нарушения разом: проверки не прерываются на первой,
// чтобы клиент увидел полный список проблем.
type ValidationError struct {
	Messages []string
}

// Error возвращает все сообщения одной строкой
func (e *ValidationError) Error() string {
	return "create_booking: validation failed: " + strings.Join(e.Messages, "; ")
}
