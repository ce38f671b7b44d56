package create_booking

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/pkg/types"
)

// Сообщения валидации. Возвращаются клиенту как есть, полным списком.
const (
	MsgNameTooShort      = "укажите имя (минимум 2 символа)"
	MsgPhoneTooShort     = "укажите телефон (минимум 10 цифр)"
	MsgDateRequired      = "укажите дату бронирования"
	MsgDateInvalid       = "некорректная дата бронирования, ожидается ГГГГ-ММ-ДД"
	MsgDateInPast        = "дата бронирования уже прошла"
	MsgDurationInvalid   = "длительность должна быть 30, 60, 90 или 120 минут"
	MsgStartTimeRequired = "укажите время начала"
	MsgStartTimeInvalid  = "некорректное время начала, ожидается ЧЧ:ММ"
	MsgStartTooEarly     = "клуб открывается в 09:00"
	MsgEndsPastClosing   = "сеанс должен закончиться не позже 24:00"
	MsgNoDevices         = "выберите хотя бы одно устройство"
	MsgBadConsoleNumber  = "номер приставки должен быть от 1 до 3"
	MsgBadPlayerCount    = "количество игроков должно быть от 1 до 4"
	MsgDuplicateConsole  = "одна и та же приставка выбрана дважды"
)

// validateRequest проверяет запрос и возвращает полный список нарушений.
// Пустой список означает валидный запрос. Проверки независимы и выполняются
// все: клиент получает каждое нарушение, а не только первое.
func validateRequest(req *Request, now time.Time) []string {
	messages := make([]string, 0)

	// Имя: минимум 2 символа после обрезки пробелов
	if utf8.RuneCountInString(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		messages = append(messages, MsgNameTooShort)
	}

	// Телефон: минимум 10 цифр (скобки, дефисы и плюс не считаются)
	if countDigits(req.CustomerPhone) < domain.MinPhoneDigits {
		messages = append(messages, MsgPhoneTooShort)
	}

	// Дата: присутствует, разбирается и не в прошлом
	if strings.TrimSpace(req.BookingDate) == "" {
		messages = append(messages, MsgDateRequired)
	} else if date, err := time.Parse(domain.DateFormat, req.BookingDate); err != nil {
		messages = append(messages, MsgDateInvalid)
	} else if isDateInPast(date, now) {
		messages = append(messages, MsgDateInPast)
	}

	// Длительность: только табличные значения
	if !domain.IsAllowedDuration(req.DurationMinutes) {
		messages = append(messages, MsgDurationInvalid)
	}

	// Время начала: присутствует, разбирается, в рабочих часах,
	// и сеанс не выходит за границу 24:00
	if strings.TrimSpace(req.StartTime) == "" {
		messages = append(messages, MsgStartTimeRequired)
	} else if startMinutes, ok := parseMinutes(req.StartTime); !ok {
		messages = append(messages, MsgStartTimeInvalid)
	} else {
		if startMinutes < domain.OpeningMinutes {
			messages = append(messages, MsgStartTooEarly)
		}
		// Начало ровно в 24:00 невозможно: startMinutes < 1440 по построению,
		// а выход за полночь ловится суммой start + duration
		if domain.IsAllowedDuration(req.DurationMinutes) &&
			startMinutes+req.DurationMinutes > domain.ClosingMinutes {
			messages = append(messages, MsgEndsPastClosing)
		}
	}

	// Устройства: хотя бы одно, приставки с корректными номерами и игроками
	if len(req.Consoles) == 0 && !req.DrivingSim {
		messages = append(messages, MsgNoDevices)
	}

	seen := make(map[int]bool, len(req.Consoles))
	for _, console := range req.Consoles {
		if console.DeviceNumber < 1 || console.DeviceNumber > domain.ConsoleCount {
			messages = append(messages, MsgBadConsoleNumber)
		} else if seen[console.DeviceNumber] {
			messages = append(messages, MsgDuplicateConsole)
		} else {
			seen[console.DeviceNumber] = true
		}

		if console.PlayerCount < domain.MinPlayerCount || console.PlayerCount > domain.MaxPlayerCount {
			messages = append(messages, MsgBadPlayerCount)
		}
	}

	return messages
}

// countDigits считает количество цифр в строке
func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// parseMinutes разбирает строгий HH:MM в минуты от полуночи.
// Разбор тот же, что и в TimeString: "9:00" здесь получает сообщение
// валидации, а не ошибку разбора дальше по цепочке.
func parseMinutes(s string) (int, bool) {
	minutes, err := types.TimeString(s).Minutes()
	if err != nil {
		return 0, false
	}
	return minutes, true
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
