package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() *Request {
	return &Request{
		CustomerName:    "Иван",
		CustomerPhone:   "+7 (900) 123-45-67",
		BookingDate:     "2026-09-05",
		StartTime:       "10:00",
		DurationMinutes: 60,
		Consoles: []ConsoleSelection{
			{DeviceNumber: 1, PlayerCount: 2},
		},
	}
}

func testNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func TestValidateRequestValid(t *testing.T) {
	assert.Empty(t, validateRequest(validRequest(), testNow()))
}

func TestValidateRequestSingleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   string
	}{
		{
			name:   "short name",
			mutate: func(r *Request) { r.CustomerName = "И" },
			want:   MsgNameTooShort,
		},
		{
			name:   "short phone",
			mutate: func(r *Request) { r.CustomerPhone = "12345" },
			want:   MsgPhoneTooShort,
		},
		{
			name:   "missing date",
			mutate: func(r *Request) { r.BookingDate = "" },
			want:   MsgDateRequired,
		},
		{
			name:   "malformed date",
			mutate: func(r *Request) { r.BookingDate = "05.09.2026" },
			want:   MsgDateInvalid,
		},
		{
			name:   "past date",
			mutate: func(r *Request) { r.BookingDate = "2026-08-31" },
			want:   MsgDateInPast,
		},
		{
			name:   "bad duration",
			mutate: func(r *Request) { r.DurationMinutes = 45 },
			want:   MsgDurationInvalid,
		},
		{
			name:   "missing start time",
			mutate: func(r *Request) { r.StartTime = "" },
			want:   MsgStartTimeRequired,
		},
		{
			name:   "malformed start time",
			mutate: func(r *Request) { r.StartTime = "10am" },
			want:   MsgStartTimeInvalid,
		},
		{
			name:   "before opening",
			mutate: func(r *Request) { r.StartTime = "08:30" },
			want:   MsgStartTooEarly,
		},
		{
			name:   "ends past closing",
			mutate: func(r *Request) { r.StartTime = "23:30"; r.DurationMinutes = 60 },
			want:   MsgEndsPastClosing,
		},
		{
			name:   "no devices",
			mutate: func(r *Request) { r.Consoles = nil },
			want:   MsgNoDevices,
		},
		{
			name:   "bad console number",
			mutate: func(r *Request) { r.Consoles[0].DeviceNumber = 4 },
			want:   MsgBadConsoleNumber,
		},
		{
			name:   "bad player count",
			mutate: func(r *Request) { r.Consoles[0].PlayerCount = 5 },
			want:   MsgBadPlayerCount,
		},
		{
			name: "duplicate console",
			mutate: func(r *Request) {
				r.Consoles = append(r.Consoles, ConsoleSelection{DeviceNumber: 1, PlayerCount: 2})
			},
			want: MsgDuplicateConsole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			messages := validateRequest(req, testNow())
			assert.Equal(t, []string{tt.want}, messages)
		})
	}
}

// Проверки независимы: клиент получает весь список нарушений разом
func TestValidateRequestAccumulatesAllViolations(t *testing.T) {
	req := &Request{
		CustomerName:    "",
		CustomerPhone:   "123",
		BookingDate:     "not-a-date",
		StartTime:       "08:00",
		DurationMinutes: 45,
		Consoles: []ConsoleSelection{
			{DeviceNumber: 7, PlayerCount: 9},
		},
	}

	messages := validateRequest(req, testNow())

	assert.ElementsMatch(t, []string{
		MsgNameTooShort,
		MsgPhoneTooShort,
		MsgDateInvalid,
		MsgDurationInvalid,
		MsgStartTooEarly,
		MsgBadConsoleNumber,
		MsgBadPlayerCount,
	}, messages)
}

// Сегодняшняя дата не считается прошедшей
func TestValidateRequestTodayIsAllowed(t *testing.T) {
	req := validRequest()
	req.BookingDate = "2026-09-01"

	assert.Empty(t, validateRequest(req, testNow()))
}

// Сеанс, заканчивающийся ровно в 24:00, допустим
func TestValidateRequestLastSlotOfDay(t *testing.T) {
	req := validRequest()
	req.StartTime = "23:30"
	req.DurationMinutes = 30

	assert.Empty(t, validateRequest(req, testNow()))
}
