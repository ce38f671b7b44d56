package domain

import "fmt"

// Business hours: the lounge opens at 09:00 and the last slot ends at 24:00
const (
	OpeningMinutes = 9 * 60  // 09:00
	ClosingMinutes = 24 * 60 // 24:00 (exclusive end of day)

	SlotDurationMinutes = 30
)

// Hardware inventory: three PS5 consoles and one driving simulator
const (
	ConsoleCount = 3

	MinPlayerCount = 1
	MaxPlayerCount = 4
)

// Device instance identifiers exposed in availability responses
const SimulatorInstanceID = "driving-sim"

// ConsoleInstanceID returns the instance identifier for console number n
func ConsoleInstanceID(n int) string {
	return fmt.Sprintf("console-%d", n)
}

// AllowedDurations are the bookable session lengths in minutes
var AllowedDurations = []int{30, 60, 90, 120}

// IsAllowedDuration reports whether d is a bookable session length
func IsAllowedDuration(d int) bool {
	for _, allowed := range AllowedDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation constants for customer fields
const (
	MinCustomerNameLength = 2
	MinPhoneDigits        = 10
)
