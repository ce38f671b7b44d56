package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/GameZone-BookingService/pkg/types"
)

// DeviceType identifies the kind of bookable hardware
type DeviceType string

const (
	DeviceConsole   DeviceType = "console"
	DeviceSimulator DeviceType = "driving_sim"
)

// Booking represents one reservation of gaming stations in the lounge
type Booking struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalPrice      int
	DrivingAfterPS5 bool

	// Devices committed within this booking; a booking always carries
	// at least one assignment (enforced by the create flow, cascade-deleted
	// with the booking row)
	Devices []DeviceAssignment

	CreatedAt time.Time
}

// DeviceAssignment is one device instance committed to a booking
// with its individually computed price
type DeviceAssignment struct {
	ID           int64
	BookingID    int64
	DeviceType   DeviceType
	DeviceNumber *int // console: 1..3; nil for the singleton simulator
	PlayerCount  *int // console: 1..4; nil for the simulator
	Price        int
}

// EndTime returns the exclusive end of the booked interval as an "HH:MM"
// label. The last slot of the day ends at "24:00", which is a valid label
// here even though it is not a valid time of day. Corrupt start times
// yield an empty string.
func (b *Booking) EndTime() string {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return ""
	}
	end := start + b.DurationMinutes
	return fmt.Sprintf("%02d:%02d", end/60, end%60)
}

// InstanceID returns the device-instance identifier used in availability
// responses: "console-1".."console-3" or "driving-sim"
func (a *DeviceAssignment) InstanceID() string {
	if a.DeviceType == DeviceSimulator || a.DeviceNumber == nil {
		return SimulatorInstanceID
	}
	return ConsoleInstanceID(*a.DeviceNumber)
}
