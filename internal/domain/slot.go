package domain

import "github.com/m04kA/GameZone-BookingService/pkg/types"

// DailySlots returns the fixed ordered sequence of half-hour slot labels
// for a business day: "09:00" through "23:30", 30 entries.
// Pure and deterministic; used both for display and as the enumeration
// basis for availability aggregation.
func DailySlots() []types.TimeString {
	slots := make([]types.TimeString, 0, (ClosingMinutes-OpeningMinutes)/SlotDurationMinutes)
	for m := OpeningMinutes; m < ClosingMinutes; m += SlotDurationMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			// unreachable: the loop stays inside [0, 1440)
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// AllDeviceInstances returns the identifiers of every bookable device
// instance: console-1..console-3 and the driving simulator.
func AllDeviceInstances() []string {
	instances := make([]string, 0, ConsoleCount+1)
	for n := 1; n <= ConsoleCount; n++ {
		instances = append(instances, ConsoleInstanceID(n))
	}
	instances = append(instances, SimulatorInstanceID)
	return instances
}

// SlotOccupancy is the per-slot availability state derived from overlapping
// bookings. A slot is fully booked only when every device instance is
// occupied; otherwise FreeDevices enumerates what can still be booked.
type SlotOccupancy struct {
	Slot        types.TimeString
	FullyBooked bool
	FreeDevices []string
}

// AffectedSlots returns the slot labels a booking occupies: starting at its
// start time, one label per half-hour step for duration/30 steps. Labels that
// fall outside the fixed daily sequence are dropped (stored data past the
// closing boundary cannot occur under correct validation, but a malformed row
// must not break availability reads).
func (b *Booking) AffectedSlots() []types.TimeString {
	steps := b.DurationMinutes / SlotDurationMinutes
	slots := make([]types.TimeString, 0, steps)

	startMinutes, err := b.StartTime.Minutes()
	if err != nil {
		return slots
	}

	for i := 0; i < steps; i++ {
		m := startMinutes + i*SlotDurationMinutes
		if m < OpeningMinutes || m >= ClosingMinutes {
			continue
		}
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
