package domain

// Session prices in local currency units. Fixed lookup tables with no
// interpolation: an absent combination prices at 0 and callers must treat
// that as "not priced", never as a free session.

// consolePrices is keyed by player count, then duration in minutes
var consolePrices = map[int]map[int]int{
	1: {30: 50, 60: 90, 90: 130, 120: 170},
	2: {30: 80, 60: 150, 90: 210, 120: 260},
	3: {30: 100, 60: 180, 90: 250, 120: 280},
	4: {30: 120, 60: 200, 90: 260, 120: 300},
}

// simulatorPrices is keyed by duration only; the simulator always seats one
var simulatorPrices = map[int]int{
	30: 80, 60: 150, 90: 200, 120: 250,
}

// ConsolePrice returns the price of a console session for the given player
// count and duration, or 0 when the combination is not in the table.
func ConsolePrice(playerCount, durationMinutes int) int {
	byDuration, ok := consolePrices[playerCount]
	if !ok {
		return 0
	}
	return byDuration[durationMinutes]
}

// SimulatorPrice returns the price of a driving-simulator session for the
// given duration, or 0 when the duration is not in the table.
func SimulatorPrice(durationMinutes int) int {
	return simulatorPrices[durationMinutes]
}

// DevicePrice prices one device assignment for the given duration.
// Console assignments without a player count price at 0.
func DevicePrice(deviceType DeviceType, playerCount *int, durationMinutes int) int {
	switch deviceType {
	case DeviceSimulator:
		return SimulatorPrice(durationMinutes)
	case DeviceConsole:
		if playerCount == nil {
			return 0
		}
		return ConsolePrice(*playerCount, durationMinutes)
	default:
		return 0
	}
}
