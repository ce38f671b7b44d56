package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolePrice(t *testing.T) {
	tests := []struct {
		name        string
		playerCount int
		duration    int
		want        int
	}{
		{name: "two players one hour", playerCount: 2, duration: 60, want: 150},
		{name: "four players two hours", playerCount: 4, duration: 120, want: 300},
		{name: "single player shortest", playerCount: 1, duration: 30, want: 50},
		{name: "three players 90 minutes", playerCount: 3, duration: 90, want: 250},
		{name: "unknown duration", playerCount: 2, duration: 45, want: 0},
		{name: "unknown player count", playerCount: 5, duration: 60, want: 0},
		{name: "zero players", playerCount: 0, duration: 60, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsolePrice(tt.playerCount, tt.duration))
		})
	}
}

func TestSimulatorPrice(t *testing.T) {
	assert.Equal(t, 200, SimulatorPrice(90))
	assert.Equal(t, 80, SimulatorPrice(30))
	assert.Equal(t, 0, SimulatorPrice(45), "непротарифицированная длительность дает 0")
}

func TestDevicePrice(t *testing.T) {
	players := 2
	assert.Equal(t, 150, DevicePrice(DeviceConsole, &players, 60))
	assert.Equal(t, 200, DevicePrice(DeviceSimulator, nil, 90))
	assert.Equal(t, 0, DevicePrice(DeviceConsole, nil, 60), "приставка без количества игроков не тарифицируется")
	assert.Equal(t, 0, DevicePrice(DeviceType("unknown"), &players, 60))
}

// Каждая разрешенная комбинация приставки и длительности должна иметь цену:
// нулевая цена на проде означает ошибку данных и отказ в бронировании.
func TestConsolePriceCoversAllAllowedCombinations(t *testing.T) {
	for players := MinPlayerCount; players <= MaxPlayerCount; players++ {
		for _, duration := range AllowedDurations {
			assert.Greater(t, ConsolePrice(players, duration), 0,
				"players=%d duration=%d", players, duration)
		}
	}
	for _, duration := range AllowedDurations {
		assert.Greater(t, SimulatorPrice(duration), 0, "duration=%d", duration)
	}
}
