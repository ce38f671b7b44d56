package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameZone-BookingService/pkg/ptr"
	"github.com/m04kA/GameZone-BookingService/pkg/types"
)

func TestDailySlots(t *testing.T) {
	slots := DailySlots()

	require.Len(t, slots, 30)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("23:30"), slots[len(slots)-1])

	// Шаг сетки ровно полчаса
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotDurationMinutes, cur-prev)
	}
}

func TestAllDeviceInstances(t *testing.T) {
	instances := AllDeviceInstances()
	assert.Equal(t, []string{"console-1", "console-2", "console-3", "driving-sim"}, instances)
}

func TestAffectedSlots(t *testing.T) {
	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
		want      []types.TimeString
	}{
		{
			name:      "hour long session covers two slots",
			startTime: "10:00",
			duration:  60,
			want:      []types.TimeString{"10:00", "10:30"},
		},
		{
			name:      "shortest session covers one slot",
			startTime: "09:00",
			duration:  30,
			want:      []types.TimeString{"09:00"},
		},
		{
			name:      "last slot of the day",
			startTime: "23:30",
			duration:  30,
			want:      []types.TimeString{"23:30"},
		},
		{
			name:      "two hour session",
			startTime: "22:00",
			duration:  120,
			want:      []types.TimeString{"22:00", "22:30", "23:00", "23:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{StartTime: tt.startTime, DurationMinutes: tt.duration}
			assert.Equal(t, tt.want, booking.AffectedSlots())
		})
	}
}

func TestAffectedSlotsDropsOutOfGridLabels(t *testing.T) {
	// Кривая строка: начало до открытия. Метки вне сетки отбрасываются.
	booking := &Booking{StartTime: "08:30", DurationMinutes: 60}
	assert.Equal(t, []types.TimeString{"09:00"}, booking.AffectedSlots())
}

func TestBookingEndTime(t *testing.T) {
	booking := &Booking{StartTime: "23:30", DurationMinutes: 30}
	assert.Equal(t, "24:00", booking.EndTime())

	booking = &Booking{StartTime: "10:00", DurationMinutes: 90}
	assert.Equal(t, "11:30", booking.EndTime())
}

func TestDeviceAssignmentInstanceID(t *testing.T) {
	console := DeviceAssignment{DeviceType: DeviceConsole, DeviceNumber: ptr.Ptr(2)}
	assert.Equal(t, "console-2", console.InstanceID())

	sim := DeviceAssignment{DeviceType: DeviceSimulator}
	assert.Equal(t, "driving-sim", sim.InstanceID())
}

func TestPromotionIsActiveOn(t *testing.T) {
	promo := &Promotion{
		StartsOn: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndsOn:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, promo.IsActiveOn(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)))
	assert.True(t, promo.IsActiveOn(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, promo.IsActiveOn(time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, promo.IsActiveOn(time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)))
}
