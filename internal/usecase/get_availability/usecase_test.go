package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
}

func TestExecuteEmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 30)

	for _, slot := range resp.Slots {
		assert.False(t, slot.FullyBooked, "slot %s", slot.Slot)
		assert.Len(t, slot.FreeDevices, 4, "slot %s", slot.Slot)
	}
}

func TestExecuteSingleBookingOccupiesItsSlots(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				StartTime:       "10:00",
				DurationMinutes: 60,
				Devices: []domain.DeviceAssignment{
					{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(1), PlayerCount: ptr.Ptr(2)},
				},
			},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	bySlot := make(map[string]domain.SlotOccupancy, len(resp.Slots))
	for _, s := range resp.Slots {
		bySlot[s.Slot.String()] = s
	}

	// Занятые слоты: приставка 1 выпадает, остальные устройства свободны
	for _, label := range []string{"10:00", "10:30"} {
		slot := bySlot[label]
		assert.False(t, slot.FullyBooked)
		assert.Equal(t, []string{"console-2", "console-3", "driving-sim"}, slot.FreeDevices, "slot %s", label)
	}

	// Соседние слоты не затронуты
	for _, label := range []string{"09:30", "11:00"} {
		assert.Len(t, bySlot[label].FreeDevices, 4, "slot %s", label)
	}
}

func TestExecuteFullyBookedSlot(t *testing.T) {
	devices := []domain.DeviceAssignment{
		{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(1), PlayerCount: ptr.Ptr(1)},
		{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(2), PlayerCount: ptr.Ptr(1)},
		{DeviceType: domain.DeviceConsole, DeviceNumber: ptr.Ptr(3), PlayerCount: ptr.Ptr(1)},
		{DeviceType: domain.DeviceSimulator},
	}
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "15:00", DurationMinutes: 30, Devices: devices},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		if s.Slot == "15:00" {
			assert.True(t, s.FullyBooked)
			assert.Empty(t, s.FreeDevices)
		} else {
			assert.False(t, s.FullyBooked, "slot %s", s.Slot)
		}
	}
}

func TestExecuteRepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
