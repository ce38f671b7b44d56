package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", wantErr: false},
		{name: "valid last slot", input: "23:30", wantErr: false},
		{name: "midnight", input: "00:00", wantErr: false},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "24 hours", input: "24:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("xx:yy").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = NewTimeStringFromMinutes(1440)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(-30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("22:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), shifted)

	// Выход за границу суток не выражается как TimeString
	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}
