package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "mediodía", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	// Через полночь не переходим
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	got, err := TimeString("09:00").MinutesUntil("10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, got)

	got, err = TimeString("10:30").MinutesUntil("09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, got)
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(now))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("12:00"))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:30")))
	assert.Equal(t, TimeString("13:30"), ts)

	assert.Error(t, ts.Scan(42))
}
