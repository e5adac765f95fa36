package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hour    int
		minute  int
		unset   bool
		wantErr bool
	}{
		{name: "morning", input: "09:00", hour: 9, minute: 0},
		{name: "evening", input: "18:30", hour: 18, minute: 30},
		{name: "midnight", input: "00:00", hour: 0, minute: 0},
		{name: "last minute", input: "23:59", hour: 23, minute: 59},
		{name: "empty is unset", input: "", unset: true},

		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "seconds", input: "09:00:00", wantErr: true},
		{name: "dot separator", input: "09.00", wantErr: true},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "09:60", wantErr: true},
		{name: "blank", input: " ", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
				return
			}
			require.NoError(t, err)
			if tt.unset {
				assert.False(t, got.IsSet())
				return
			}
			assert.True(t, got.IsSet())
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.minute, got.Minute())
		})
	}
}

func TestClockTime_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			ct, err := NewClockTime(h, m)
			require.NoError(t, err)
			s := ct.String()
			parsed, err := ParseClockTime(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	}

	unset, err := ParseClockTime("")
	require.NoError(t, err)
	assert.Equal(t, "", unset.String())
}

func TestClockTime_UnsetDiffersFromMidnight(t *testing.T) {
	midnight := MustParseClockTime("00:00")
	assert.True(t, midnight.IsSet())
	assert.False(t, ClockTime{}.IsSet())
	assert.NotEqual(t, ClockTime{}, midnight)
	assert.Equal(t, "00:00", midnight.String())
}

func TestNewClockTime_OutOfRange(t *testing.T) {
	_, err := NewClockTime(-1, 0)
	assert.Error(t, err)
	_, err = NewClockTime(0, 60)
	assert.Error(t, err)
}

func TestClockTimeFromParts(t *testing.T) {
	ct, err := ClockTimeFromParts(intPtr(9), intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, "09:05", ct.String())

	ct, err = ClockTimeFromParts(intPtr(9), nil)
	require.NoError(t, err)
	assert.False(t, ct.IsSet())

	_, err = ClockTimeFromParts(intPtr(25), intPtr(0))
	assert.Error(t, err)
}

func TestClockTimeOf_TruncatesToMinute(t *testing.T) {
	now := time.Date(2024, 4, 1, 8, 59, 59, 999, time.UTC)
	ct := ClockTimeOf(now)
	assert.Equal(t, "08:59", ct.String())
}

func TestClockTime_Compare(t *testing.T) {
	nine := MustParseClockTime("09:00")
	nineThirty := MustParseClockTime("09:30")

	assert.Equal(t, -1, nine.Compare(nineThirty))
	assert.Equal(t, 1, nineThirty.Compare(nine))
	assert.Equal(t, 0, nine.Compare(MustParseClockTime("09:00")))
	assert.True(t, nine.Before(nineThirty))
	assert.True(t, nineThirty.After(nine))
	assert.Equal(t, 30, nine.MinutesUntil(nineThirty))
	assert.Equal(t, -30, nineThirty.MinutesUntil(nine))
}

func TestClockTime_Parts(t *testing.T) {
	ct := MustParseClockTime("17:45")
	assert.Equal(t, 17*60+45, ct.TotalMinutes())
	assert.Equal(t, 17, *ct.HourPtr())
	assert.Equal(t, 45, *ct.MinutePtr())
	assert.Nil(t, ClockTime{}.HourPtr())
	assert.Nil(t, ClockTime{}.MinutePtr())
}
