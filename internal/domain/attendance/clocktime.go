package attendance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// 09:00, 18:30
var clockTimePattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// FormatError reports clock time text that is not a valid HH:MM value.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid clock time %q: %s", e.Input, e.Reason)
}

// ClockTime is a time of day with minute precision. The zero value is the
// unset time, which is distinct from midnight.
type ClockTime struct {
	minutes int
	set     bool
}

// ParseClockTime parses "HH:MM". The empty string yields the unset time.
func ParseClockTime(s string) (ClockTime, error) {
	if s == "" {
		return ClockTime{}, nil
	}

	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, &FormatError{Input: s, Reason: "expected HH:MM"}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	t, err := NewClockTime(hour, minute)
	if err != nil {
		return ClockTime{}, &FormatError{Input: s, Reason: err.Error()}
	}
	return t, nil
}

// MustParseClockTime is like ParseClockTime but panics on malformed input.
func MustParseClockTime(s string) ClockTime {
	t, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NewClockTime builds a set time from an hour in [0,23] and a minute in [0,59].
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("minute %d out of range", minute)
	}
	return ClockTime{minutes: hour*60 + minute, set: true}, nil
}

// ClockTimeFromParts builds a time from optional hour and minute fields. If
// either is missing the result is unset.
func ClockTimeFromParts(hour, minute *int) (ClockTime, error) {
	if hour == nil || minute == nil {
		return ClockTime{}, nil
	}
	return NewClockTime(*hour, *minute)
}

// ClockTimeOf captures the wall clock of t, truncated to the minute.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute(), set: true}
}

// IsSet reports whether the time holds a value.
func (c ClockTime) IsSet() bool {
	return c.set
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

// TotalMinutes returns the minutes since midnight.
func (c ClockTime) TotalMinutes() int {
	return c.minutes
}

// Compare returns -1, 0 or +1 by minutes since midnight. Both operands must be
// set; callers check IsSet first.
func (c ClockTime) Compare(o ClockTime) int {
	switch {
	case c.minutes < o.minutes:
		return -1
	case c.minutes > o.minutes:
		return 1
	default:
		return 0
	}
}

func (c ClockTime) Before(o ClockTime) bool {
	return c.Compare(o) < 0
}

func (c ClockTime) After(o ClockTime) bool {
	return c.Compare(o) > 0
}

// MinutesUntil returns the minutes elapsed from c to end, negative when end
// is earlier in the day.
func (c ClockTime) MinutesUntil(end ClockTime) int {
	return end.minutes - c.minutes
}

// String renders "HH:MM", or "" for the unset time.
func (c ClockTime) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// HourPtr returns the hour of a set time, or nil when unset.
func (c ClockTime) HourPtr() *int {
	if !c.set {
		return nil
	}
	h := c.Hour()
	return &h
}

// MinutePtr returns the minute of a set time, or nil when unset.
func (c ClockTime) MinutePtr() *int {
	if !c.set {
		return nil
	}
	m := c.Minute()
	return &m
}
