package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

// Status is the stored attendance status code of one training day.
type Status int16

const (
	StatusNormal            Status = 0
	StatusLate              Status = 1
	StatusLeaveEarly        Status = 2
	StatusLateAndLeaveEarly Status = 3
	StatusAbsent            Status = 4
)

var statusMessageKeys = map[Status]string{
	StatusNormal:            message.KeyStatusNormal,
	StatusLate:              message.KeyStatusLate,
	StatusLeaveEarly:        message.KeyStatusLeaveEarly,
	StatusLateAndLeaveEarly: message.KeyStatusLateAndLeaveEarly,
	StatusAbsent:            message.KeyStatusAbsent,
}

// ParseStatus maps a stored code to its Status. Unknown codes are rejected.
func ParseStatus(code int16) (Status, error) {
	s := Status(code)
	if _, ok := statusMessageKeys[s]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, code)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	_, ok := statusMessageKeys[s]
	return ok
}

// MessageKey returns the catalog key of the status display name.
func (s Status) MessageKey() string {
	return statusMessageKeys[s]
}

// DisplayName renders the localized status name, or "" for an unknown code.
func (s Status) DisplayName(msg message.Lookup) string {
	key, ok := statusMessageKeys[s]
	if !ok {
		return ""
	}
	return msg.Get(key)
}

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusLate:
		return "late"
	case StatusLeaveEarly:
		return "leave_early"
	case StatusLateAndLeaveEarly:
		return "late_and_leave_early"
	case StatusAbsent:
		return "absent"
	default:
		return fmt.Sprintf("status(%d)", int16(s))
	}
}

// Classifier decides the status of a day against the configured training
// start and end boundaries.
type Classifier struct {
	Start ClockTime
	End   ClockTime
}

// NewClassifier parses "HH:MM" boundaries.
func NewClassifier(start, end string) (Classifier, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return Classifier{}, fmt.Errorf("training start: %w", err)
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return Classifier{}, fmt.Errorf("training end: %w", err)
	}
	if !s.IsSet() || !e.IsSet() {
		return Classifier{}, ErrBoundaryRequired
	}
	return Classifier{Start: s, End: e}, nil
}

// Classify returns the status for the given punches. Late and early leave are
// judged independently; an unset end never counts as leaving early.
func (c Classifier) Classify(start, end ClockTime) Status {
	late := start.IsSet() && start.After(c.Start)
	early := end.IsSet() && end.Before(c.End)

	switch {
	case late && early:
		return StatusLateAndLeaveEarly
	case late:
		return StatusLate
	case early:
		return StatusLeaveEarly
	default:
		return StatusNormal
	}
}
