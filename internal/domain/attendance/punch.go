package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

type PunchType string

const (
	PunchIn  PunchType = "in"
	PunchOut PunchType = "out"
)

// ParsePunchType accepts "in" or "out".
func ParsePunchType(s string) (PunchType, error) {
	switch PunchType(s) {
	case PunchIn, PunchOut:
		return PunchType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPunchType, s)
	}
}

// PunchState is the punch progress of one training day.
type PunchState int

const (
	StateNoPunch PunchState = iota
	StatePunchedIn
	StatePunchedOut
)

func (s PunchState) String() string {
	switch s {
	case StatePunchedIn:
		return "punched_in"
	case StatePunchedOut:
		return "punched_out"
	default:
		return "no_punch"
	}
}

// StateOf derives the punch state from the day's record, which may be nil.
// A record with an end time but no start time counts as not punched.
func StateOf(rec *Record) PunchState {
	switch {
	case rec == nil || rec.TrainingStartTime == "":
		return StateNoPunch
	case rec.TrainingEndTime == "":
		return StatePunchedIn
	default:
		return StatePunchedOut
	}
}

// PunchError is a failed punch precondition carrying one localized message.
type PunchError struct {
	Key     string
	Message string
}

func (e *PunchError) Error() string {
	return e.Message
}

// IsAuthorization reports whether the punch was refused because of the
// actor's role.
func (e *PunchError) IsAuthorization() bool {
	return e.Key == message.KeyAuthorization
}

// NewPunchError resolves key through msg.
func NewPunchError(msg message.Lookup, key string, params ...interface{}) *PunchError {
	return &PunchError{Key: key, Message: msg.Get(key, params...)}
}

// CheckTransition verifies that the punch may be applied to the day's record
// at time now. It returns nil when the punch is allowed.
func CheckTransition(pt PunchType, rec *Record, now time.Time, msg message.Lookup) *PunchError {
	state := StateOf(rec)

	switch pt {
	case PunchIn:
		if state != StateNoPunch {
			return NewPunchError(msg, message.KeyPunchAlreadyExists)
		}
	case PunchOut:
		if state == StateNoPunch {
			return NewPunchError(msg, message.KeyPunchInEmpty, msg.Get(message.KeyFieldEndTime))
		}
		if state == StatePunchedOut {
			return NewPunchError(msg, message.KeyPunchAlreadyExists)
		}
		start, err := rec.StartTime()
		if err != nil || start.After(ClockTimeOf(now)) {
			return NewPunchError(msg, message.KeyTrainingTimeRange)
		}
	}
	return nil
}
