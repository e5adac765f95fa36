package attendance

import "github.com/cmlabs-hris/training-attendance/internal/pkg/message"

const (
	blankTimeStep = 15
	blankTimeMax  = 8 * 60
)

// BlankTime is a break taken inside the punched span, in minutes.
type BlankTime int

// BlankTimeOptions lists the break durations offered on the edit form.
func BlankTimeOptions() []BlankTime {
	opts := make([]BlankTime, 0, blankTimeMax/blankTimeStep)
	for m := blankTimeStep; m <= blankTimeMax; m += blankTimeStep {
		opts = append(opts, BlankTime(m))
	}
	return opts
}

// BlankTimeOf resolves a nullable stored value; nil means no break.
func BlankTimeOf(minutes *int) BlankTime {
	if minutes == nil {
		return 0
	}
	return BlankTime(*minutes)
}

func (b BlankTime) Hours() int {
	return int(b) / 60
}

func (b BlankTime) Minutes() int {
	return int(b) % 60
}

// Display renders the duration as hours and minutes text.
func (b BlankTime) Display(msg message.Lookup) string {
	return msg.Get(message.KeyBlankTimeFormat, b.Hours(), b.Minutes())
}

// FitsWithin reports whether the break is no longer than the elapsed span.
func (b BlankTime) FitsWithin(elapsedMinutes int) bool {
	return int(b) <= elapsedMinutes
}
