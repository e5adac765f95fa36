package calendar

import (
	"context"
	"time"
)

type RegisterDaysRequest struct {
	CourseID    string
	SectionName string
	From        time.Time
	To          time.Time
	Weekdays    []time.Weekday
}

type CalendarService interface {
	// RegisterDays upserts every matching day of the range and returns them
	RegisterDays(ctx context.Context, req RegisterDaysRequest) ([]TrainingDay, error)
}
