package calendar

import (
	"context"
	"time"
)

type CalendarRepository interface {
	// IsWorkDay reports whether date is a scheduled training day for the course.
	IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error)
	// Upsert registers a training day, replacing the section name if the day exists.
	Upsert(ctx context.Context, day TrainingDay) error
}
