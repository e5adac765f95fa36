package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepository{db: db}
}

// IsWorkDay implements calendar.CalendarRepository.
func (c *calendarRepository) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT EXISTS(SELECT 1 FROM training_days WHERE course_id = $1 AND training_date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, courseID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check training day: %w", err)
	}
	return exists, nil
}

// Upsert implements calendar.CalendarRepository.
func (c *calendarRepository) Upsert(ctx context.Context, day calendar.TrainingDay) error {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO training_days (course_id, training_date, section_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, training_date)
		DO UPDATE SET section_name = EXCLUDED.section_name
	`

	if _, err := q.Exec(ctx, query, day.CourseID, day.Date, day.SectionName); err != nil {
		return fmt.Errorf("failed to upsert training day: %w", err)
	}
	return nil
}
