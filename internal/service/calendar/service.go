package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
)

type CalendarServiceImpl struct {
	tx database.Transactor
	calendar.CalendarRepository
}

func NewCalendarService(tx database.Transactor, calendarRepository calendar.CalendarRepository) calendar.CalendarService {
	return &CalendarServiceImpl{tx: tx, CalendarRepository: calendarRepository}
}

// RegisterDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) RegisterDays(ctx context.Context, req calendar.RegisterDaysRequest) ([]calendar.TrainingDay, error) {
	days, err := calendar.PlanDays(req.CourseID, req.SectionName, req.From, req.To, req.Weekdays)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, day := range days {
			if err := s.CalendarRepository.Upsert(ctx, day); err != nil {
				return fmt.Errorf("failed to register %s: %w", day.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Training days registered", "course_id", req.CourseID, "count", len(days))
	return days, nil
}
