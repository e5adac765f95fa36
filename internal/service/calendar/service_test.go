package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingRepo struct {
	upserted []calendar.TrainingDay
	failOn   int
}

func (r *recordingRepo) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	return false, nil
}

func (r *recordingRepo) Upsert(ctx context.Context, day calendar.TrainingDay) error {
	if r.failOn > 0 && len(r.upserted)+1 == r.failOn {
		return errors.New("constraint violation")
	}
	r.upserted = append(r.upserted, day)
	return nil
}

func TestCalendarService_RegisterDays(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewCalendarService(passthroughTx{}, repo)

	days, err := svc.RegisterDays(context.Background(), calendar.RegisterDaysRequest{
		CourseID:    "course-1",
		SectionName: "Java basics",
		From:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC),
		Weekdays:    []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	})
	require.NoError(t, err)
	assert.Len(t, days, 3)
	assert.Equal(t, days, repo.upserted)
}

func TestCalendarService_RegisterDays_Errors(t *testing.T) {
	repo := &recordingRepo{failOn: 2}
	svc := NewCalendarService(passthroughTx{}, repo)

	_, err := svc.RegisterDays(context.Background(), calendar.RegisterDaysRequest{
		CourseID: "course-1",
		From:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Weekdays: []time.Weekday{time.Monday, time.Tuesday},
	})
	assert.ErrorContains(t, err, "2024-04-02")

	_, err = svc.RegisterDays(context.Background(), calendar.RegisterDaysRequest{CourseID: "course-1"})
	assert.ErrorIs(t, err, calendar.ErrNoWeekdays)
}
