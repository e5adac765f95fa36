package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/redis/go-redis/v9"
)

// calendarCache answers IsWorkDay from Redis and falls back to the wrapped
// repository on a miss or when Redis is unavailable.
type calendarCache struct {
	client *redis.Client
	next   calendar.CalendarRepository
	ttl    time.Duration
}

func NewCalendarCache(client *redis.Client, next calendar.CalendarRepository, ttl time.Duration) calendar.CalendarRepository {
	return &calendarCache{client: client, next: next, ttl: ttl}
}

func workDayKey(courseID string, date time.Time) string {
	return fmt.Sprintf("calendar:workday:%s:%s", courseID, date.Format("2006-01-02"))
}

// IsWorkDay implements calendar.CalendarRepository.
func (c *calendarCache) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	key := workDayKey(courseID, date)

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return val == "1", nil
	case !errors.Is(err, redis.Nil):
		slog.Warn("calendar cache read failed", "key", key, "error", err)
	}

	workDay, err := c.next.IsWorkDay(ctx, courseID, date)
	if err != nil {
		return false, err
	}

	val = "0"
	if workDay {
		val = "1"
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		slog.Warn("calendar cache write failed", "key", key, "error", err)
	}
	return workDay, nil
}

// Upsert implements calendar.CalendarRepository.
func (c *calendarCache) Upsert(ctx context.Context, day calendar.TrainingDay) error {
	if err := c.next.Upsert(ctx, day); err != nil {
		return err
	}
	if err := c.client.Del(ctx, workDayKey(day.CourseID, day.Date)).Err(); err != nil {
		slog.Warn("calendar cache invalidation failed", "course_id", day.CourseID, "error", err)
	}
	return nil
}
