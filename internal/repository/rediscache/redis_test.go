package rediscache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCalendar struct {
	days  map[string]bool
	calls int
}

func (c *countingCalendar) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	c.calls++
	return c.days[workDayKey(courseID, date)], nil
}

func (c *countingCalendar) Upsert(ctx context.Context, day calendar.TrainingDay) error {
	c.days[workDayKey(day.CourseID, day.Date)] = true
	return nil
}

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client, err := NewClient(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCalendarCache_ReadThrough(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, client.Del(ctx, workDayKey("course-cache", day)).Err())

	inner := &countingCalendar{days: map[string]bool{}}
	cache := NewCalendarCache(client, inner, time.Minute)

	ok, err := cache.IsWorkDay(ctx, "course-cache", day)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = cache.IsWorkDay(ctx, "course-cache", day)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, inner.calls)

	require.NoError(t, cache.Upsert(ctx, calendar.TrainingDay{CourseID: "course-cache", Date: day}))
	ok, err = cache.IsWorkDay(ctx, "course-cache", day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, inner.calls)
}

func TestCalendarCache_FallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	inner := &countingCalendar{days: map[string]bool{workDayKey("course-1", day): true}}
	cache := NewCalendarCache(client, inner, time.Minute)

	ok, err := cache.IsWorkDay(context.Background(), "course-1", day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, inner.calls)

	assert.NoError(t, cache.Upsert(context.Background(), calendar.TrainingDay{CourseID: "course-1", Date: day}))
}

func TestRedisLock(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()
	locker := NewRedisLock(client)
	require.NoError(t, locker.Unlock(ctx, "test-job"))

	ok, err := locker.Lock(ctx, "test-job", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.Lock(ctx, "test-job", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, locker.Unlock(ctx, "test-job"))
	ok, err = locker.Lock(ctx, "test-job", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, locker.Unlock(ctx, "test-job"))
}
