package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
)

const unfilledAuditJob = "audit_unfilled_attendance"

// AttendanceJobs holds the periodic attendance checks.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	interval      time.Duration
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, interval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		interval:      interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(unfilledAuditJob, j.interval, j.AuditUnfilledAttendance)
}

// AuditUnfilledAttendance logs every active student with past training days
// that still lack a punch.
func (j *AttendanceJobs) AuditUnfilledAttendance(ctx context.Context) error {
	slog.Info("Cron: Starting unfilled attendance audit")

	reports, err := j.attendanceSvc.ListUnfilledPast(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unfilled attendance: %w", err)
	}

	if len(reports) == 0 {
		slog.Info("Cron: No unfilled attendance found")
		return nil
	}

	total := 0
	for _, r := range reports {
		slog.Warn("Cron: Student has unfilled attendance",
			"student_id", r.StudentID,
			"name", r.Name,
			"count", r.Count)
		total += r.Count
	}

	slog.Info("Cron: Unfilled attendance audit finished", "students", len(reports), "days", total)
	return nil
}
