package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for student attendance records.
// Soft-deleted records are never returned.
type AttendanceRepository interface {
	// FindByStudentAndDate returns the record for one training day, or nil
	// when none exists.
	FindByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*Record, error)

	// FindAllActive returns every record of the student.
	FindAllActive(ctx context.Context, studentID string) ([]Record, error)

	// CountUnfilledPast counts records dated before the given day with an
	// empty start or end time.
	CountUnfilledPast(ctx context.Context, studentID string, before time.Time) (int, error)

	// ListManagement returns one row per training day of the course, joined
	// with the student's records.
	ListManagement(ctx context.Context, courseID, studentID string, today time.Time) ([]ManagementRow, error)

	// Insert stores a new record and returns it with its generated ID.
	Insert(ctx context.Context, record Record) (Record, error)

	// Update overwrites the mutable fields of the record identified by ID.
	Update(ctx context.Context, record Record) error
}
