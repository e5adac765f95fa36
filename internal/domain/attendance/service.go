package attendance

import (
	"context"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
)

// AttendanceService defines the attendance operations of the training portal.
// Every call runs on behalf of an explicit actor.
type AttendanceService interface {
	// GetAttendanceManagement lists the student's training days with their records
	GetAttendanceManagement(ctx context.Context, actor user.Actor, studentID string) (ManagementResponse, error)

	// HasUnfilledPast reports whether any past day lacks a start or end time
	HasUnfilledPast(ctx context.Context, studentID string) (bool, error)

	// PunchCheck reports whether a punch is currently allowed
	PunchCheck(ctx context.Context, actor user.Actor, punchType PunchType) (PunchCheckResponse, error)

	// PunchIn records the current time as today's start time
	PunchIn(ctx context.Context, actor user.Actor) (PunchResponse, error)

	// PunchOut records the current time as today's end time
	PunchOut(ctx context.Context, actor user.Actor) (PunchResponse, error)

	// GetEditForm builds an edit session for the student
	GetEditForm(ctx context.Context, actor user.Actor, studentID string) (EditForm, error)

	// Update validates the edit form and merges it into the stored records
	Update(ctx context.Context, actor user.Actor, form *EditForm) (UpdateResponse, error)

	// ListUnfilledPast reports every active student with unfilled past days
	ListUnfilledPast(ctx context.Context) ([]UnfilledReport, error)
}
