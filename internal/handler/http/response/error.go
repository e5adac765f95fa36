package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/auth"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	HandleErrorWithData(w, err, nil)
}

// HandleErrorWithData is HandleError with a payload attached to validation
// failures, so the client can redraw the form it submitted.
func HandleErrorWithData(w http.ResponseWriter, err error, data interface{}) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationErrorWithData(w, validationErrs.ToMap(), data)
		return
	}

	var punchErr *attendance.PunchError
	if errors.As(err, &punchErr) {
		if punchErr.IsAuthorization() {
			Forbidden(w, punchErr.Message)
			return
		}
		BadRequest(w, punchErr.Message, nil)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrInvalidClaims):
		Unauthorized(w, "Invalid or expired token")

	// User
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Attendance
	case errors.Is(err, attendance.ErrInvalidPunchType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrStudentRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidTrainingDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
