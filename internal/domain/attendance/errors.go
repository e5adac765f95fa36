package attendance

import "errors"

var (
	ErrUnknownStatus       = errors.New("unknown attendance status")
	ErrBoundaryRequired    = errors.New("training start and end boundaries are required")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrInvalidTrainingDate = errors.New("invalid training date")
	ErrInvalidPunchType    = errors.New("punch type must be 'in' or 'out'")
	ErrStudentRequired     = errors.New("student id is required")
)
