package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrStudentNotFound         = errors.New("student not found")
	ErrStaffAccessRequired     = errors.New("trainer or admin access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCourseRequired          = errors.New("students must belong to a course")
)
