package calendar

import "errors"

var (
	ErrCourseIDRequired = errors.New("course ID is required")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrNoWeekdays       = errors.New("at least one weekday is required")
)
