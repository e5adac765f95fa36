package calendar

import "time"

// TrainingDay is one scheduled day of a course.
type TrainingDay struct {
	CourseID    string
	Date        time.Time
	SectionName string
}
