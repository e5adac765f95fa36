package calendar

import "time"

// PlanDays lists the training days of a course between from and to inclusive
// that fall on one of weekdays.
func PlanDays(courseID, sectionName string, from, to time.Time, weekdays []time.Weekday) ([]TrainingDay, error) {
	if courseID == "" {
		return nil, ErrCourseIDRequired
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	if len(weekdays) == 0 {
		return nil, ErrNoWeekdays
	}

	allowed := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		allowed[wd] = true
	}

	var days []TrainingDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if allowed[d.Weekday()] {
			days = append(days, TrainingDay{CourseID: courseID, Date: d, SectionName: sectionName})
		}
	}
	return days, nil
}
