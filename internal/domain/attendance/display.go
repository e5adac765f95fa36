package attendance

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

// DisplayDate renders a date such as 2024年4月1日.
func DisplayDate(msg message.Lookup, d time.Time) string {
	return msg.Get(message.KeyDate, strconv.Itoa(d.Year()), int(d.Month()), d.Day())
}

// DisplayDateWithWeekday renders a date such as 2024年4月1日(月).
func DisplayDateWithWeekday(msg message.Lookup, d time.Time) string {
	weekday := msg.Get(message.KeyWeekdayPrefix + strconv.Itoa(int(d.Weekday())))
	return msg.Get(message.KeyDateWithWeekday, strconv.Itoa(d.Year()), int(d.Month()), d.Day(), weekday)
}

// NewManagementRowResponse renders a management row for display.
func NewManagementRowResponse(row ManagementRow, msg message.Lookup) ManagementRowResponse {
	resp := ManagementRowResponse{
		StudentAttendanceID: row.StudentAttendanceID,
		TrainingDate:        row.TrainingDate.Format(DateLayout),
		DispTrainingDate:    DisplayDateWithWeekday(msg, row.TrainingDate),
		SectionName:         row.SectionName,
		IsToday:             row.IsToday,
		TrainingStartTime:   row.TrainingStartTime,
		TrainingEndTime:     row.TrainingEndTime,
		BlankTime:           row.BlankTime,
		Status:              row.Status,
		Note:                row.Note,
	}
	if row.BlankTime != nil {
		resp.BlankTimeValue = BlankTime(*row.BlankTime).Display(msg)
	}
	if row.Status != nil {
		resp.StatusDispName = row.Status.DisplayName(msg)
	}
	return resp
}

// NewEditRow splits a management row into an editable day. Stored times that
// do not parse are left empty.
func NewEditRow(row ManagementRow, msg message.Lookup) DailyEditRow {
	disp := NewManagementRowResponse(row, msg)
	edit := DailyEditRow{
		StudentAttendanceID: row.StudentAttendanceID,
		TrainingDate:        disp.TrainingDate,
		DispTrainingDate:    disp.DispTrainingDate,
		SectionName:         row.SectionName,
		IsToday:             row.IsToday,
		TrainingStartTime:   row.TrainingStartTime,
		TrainingEndTime:     row.TrainingEndTime,
		BlankTime:           row.BlankTime,
		BlankTimeValue:      disp.BlankTimeValue,
		Status:              row.Status,
		StatusDispName:      disp.StatusDispName,
		Note:                row.Note,
	}
	if start, err := ParseClockTime(row.TrainingStartTime); err == nil {
		edit.TrainingStartTimeHour = start.HourPtr()
		edit.TrainingStartTimeMinute = start.MinutePtr()
	}
	if end, err := ParseClockTime(row.TrainingEndTime); err == nil {
		edit.TrainingEndTimeHour = end.HourPtr()
		edit.TrainingEndTimeMinute = end.MinutePtr()
	}
	return edit
}
