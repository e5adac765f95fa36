package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

// ========================================
// MANAGEMENT LIST DTOs
// ========================================

type ManagementRowResponse struct {
	StudentAttendanceID *string `json:"studentAttendanceId"`
	TrainingDate        string  `json:"trainingDate"`
	DispTrainingDate    string  `json:"dispTrainingDate"`
	SectionName         string  `json:"sectionName"`
	IsToday             bool    `json:"isToday"`
	TrainingStartTime   string  `json:"trainingStartTime"`
	TrainingEndTime     string  `json:"trainingEndTime"`
	BlankTime           *int    `json:"blankTime"`
	BlankTimeValue      string  `json:"blankTimeValue"`
	Status              *Status `json:"status"`
	StatusDispName      string  `json:"statusDispName"`
	Note                string  `json:"note"`
}

type ManagementResponse struct {
	StudentID       string                  `json:"studentId"`
	AttendanceList  []ManagementRowResponse `json:"attendanceList"`
	HasUnfilledPast bool                    `json:"hasUnfilledPast"`
}

// ========================================
// EDIT FORM DTOs
// ========================================

type SelectOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DailyEditRow is one day of an edit session. Hour and minute fields are
// independently nullable; display fields are informational only, except
// StatusDispName which marks a day as absent.
type DailyEditRow struct {
	StudentAttendanceID     *string `json:"studentAttendanceId"`
	TrainingDate            string  `json:"trainingDate"`
	DispTrainingDate        string  `json:"dispTrainingDate"`
	SectionName             string  `json:"sectionName"`
	IsToday                 bool    `json:"isToday"`
	TrainingStartTime       string  `json:"trainingStartTime"`
	TrainingEndTime         string  `json:"trainingEndTime"`
	TrainingStartTimeHour   *int    `json:"trainingStartTimeHour" validate:"omitempty,min=0,max=23"`
	TrainingStartTimeMinute *int    `json:"trainingStartTimeMinute" validate:"omitempty,min=0,max=59"`
	TrainingEndTimeHour     *int    `json:"trainingEndTimeHour" validate:"omitempty,min=0,max=23"`
	TrainingEndTimeMinute   *int    `json:"trainingEndTimeMinute" validate:"omitempty,min=0,max=59"`
	BlankTime               *int    `json:"blankTime" validate:"omitempty,min=0"`
	BlankTimeValue          string  `json:"blankTimeValue"`
	Status                  *Status `json:"status"`
	StatusDispName          string  `json:"statusDispName"`
	Note                    string  `json:"note"`
}

// IsUntouched reports whether the row carries no time input and no note.
func (r *DailyEditRow) IsUntouched() bool {
	return r.TrainingStartTimeHour == nil &&
		r.TrainingStartTimeMinute == nil &&
		r.TrainingEndTimeHour == nil &&
		r.TrainingEndTimeMinute == nil &&
		r.Note == ""
}

// StartTime resolves the start hour and minute pair.
func (r *DailyEditRow) StartTime() (ClockTime, error) {
	return ClockTimeFromParts(r.TrainingStartTimeHour, r.TrainingStartTimeMinute)
}

// EndTime resolves the end hour and minute pair.
func (r *DailyEditRow) EndTime() (ClockTime, error) {
	return ClockTimeFromParts(r.TrainingEndTimeHour, r.TrainingEndTimeMinute)
}

// EditForm is a student's attendance edit session.
type EditForm struct {
	StudentID      string         `json:"studentId"`
	UserName       string         `json:"userName"`
	LeaveFlag      bool           `json:"leaveFlg"`
	LeaveDate      string         `json:"leaveDate"`
	DispLeaveDate  string         `json:"dispLeaveDate"`
	BlankTimes     []SelectOption `json:"blankTimes"`
	HourMap        []SelectOption `json:"hourMap"`
	MinuteMap      []SelectOption `json:"minuteMap"`
	AttendanceList []DailyEditRow `json:"attendanceList"`
}

// RefreshMenus fills the break time, hour and minute selections.
func (f *EditForm) RefreshMenus(msg message.Lookup) {
	opts := BlankTimeOptions()
	f.BlankTimes = make([]SelectOption, 0, len(opts))
	for _, b := range opts {
		f.BlankTimes = append(f.BlankTimes, SelectOption{Value: int(b), Label: b.Display(msg)})
	}
	f.HourMap = numberOptions(24)
	f.MinuteMap = numberOptions(60)
}

func numberOptions(n int) []SelectOption {
	opts := make([]SelectOption, n)
	for i := range opts {
		opts[i] = SelectOption{Value: i, Label: fmt.Sprintf("%02d", i)}
	}
	return opts
}

type UpdateResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
}

// ========================================
// PUNCH DTOs
// ========================================

type PunchCheckResponse struct {
	Type    PunchType `json:"type"`
	Allowed bool      `json:"allowed"`
	Message string    `json:"message,omitempty"`
}

type PunchResponse struct {
	Message           string `json:"message"`
	TrainingDate      string `json:"trainingDate"`
	TrainingStartTime string `json:"trainingStartTime"`
	TrainingEndTime   string `json:"trainingEndTime"`
	Status            Status `json:"status"`
	StatusDispName    string `json:"statusDispName"`
}

// UnfilledReport names a student with past training days missing a punch.
type UnfilledReport struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}
