package attendance

import (
	"unicode/utf8"

	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/validator"
)

const (
	// AttendanceListField is the form path of the edit rows.
	AttendanceListField = "attendanceList"

	NoteMaxLength = 100

	fieldStartHour   = "trainingStartTimeHour"
	fieldStartMinute = "trainingStartTimeMinute"
	fieldEndHour     = "trainingEndTimeHour"
	fieldEndMinute   = "trainingEndTimeMinute"
	fieldBlankTime   = "blankTime"
	fieldNote        = "note"
)

// fieldLabels maps row fields to the catalog key of their display label.
var fieldLabels = map[string]string{
	fieldStartHour:   message.KeyFieldStartTime,
	fieldStartMinute: message.KeyFieldStartTime,
	fieldEndHour:     message.KeyFieldEndTime,
	fieldEndMinute:   message.KeyFieldEndTime,
	fieldBlankTime:   message.KeyFieldBlankTime,
	fieldNote:        message.KeyFieldNote,
}

// ValidateRows checks every row of an edit batch and collects all field
// errors, keyed by the row's position in rows. Rows without any input are
// skipped.
func ValidateRows(rows []DailyEditRow, msg message.Lookup) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i := range rows {
		validateRow(i, &rows[i], msg, &errs)
	}
	return errs
}

// ValidateForm validates the form rows and refreshes its selection menus so
// the form can be rendered again whatever the outcome.
func ValidateForm(form *EditForm, msg message.Lookup) error {
	errs := ValidateRows(form.AttendanceList, msg)
	form.RefreshMenus(msg)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateRow(i int, row *DailyEditRow, msg message.Lookup, errs *validator.ValidationErrors) {
	if row.IsUntouched() {
		return
	}

	add := func(field, text string) {
		errs.Add(validator.IndexedField(AttendanceListField, i, field), text)
	}
	invalid := func(field string) string {
		return msg.Get(message.KeyInputInvalid, msg.Get(fieldLabels[field]))
	}

	if utf8.RuneCountInString(row.Note) > NoteMaxLength {
		add(fieldNote, msg.Get(message.KeyMaxLength, msg.Get(message.KeyFieldNote), NoteMaxLength))
	}

	// Out-of-range hours, minutes and breaks are reported and keep the row
	// out of the chronology checks below.
	outOfRange := false
	for _, fe := range validator.Struct(row) {
		if _, known := fieldLabels[fe.Field]; !known {
			continue
		}
		add(fe.Field, invalid(fe.Field))
		outOfRange = true
	}

	if (row.TrainingStartTimeHour == nil) != (row.TrainingStartTimeMinute == nil) {
		if row.TrainingStartTimeHour == nil {
			add(fieldStartHour, invalid(fieldStartHour))
		}
		if row.TrainingStartTimeMinute == nil {
			add(fieldStartMinute, invalid(fieldStartMinute))
		}
	}

	if (row.TrainingEndTimeHour == nil) != (row.TrainingEndTimeMinute == nil) {
		if row.TrainingEndTimeHour == nil {
			add(fieldEndHour, invalid(fieldEndHour))
		}
		if row.TrainingEndTimeMinute == nil {
			add(fieldEndMinute, invalid(fieldEndMinute))
		}
	}

	hasStart := row.TrainingStartTimeHour != nil && row.TrainingStartTimeMinute != nil
	hasEnd := row.TrainingEndTimeHour != nil && row.TrainingEndTimeMinute != nil

	if !hasStart && hasEnd {
		noPunchIn := msg.Get(message.KeyPunchInEmpty, msg.Get(message.KeyFieldEndTime))
		add(fieldStartHour, noPunchIn)
		add(fieldStartMinute, noPunchIn)
	}

	if !hasStart || !hasEnd || outOfRange {
		return
	}

	start, err := row.StartTime()
	if err != nil {
		return
	}
	end, err := row.EndTime()
	if err != nil {
		return
	}

	elapsed := start.MinutesUntil(end)
	if elapsed <= 0 {
		rangeMsg := msg.Get(message.KeyTrainingTimeRange)
		add(fieldEndHour, rangeMsg)
		add(fieldEndMinute, rangeMsg)
	}
	if !BlankTimeOf(row.BlankTime).FitsWithin(elapsed) {
		add(fieldBlankTime, msg.Get(message.KeyBlankTimeError))
	}
}
