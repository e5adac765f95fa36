package message

import "golang.org/x/text/language"

const (
	KeyAuthorization = "authorization"
	KeyMaxLength     = "validation.maxLength"
	KeyInputInvalid  = "validation.inputInvalid"

	KeyNotWorkDay         = "attendance.notWorkDay"
	KeyPunchAlreadyExists = "attendance.punchAlreadyExists"
	KeyPunchInEmpty       = "attendance.punchInEmpty"
	KeyTrainingTimeRange  = "attendance.trainingTimeRange"
	KeyBlankTimeError     = "attendance.blankTimeError"
	KeyUpdateNotice       = "attendance.updateNotice"
	KeyBlankTimeFormat    = "attendance.blankTime.format"

	KeyFieldStartTime = "attendance.field.startTime"
	KeyFieldEndTime   = "attendance.field.endTime"
	KeyFieldNote      = "attendance.field.note"
	KeyFieldBlankTime = "attendance.field.blankTime"

	KeyStatusNormal            = "attendance.status.normal"
	KeyStatusLate              = "attendance.status.late"
	KeyStatusLeaveEarly        = "attendance.status.leaveEarly"
	KeyStatusLateAndLeaveEarly = "attendance.status.lateAndLeaveEarly"
	KeyStatusAbsent            = "attendance.status.absent"

	// Years are passed as strings so the printer does not group their digits.
	KeyDate            = "format.date"
	KeyDateWithWeekday = "format.dateWithWeekday"
	KeyWeekdayPrefix   = "format.weekday."
)

var translations = map[language.Tag]map[string]string{
	language.Japanese: {
		KeyAuthorization: "この操作を行う権限がありません。",
		KeyMaxLength:     "%sは%d文字以内で入力してください。",
		KeyInputInvalid:  "%sが正しく入力されていません。",

		KeyNotWorkDay:         "本日は研修日ではありません。",
		KeyPunchAlreadyExists: "本日の勤怠情報は既に入力されています。直接編集してください。",
		KeyPunchInEmpty:       "出勤情報がないため%sを入力出来ません。",
		KeyTrainingTimeRange:  "退勤時刻は出勤時刻より後でなければいけません。",
		KeyBlankTimeError:     "中抜け時間が勤務時間を超えています。",
		KeyUpdateNotice:       "勤怠情報の登録が完了しました。",
		KeyBlankTimeFormat:    "%d時間%d分",

		KeyFieldStartTime: "出勤時間",
		KeyFieldEndTime:   "退勤時間",
		KeyFieldNote:      "備考",
		KeyFieldBlankTime: "中抜け時間",

		KeyStatusNormal:            "正常",
		KeyStatusLate:              "遅刻",
		KeyStatusLeaveEarly:        "早退",
		KeyStatusLateAndLeaveEarly: "遅刻・早退",
		KeyStatusAbsent:            "欠席",

		KeyDate:            "%s年%d月%d日",
		KeyDateWithWeekday: "%s年%d月%d日(%s)",
		KeyWeekdayPrefix + "0": "日",
		KeyWeekdayPrefix + "1": "月",
		KeyWeekdayPrefix + "2": "火",
		KeyWeekdayPrefix + "3": "水",
		KeyWeekdayPrefix + "4": "木",
		KeyWeekdayPrefix + "5": "金",
		KeyWeekdayPrefix + "6": "土",
	},
	language.English: {
		KeyAuthorization: "You are not authorized to perform this operation.",
		KeyMaxLength:     "%s must be at most %d characters.",
		KeyInputInvalid:  "%s is not entered correctly.",

		KeyNotWorkDay:         "Today is not a training day.",
		KeyPunchAlreadyExists: "Today's attendance has already been recorded. Please edit it directly.",
		KeyPunchInEmpty:       "%s cannot be entered because there is no punch-in record.",
		KeyTrainingTimeRange:  "The end time must be later than the start time.",
		KeyBlankTimeError:     "The break time exceeds the time attended.",
		KeyUpdateNotice:       "Attendance has been saved.",
		KeyBlankTimeFormat:    "%dh %dm",

		KeyFieldStartTime: "Start time",
		KeyFieldEndTime:   "End time",
		KeyFieldNote:      "Note",
		KeyFieldBlankTime: "Break time",

		KeyStatusNormal:            "Normal",
		KeyStatusLate:              "Late",
		KeyStatusLeaveEarly:        "Left early",
		KeyStatusLateAndLeaveEarly: "Late / left early",
		KeyStatusAbsent:            "Absent",

		KeyDate:            "%[2]d/%[3]d/%[1]s",
		KeyDateWithWeekday: "%[4]s %[2]d/%[3]d/%[1]s",
		KeyWeekdayPrefix + "0": "Sun",
		KeyWeekdayPrefix + "1": "Mon",
		KeyWeekdayPrefix + "2": "Tue",
		KeyWeekdayPrefix + "3": "Wed",
		KeyWeekdayPrefix + "4": "Thu",
		KeyWeekdayPrefix + "5": "Fri",
		KeyWeekdayPrefix + "6": "Sat",
	},
}
