package attendance

import "time"

// DateLayout is the wire and storage layout of a training date.
const DateLayout = "2006-01-02"

// Record is one student's attendance for one training day. Start and end
// times hold "HH:MM" or "" when not punched.
type Record struct {
	ID                string
	StudentID         string
	AccountID         string
	TrainingDate      time.Time
	TrainingStartTime string
	TrainingEndTime   string
	BlankTime         *int
	Status            Status
	Note              string
	DeleteFlag        bool
	FirstCreateUser   string
	FirstCreateDate   time.Time
	LastModifiedUser  string
	LastModifiedDate  time.Time
}

// StartTime parses the stored start time.
func (r *Record) StartTime() (ClockTime, error) {
	return ParseClockTime(r.TrainingStartTime)
}

// EndTime parses the stored end time.
func (r *Record) EndTime() (ClockTime, error) {
	return ParseClockTime(r.TrainingEndTime)
}

// ManagementRow is one scheduled training day of a course joined with the
// student's record for it, if any.
type ManagementRow struct {
	TrainingDate time.Time
	SectionName  string
	IsToday      bool

	// Zero values when no record exists for the day.
	StudentAttendanceID *string
	TrainingStartTime   string
	TrainingEndTime     string
	BlankTime           *int
	Status              *Status
	Note                string
}

// AuditStamp identifies who writes a batch, for whom and when.
type AuditStamp struct {
	ActorID   string
	StudentID string
	AccountID string
	Now       time.Time
}

// PlannedRecord is a record ready to commit. MatchedExistingID is set when the
// record replaces a persisted one and nil when it must be inserted.
type PlannedRecord struct {
	Record            Record
	MatchedExistingID *string
}

// IsInsert reports whether the record has no persisted identity yet.
func (p PlannedRecord) IsInsert() bool {
	return p.MatchedExistingID == nil
}
