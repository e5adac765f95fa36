package attendance

import (
	"fmt"
	"time"
)

// MergePlanner turns a validated edit batch into records to insert or update.
type MergePlanner struct {
	Classifier Classifier

	// AbsentLabels are the display names, in every language, that mark a
	// day as absent.
	AbsentLabels []string
}

// Plan matches each row to an existing record by training date. A matched
// record keeps its identity and creation audit fields; an unmatched row
// becomes a new record. When several rows share a date the last one wins.
//
// existing is never modified.
func (p MergePlanner) Plan(existing []Record, rows []DailyEditRow, stamp AuditStamp) ([]PlannedRecord, error) {
	byDate := make(map[string]Record, len(existing))
	for _, rec := range existing {
		byDate[rec.TrainingDate.Format(DateLayout)] = rec
	}

	planned := make([]PlannedRecord, 0, len(rows))
	position := make(map[string]int, len(rows))

	for i := range rows {
		row := &rows[i]
		date, err := time.Parse(DateLayout, row.TrainingDate)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidTrainingDate, i, row.TrainingDate)
		}
		key := date.Format(DateLayout)

		var rec Record
		var matchedID *string
		if prev, ok := byDate[key]; ok {
			rec = prev
			id := prev.ID
			matchedID = &id
		} else {
			rec = Record{TrainingDate: date, Status: StatusNormal}
			if row.Status != nil && row.Status.IsValid() {
				rec.Status = *row.Status
			}
		}

		if err := p.apply(&rec, row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		rec.StudentID = stamp.StudentID
		rec.AccountID = stamp.AccountID
		rec.DeleteFlag = false
		rec.LastModifiedUser = stamp.ActorID
		rec.LastModifiedDate = stamp.Now
		if matchedID == nil {
			rec.ID = ""
			rec.FirstCreateUser = stamp.ActorID
			rec.FirstCreateDate = stamp.Now
		}

		pr := PlannedRecord{Record: rec, MatchedExistingID: matchedID}
		if at, dup := position[key]; dup {
			planned[at] = pr
			continue
		}
		position[key] = len(planned)
		planned = append(planned, pr)
	}

	return planned, nil
}

// apply copies the mutable fields of row onto rec.
func (p MergePlanner) apply(rec *Record, row *DailyEditRow) error {
	start, err := row.StartTime()
	if err != nil {
		return err
	}
	end, err := row.EndTime()
	if err != nil {
		return err
	}

	rec.TrainingStartTime = start.String()
	rec.TrainingEndTime = end.String()

	blank := int(BlankTimeOf(row.BlankTime))
	rec.BlankTime = &blank

	if (start.IsSet() || end.IsSet()) && !p.isMarkedAbsent(row) {
		rec.Status = p.Classifier.Classify(start, end)
	}

	rec.Note = row.Note
	return nil
}

func (p MergePlanner) isMarkedAbsent(row *DailyEditRow) bool {
	if row.Status != nil && *row.Status == StatusAbsent {
		return true
	}
	for _, label := range p.AbsentLabels {
		if row.StatusDispName == label {
			return true
		}
	}
	return false
}

// SplitPlan separates planned records into inserts and updates.
func SplitPlan(planned []PlannedRecord) (inserts, updates []Record) {
	for _, pr := range planned {
		if pr.IsInsert() {
			inserts = append(inserts, pr.Record)
			continue
		}
		updates = append(updates, pr.Record)
	}
	return inserts, updates
}
