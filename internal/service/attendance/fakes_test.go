package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
)

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	records  map[string]attendance.Record
	days     map[string][]calendar.TrainingDay
	inserts  int
	updates  int
	failWith error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]attendance.Record),
		days:    make(map[string][]calendar.TrainingDay),
	}
}

func (f *fakeAttendanceRepo) seed(rec attendance.Record) attendance.Record {
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("rec-%d", len(f.records)+1)
	}
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeAttendanceRepo) FindByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*attendance.Record, error) {
	for _, r := range f.records {
		if r.StudentID == studentID && r.TrainingDate.Equal(date) && !r.DeleteFlag {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindAllActive(ctx context.Context, studentID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.StudentID == studentID && !r.DeleteFlag {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainingDate.Before(out[j].TrainingDate) })
	return out, nil
}

func (f *fakeAttendanceRepo) CountUnfilledPast(ctx context.Context, studentID string, before time.Time) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.StudentID == studentID && !r.DeleteFlag && r.TrainingDate.Before(before) &&
			(r.TrainingStartTime == "" || r.TrainingEndTime == "") {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) ListManagement(ctx context.Context, courseID, studentID string, today time.Time) ([]attendance.ManagementRow, error) {
	var rows []attendance.ManagementRow
	for _, day := range f.days[courseID] {
		row := attendance.ManagementRow{
			TrainingDate: day.Date,
			SectionName:  day.SectionName,
			IsToday:      day.Date.Equal(today),
		}
		if rec, _ := f.FindByStudentAndDate(ctx, studentID, day.Date); rec != nil {
			id := rec.ID
			status := rec.Status
			row.StudentAttendanceID = &id
			row.TrainingStartTime = rec.TrainingStartTime
			row.TrainingEndTime = rec.TrainingEndTime
			row.BlankTime = rec.BlankTime
			row.Status = &status
			row.Note = rec.Note
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeAttendanceRepo) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if f.failWith != nil {
		return attendance.Record{}, f.failWith
	}
	f.inserts++
	return f.seed(rec), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.updates++
	f.records[rec.ID] = rec
	return nil
}

type fakeCalendarRepo struct {
	days map[string]bool
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{days: make(map[string]bool)}
}

func (f *fakeCalendarRepo) key(courseID string, date time.Time) string {
	return courseID + "|" + date.Format(attendance.DateLayout)
}

func (f *fakeCalendarRepo) IsWorkDay(ctx context.Context, courseID string, date time.Time) (bool, error) {
	return f.days[f.key(courseID, date)], nil
}

func (f *fakeCalendarRepo) Upsert(ctx context.Context, day calendar.TrainingDay) error {
	f.days[f.key(day.CourseID, day.Date)] = true
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) ListActiveStudents(ctx context.Context, asOf time.Time) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsStudent() && (u.LeaveDate == nil || u.LeaveDate.After(asOf)) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
