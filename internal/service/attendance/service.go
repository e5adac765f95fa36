package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/domain/calendar"
	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/message"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	calendar.CalendarRepository
	user.UserRepository
	msg        message.Translator
	classifier attendance.Classifier
	planner    attendance.MergePlanner
	loc        *time.Location
	now        func() time.Time
}

// trainingDate returns the calendar day of t in the training time zone, as a
// UTC midnight the way DATE columns are scanned.
func (s *AttendanceServiceImpl) trainingDate(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveStudent returns the student whose attendance the actor works on.
// Students only ever reach their own records; staff must name a student.
func (s *AttendanceServiceImpl) resolveStudent(ctx context.Context, actor user.Actor, studentID string) (user.User, error) {
	switch {
	case actor.IsStudent():
		if studentID != "" && studentID != actor.UserID {
			return user.User{}, user.ErrInsufficientPermissions
		}
		studentID = actor.UserID
	case actor.IsStaff():
		if studentID == "" {
			return user.User{}, attendance.ErrStudentRequired
		}
	default:
		return user.User{}, user.ErrInsufficientPermissions
	}

	student, err := s.UserRepository.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, user.ErrStudentNotFound
		}
		return user.User{}, fmt.Errorf("failed to get student: %w", err)
	}
	if !student.IsStudent() {
		return user.User{}, user.ErrStudentNotFound
	}
	return student, nil
}

// GetAttendanceManagement implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceManagement(ctx context.Context, actor user.Actor, studentID string) (attendance.ManagementResponse, error) {
	student, err := s.resolveStudent(ctx, actor, studentID)
	if err != nil {
		return attendance.ManagementResponse{}, err
	}
	if student.CourseID == nil {
		return attendance.ManagementResponse{}, user.ErrCourseRequired
	}

	today := s.trainingDate(s.now())
	rows, err := s.AttendanceRepository.ListManagement(ctx, *student.CourseID, student.ID, today)
	if err != nil {
		return attendance.ManagementResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	list := make([]attendance.ManagementRowResponse, 0, len(rows))
	for _, row := range rows {
		list = append(list, attendance.NewManagementRowResponse(row, s.msg))
	}

	unfilled, err := s.HasUnfilledPast(ctx, student.ID)
	if err != nil {
		return attendance.ManagementResponse{}, err
	}

	return attendance.ManagementResponse{
		StudentID:       student.ID,
		AttendanceList:  list,
		HasUnfilledPast: unfilled,
	}, nil
}

// HasUnfilledPast implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) HasUnfilledPast(ctx context.Context, studentID string) (bool, error) {
	count, err := s.AttendanceRepository.CountUnfilledPast(ctx, studentID, s.trainingDate(s.now()))
	if err != nil {
		return false, fmt.Errorf("failed to count unfilled attendance: %w", err)
	}
	return count > 0, nil
}

// checkPunch runs the punch preconditions in order: role, training day, then
// the state of today's record.
func (s *AttendanceServiceImpl) checkPunch(ctx context.Context, actor user.Actor, pt attendance.PunchType, now time.Time) (*attendance.Record, *attendance.PunchError, error) {
	if !actor.IsStudent() {
		return nil, attendance.NewPunchError(s.msg, message.KeyAuthorization), nil
	}

	today := s.trainingDate(now)
	workDay, err := s.CalendarRepository.IsWorkDay(ctx, actor.CourseID, today)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check training day: %w", err)
	}
	if !workDay {
		return nil, attendance.NewPunchError(s.msg, message.KeyNotWorkDay), nil
	}

	rec, err := s.AttendanceRepository.FindByStudentAndDate(ctx, actor.UserID, today)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if perr := attendance.CheckTransition(pt, rec, now.In(s.loc), s.msg); perr != nil {
		return rec, perr, nil
	}
	return rec, nil, nil
}

// PunchCheck implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchCheck(ctx context.Context, actor user.Actor, punchType attendance.PunchType) (attendance.PunchCheckResponse, error) {
	_, perr, err := s.checkPunch(ctx, actor, punchType, s.now())
	if err != nil {
		return attendance.PunchCheckResponse{}, err
	}

	resp := attendance.PunchCheckResponse{Type: punchType, Allowed: perr == nil}
	if perr != nil {
		resp.Message = perr.Message
	}
	return resp, nil
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, actor user.Actor) (attendance.PunchResponse, error) {
	var saved attendance.Record

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now()
		rec, perr, err := s.checkPunch(ctx, actor, attendance.PunchIn, now)
		if err != nil {
			return err
		}
		if perr != nil {
			return perr
		}

		start := attendance.ClockTimeOf(now.In(s.loc))
		status := s.classifier.Classify(start, attendance.ClockTime{})

		if rec == nil {
			saved, err = s.AttendanceRepository.Insert(ctx, attendance.Record{
				StudentID:         actor.UserID,
				AccountID:         actor.AccountID,
				TrainingDate:      s.trainingDate(now),
				TrainingStartTime: start.String(),
				Status:            status,
				FirstCreateUser:   actor.UserID,
				FirstCreateDate:   now,
				LastModifiedUser:  actor.UserID,
				LastModifiedDate:  now,
			})
			if err != nil {
				return fmt.Errorf("failed to create attendance: %w", err)
			}
			return nil
		}

		rec.TrainingStartTime = start.String()
		rec.Status = status
		rec.DeleteFlag = false
		rec.LastModifiedUser = actor.UserID
		rec.LastModifiedDate = now
		if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		saved = *rec
		return nil
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	slog.Info("Punch in recorded",
		"student_id", actor.UserID,
		"training_date", saved.TrainingDate.Format(attendance.DateLayout),
		"start", saved.TrainingStartTime,
		"status", saved.Status.String(),
	)
	return s.punchResponse(saved), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, actor user.Actor) (attendance.PunchResponse, error) {
	var saved attendance.Record

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now()
		rec, perr, err := s.checkPunch(ctx, actor, attendance.PunchOut, now)
		if err != nil {
			return err
		}
		if perr != nil {
			return perr
		}

		start, err := rec.StartTime()
		if err != nil {
			return fmt.Errorf("stored start time: %w", err)
		}
		end := attendance.ClockTimeOf(now.In(s.loc))

		rec.TrainingEndTime = end.String()
		rec.Status = s.classifier.Classify(start, end)
		rec.DeleteFlag = false
		rec.LastModifiedUser = actor.UserID
		rec.LastModifiedDate = now
		if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		saved = *rec
		return nil
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	slog.Info("Punch out recorded",
		"student_id", actor.UserID,
		"training_date", saved.TrainingDate.Format(attendance.DateLayout),
		"end", saved.TrainingEndTime,
		"status", saved.Status.String(),
	)
	return s.punchResponse(saved), nil
}

func (s *AttendanceServiceImpl) punchResponse(rec attendance.Record) attendance.PunchResponse {
	return attendance.PunchResponse{
		Message:           s.msg.Get(message.KeyUpdateNotice),
		TrainingDate:      rec.TrainingDate.Format(attendance.DateLayout),
		TrainingStartTime: rec.TrainingStartTime,
		TrainingEndTime:   rec.TrainingEndTime,
		Status:            rec.Status,
		StatusDispName:    rec.Status.DisplayName(s.msg),
	}
}

// GetEditForm implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEditForm(ctx context.Context, actor user.Actor, studentID string) (attendance.EditForm, error) {
	student, err := s.resolveStudent(ctx, actor, studentID)
	if err != nil {
		return attendance.EditForm{}, err
	}
	if student.CourseID == nil {
		return attendance.EditForm{}, user.ErrCourseRequired
	}

	today := s.trainingDate(s.now())
	rows, err := s.AttendanceRepository.ListManagement(ctx, *student.CourseID, student.ID, today)
	if err != nil {
		return attendance.EditForm{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	form := attendance.EditForm{
		StudentID:      student.ID,
		UserName:       student.Name,
		AttendanceList: make([]attendance.DailyEditRow, 0, len(rows)),
	}
	if student.LeaveDate != nil {
		leave := *student.LeaveDate
		form.LeaveFlag = !leave.After(today)
		form.LeaveDate = leave.Format(attendance.DateLayout)
		form.DispLeaveDate = attendance.DisplayDate(s.msg, leave)
	}
	form.RefreshMenus(s.msg)

	for _, row := range rows {
		form.AttendanceList = append(form.AttendanceList, attendance.NewEditRow(row, s.msg))
	}
	return form, nil
}

// Update implements attendance.AttendanceService. Validation failures are
// returned as validator.ValidationErrors with the form menus refreshed.
func (s *AttendanceServiceImpl) Update(ctx context.Context, actor user.Actor, form *attendance.EditForm) (attendance.UpdateResponse, error) {
	studentID := form.StudentID
	if actor.IsStudent() {
		studentID = actor.UserID
	}
	student, err := s.resolveStudent(ctx, actor, studentID)
	if err != nil {
		return attendance.UpdateResponse{}, err
	}

	if err := attendance.ValidateForm(form, s.msg); err != nil {
		return attendance.UpdateResponse{}, err
	}

	resp := attendance.UpdateResponse{}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.FindAllActive(ctx, student.ID)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		planned, err := s.planner.Plan(existing, form.AttendanceList, attendance.AuditStamp{
			ActorID:   actor.UserID,
			StudentID: student.ID,
			AccountID: student.AccountID,
			Now:       s.now(),
		})
		if err != nil {
			return err
		}

		inserts, updates := attendance.SplitPlan(planned)
		for _, rec := range inserts {
			if _, err := s.AttendanceRepository.Insert(ctx, rec); err != nil {
				return fmt.Errorf("failed to create attendance for %s: %w", rec.TrainingDate.Format(attendance.DateLayout), err)
			}
		}
		for _, rec := range updates {
			if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
				return fmt.Errorf("failed to update attendance for %s: %w", rec.TrainingDate.Format(attendance.DateLayout), err)
			}
		}
		resp.Inserted = len(inserts)
		resp.Updated = len(updates)
		return nil
	})
	if err != nil {
		return attendance.UpdateResponse{}, err
	}

	slog.Info("Attendance updated",
		"student_id", student.ID,
		"actor_id", actor.UserID,
		"inserted", resp.Inserted,
		"updated", resp.Updated,
	)
	resp.Message = s.msg.Get(message.KeyUpdateNotice)
	return resp, nil
}

// ListUnfilledPast implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListUnfilledPast(ctx context.Context) ([]attendance.UnfilledReport, error) {
	today := s.trainingDate(s.now())
	students, err := s.UserRepository.ListActiveStudents(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	var reports []attendance.UnfilledReport
	for _, st := range students {
		count, err := s.AttendanceRepository.CountUnfilledPast(ctx, st.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to count unfilled attendance for %s: %w", st.ID, err)
		}
		if count > 0 {
			reports = append(reports, attendance.UnfilledReport{StudentID: st.ID, Name: st.Name, Count: count})
		}
	}
	return reports, nil
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	calendarRepo calendar.CalendarRepository,
	userRepo user.UserRepository,
	msg message.Translator,
	classifier attendance.Classifier,
	loc *time.Location,
) attendance.AttendanceService {
	return newAttendanceService(tx, attendanceRepo, calendarRepo, userRepo, msg, classifier, loc, time.Now)
}

func newAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	calendarRepo calendar.CalendarRepository,
	userRepo user.UserRepository,
	msg message.Translator,
	classifier attendance.Classifier,
	loc *time.Location,
	now func() time.Time,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		CalendarRepository:   calendarRepo,
		UserRepository:       userRepo,
		msg:                  msg,
		classifier:           classifier,
		planner: attendance.MergePlanner{
			Classifier:   classifier,
			AbsentLabels: msg.Translations(message.KeyStatusAbsent),
		},
		loc: loc,
		now: now,
	}
}
