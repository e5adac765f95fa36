package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/training-attendance/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
	id, student_id, account_id, training_date, training_start_time, training_end_time,
	blank_time, status, note, delete_flg,
	first_create_user, first_create_date, last_modified_user, last_modified_date`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status int16
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.AccountID, &rec.TrainingDate, &rec.TrainingStartTime, &rec.TrainingEndTime,
		&rec.BlankTime, &status, &rec.Note, &rec.DeleteFlag,
		&rec.FirstCreateUser, &rec.FirstCreateDate, &rec.LastModifiedUser, &rec.LastModifiedDate,
	)
	rec.Status = attendance.Status(status)
	return rec, err
}

// FindByStudentAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM student_attendances
		WHERE student_id = $1
		  AND training_date = $2
		  AND delete_flg = FALSE
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, studentID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return &rec, nil
}

// FindAllActive implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindAllActive(ctx context.Context, studentID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM student_attendances
		WHERE student_id = $1
		  AND delete_flg = FALSE
		ORDER BY training_date
	`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// CountUnfilledPast implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountUnfilledPast(ctx context.Context, studentID string, before time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM student_attendances
		WHERE student_id = $1
		  AND delete_flg = FALSE
		  AND training_date < $2
		  AND (training_start_time = '' OR training_end_time = '')
	`

	var count int
	if err := q.QueryRow(ctx, query, studentID, before).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unfilled attendance: %w", err)
	}
	return count, nil
}

// ListManagement implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListManagement(ctx context.Context, courseID, studentID string, today time.Time) ([]attendance.ManagementRow, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT d.training_date, d.section_name, d.training_date = $3 AS is_today,
			   sa.id, COALESCE(sa.training_start_time, ''), COALESCE(sa.training_end_time, ''),
			   sa.blank_time, sa.status, COALESCE(sa.note, '')
		FROM training_days d
		LEFT JOIN student_attendances sa
		       ON sa.training_date = d.training_date
		      AND sa.student_id = $2
		      AND sa.delete_flg = FALSE
		WHERE d.course_id = $1
		ORDER BY d.training_date
	`

	rows, err := q.Query(ctx, query, courseID, studentID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance management: %w", err)
	}
	defer rows.Close()

	var result []attendance.ManagementRow
	for rows.Next() {
		var row attendance.ManagementRow
		var status *int16
		if err := rows.Scan(
			&row.TrainingDate, &row.SectionName, &row.IsToday,
			&row.StudentAttendanceID, &row.TrainingStartTime, &row.TrainingEndTime,
			&row.BlankTime, &status, &row.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance management row: %w", err)
		}
		if status != nil {
			s := attendance.Status(*status)
			row.Status = &s
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance management: %w", err)
	}
	return result, nil
}

// Insert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	rec.ID = id.String()

	query := `
		INSERT INTO student_attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = q.Exec(ctx, query,
		rec.ID, rec.StudentID, rec.AccountID, rec.TrainingDate, rec.TrainingStartTime, rec.TrainingEndTime,
		rec.BlankTime, int16(rec.Status), rec.Note, rec.DeleteFlag,
		rec.FirstCreateUser, rec.FirstCreateDate, rec.LastModifiedUser, rec.LastModifiedDate,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to insert attendance: %w", err)
	}
	return rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE student_attendances
		SET account_id = $2,
			training_start_time = $3,
			training_end_time = $4,
			blank_time = $5,
			status = $6,
			note = $7,
			delete_flg = $8,
			last_modified_user = $9,
			last_modified_date = $10
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.AccountID, rec.TrainingStartTime, rec.TrainingEndTime,
		rec.BlankTime, int16(rec.Status), rec.Note, rec.DeleteFlag,
		rec.LastModifiedUser, rec.LastModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
