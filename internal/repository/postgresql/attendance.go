package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date::text, clock_in, clock_out,
	clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude,
	total_hours, status, notes, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var record attendance.Attendance
	err := row.Scan(
		&record.ID, &record.UserID, &record.Date, &record.ClockIn, &record.ClockOut,
		&record.ClockInLatitude, &record.ClockInLongitude, &record.ClockOutLatitude, &record.ClockOutLongitude,
		&record.TotalHours, &record.Status, &record.Notes, &record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, clock_in, clock_in_latitude, clock_in_longitude,
			status, notes
		) VALUES (
			$1, $2::date, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.ClockIn,
		record.ClockInLatitude,
		record.ClockInLongitude,
		record.Status,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	record, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// FindActiveByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindActiveByUser(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date = $2::date
		  AND status = $3
		ORDER BY clock_in DESC
		LIMIT 1
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, userID, date, attendance.StatusClockedIn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active attendance record: %w", err)
	}

	return &record, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_out = $2,
		    clock_out_latitude = $3,
		    clock_out_longitude = $4,
		    total_hours = $5,
		    status = $6,
		    notes = $7,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.ClockOut,
		record.ClockOutLatitude,
		record.ClockOutLongitude,
		record.TotalHours,
		record.Status,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// QueryByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND ($2 = '' OR date >= $2::date)
		  AND ($3 = '' OR date <= $3::date)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// QueryByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryByRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE ($1 = '' OR date >= $1::date)
		  AND ($2 = '' OR date <= $2::date)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// QueryByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date = $1::date
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return result, nil
}
