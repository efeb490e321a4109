package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are work-day strings in "2006-01-02" form, so inclusive range filters
// compare lexicographically.
type AttendanceRepository interface {
	// Create creates a new attendance record, assigning an ID if absent
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// FindActiveByUser retrieves the clocked_in record for a user on a given
	// work day, or nil when the user is clocked out.
	// The store enforces at most one such record per (user, date).
	FindActiveByUser(ctx context.Context, userID string, date string) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Attendance) error

	// QueryByUserAndRange retrieves a user's records with an inclusive date
	// filter, in insertion order. Empty bounds leave that side open.
	QueryByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]Attendance, error)

	// QueryByDate retrieves all users' records for one work day
	QueryByDate(ctx context.Context, date string) ([]Attendance, error)

	// QueryByRange retrieves all users' records with an inclusive date
	// filter, in insertion order. Empty bounds leave that side open.
	QueryByRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)
}
