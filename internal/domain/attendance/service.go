package attendance

import (
	"context"
)

// AttendanceService defines business logic for clock in/out operations
type AttendanceService interface {
	// ClockIn opens a new attendance record for the requesting user
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes an open attendance record and fixes its total hours
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetCurrentStatus retrieves today's open record for a user, or nil when
	// the user is clocked out
	GetCurrentStatus(ctx context.Context, userID string) (*AttendanceResponse, error)

	// GetHistory retrieves a user's records over an inclusive date range
	GetHistory(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)

	// ListByDate retrieves all employees' records for one work day (admin)
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}
