package report

import "context"

// ReportService computes attendance statistics over stored records.
type ReportService interface {
	// GetUserSummary aggregates one user's records over an inclusive date range
	GetUserSummary(ctx context.Context, req SummaryRequest) (Summary, error)

	// GetDepartmentStats groups all records in a date range by department,
	// resolving users through the employee directory
	GetDepartmentStats(ctx context.Context, startDate, endDate string) ([]DepartmentStats, error)

	// GetWeekdayStats buckets all records in a date range by weekday.
	// Always returns exactly seven Mon..Sun buckets.
	GetWeekdayStats(ctx context.Context, startDate, endDate string) ([]WeekdayStats, error)

	// GetWeeklyAttendance aggregates one user's trailing weeks
	GetWeeklyAttendance(ctx context.Context, userID string, weeks int) ([]WeeklyAttendance, error)
}
