package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	lateCutoff  report.TimeOfDay
	earlyCutoff report.TimeOfDay
}

func NewReportService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	lateCutoff report.TimeOfDay,
	earlyCutoff report.TimeOfDay,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		lateCutoff:           lateCutoff,
		earlyCutoff:          earlyCutoff,
	}
}

// Summarize aggregates a record set. Records without total hours count as
// zero hours but still count as days.
func Summarize(records []attendance.Attendance, lateCutoff, earlyCutoff report.TimeOfDay) report.Summary {
	summary := report.Summary{TotalDays: len(records)}

	for _, record := range records {
		if record.TotalHours != nil {
			summary.TotalHours += *record.TotalHours
		}

		inHour, inMinute := record.ClockIn.Hour(), record.ClockIn.Minute()
		if inHour > lateCutoff.Hour || (inHour == lateCutoff.Hour && inMinute >= lateCutoff.Minute) {
			summary.LateArrivals++
		}

		if record.ClockOut != nil {
			outHour, outMinute := record.ClockOut.Hour(), record.ClockOut.Minute()
			if outHour < earlyCutoff.Hour || (outHour == earlyCutoff.Hour && outMinute < earlyCutoff.Minute) {
				summary.EarlyDepartures++
			}
		}
	}

	if summary.TotalDays > 0 {
		summary.AverageHoursPerDay = summary.TotalHours / float64(summary.TotalDays)
	}

	return summary
}

// AggregateByDepartment groups records by the owning employee's department.
// Records whose user is missing from the directory are skipped.
func AggregateByDepartment(records []attendance.Attendance, directory []employee.Employee) []report.DepartmentStats {
	departmentByUser := make(map[string]string, len(directory))
	for _, e := range directory {
		departmentByUser[e.ID] = e.Department
	}

	type bucket struct {
		totalHours float64
		employees  map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, record := range records {
		department, ok := departmentByUser[record.UserID]
		if !ok {
			continue
		}

		b, exists := buckets[department]
		if !exists {
			b = &bucket{employees: make(map[string]struct{})}
			buckets[department] = b
		}

		b.employees[record.UserID] = struct{}{}
		if record.TotalHours != nil {
			b.totalHours += *record.TotalHours
		}
	}

	result := make([]report.DepartmentStats, 0, len(buckets))
	for department, b := range buckets {
		stats := report.DepartmentStats{
			Department:    department,
			TotalHours:    b.totalHours,
			EmployeeCount: len(b.employees),
		}
		if stats.EmployeeCount > 0 {
			stats.AverageHoursPerEmployee = stats.TotalHours / float64(stats.EmployeeCount)
		}
		result = append(result, stats)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Department < result[j].Department
	})
	return result
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AggregateByWeekday buckets records by the weekday of their work day. All
// seven Mon..Sun buckets are always present so chart axes stay stable.
func AggregateByWeekday(records []attendance.Attendance) []report.WeekdayStats {
	result := make([]report.WeekdayStats, 7)
	for i, label := range weekdayLabels {
		result[i] = report.WeekdayStats{Day: label}
	}

	for _, record := range records {
		day, err := time.Parse("2006-01-02", record.Date)
		if err != nil {
			continue
		}
		// time.Weekday starts the week on Sunday; shift so Monday is index 0.
		idx := (int(day.Weekday()) + 6) % 7

		result[idx].Count++
		if record.TotalHours != nil {
			result[idx].TotalHours += *record.TotalHours
		}
	}

	return result
}

// GetUserSummary implements report.ReportService.
func (s *ReportServiceImpl) GetUserSummary(ctx context.Context, req report.SummaryRequest) (report.Summary, error) {
	if err := req.Validate(); err != nil {
		return report.Summary{}, err
	}

	records, err := s.AttendanceRepository.QueryByUserAndRange(ctx, req.UserID, req.StartDate, req.EndDate)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return Summarize(records, s.lateCutoff, s.earlyCutoff), nil
}

// GetDepartmentStats implements report.ReportService.
func (s *ReportServiceImpl) GetDepartmentStats(ctx context.Context, startDate, endDate string) ([]report.DepartmentStats, error) {
	records, err := s.AttendanceRepository.QueryByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	directory, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return AggregateByDepartment(records, directory), nil
}

// GetWeekdayStats implements report.ReportService.
func (s *ReportServiceImpl) GetWeekdayStats(ctx context.Context, startDate, endDate string) ([]report.WeekdayStats, error) {
	records, err := s.AttendanceRepository.QueryByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return AggregateByWeekday(records), nil
}

// GetWeeklyAttendance implements report.ReportService.
func (s *ReportServiceImpl) GetWeeklyAttendance(ctx context.Context, userID string, weeks int) ([]report.WeeklyAttendance, error) {
	if weeks <= 0 {
		weeks = 4
	}

	// Walk back to the Monday of the current week, then cover the trailing
	// weeks oldest first.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	result := make([]report.WeeklyAttendance, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := weekStart.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 6)

		records, err := s.AttendanceRepository.QueryByUserAndRange(ctx, userID,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		if err != nil {
			return nil, fmt.Errorf("failed to query attendance records: %w", err)
		}

		week := report.WeeklyAttendance{
			Week:        fmt.Sprintf("Week %d", weeks-i),
			DaysPresent: len(records),
		}
		for _, record := range records {
			if record.TotalHours != nil {
				week.TotalHours += *record.TotalHours
			}
		}
		result = append(result, week)
	}

	return result, nil
}
