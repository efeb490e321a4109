package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrack-hq/timetrack-backend-go/internal/repository/memory"
)

var (
	lateCutoff  = report.TimeOfDay{Hour: 9, Minute: 15}
	earlyCutoff = report.TimeOfDay{Hour: 17, Minute: 0}
)

func closedRecord(userID, date string, in, out time.Time, hours float64) attendance.Attendance {
	return attendance.Attendance{
		UserID:           userID,
		Date:             date,
		ClockIn:          in,
		ClockOut:         &out,
		ClockInLatitude:  37.7749,
		ClockInLongitude: -122.4194,
		TotalHours:       &hours,
		Status:           attendance.StatusClockedOut,
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, lateCutoff, earlyCutoff)
	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.TotalHours)
	assert.Equal(t, 0.0, summary.AverageHoursPerDay)
	assert.Equal(t, 0, summary.LateArrivals)
	assert.Equal(t, 0, summary.EarlyDepartures)
}

func TestSummarize_ThreeRecords(t *testing.T) {
	records := []attendance.Attendance{
		closedRecord("2", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 30, 0, 0, time.UTC), 8.5),
		closedRecord("2", "2023-04-11",
			time.Date(2023, 4, 11, 8, 55, 0, 0, time.UTC),
			time.Date(2023, 4, 11, 17, 5, 0, 0, time.UTC), 8.17),
		closedRecord("3", "2023-04-11",
			time.Date(2023, 4, 11, 9, 15, 0, 0, time.UTC),
			time.Date(2023, 4, 11, 18, 0, 0, 0, time.UTC), 8.75),
	}

	summary := Summarize(records, lateCutoff, earlyCutoff)
	assert.Equal(t, 3, summary.TotalDays)
	assert.InDelta(t, 25.42, summary.TotalHours, 0.001)
	assert.InDelta(t, 8.47, summary.AverageHoursPerDay, 0.01)
	// Only the 09:15 arrival is at or past the cutoff.
	assert.Equal(t, 1, summary.LateArrivals)
	assert.Equal(t, 0, summary.EarlyDepartures)
}

func TestSummarize_CountsLateAndEarly(t *testing.T) {
	records := []attendance.Attendance{
		// 09:14 is still on time, 09:15 is late.
		closedRecord("2", "2023-04-10",
			time.Date(2023, 4, 10, 9, 14, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 7.77),
		closedRecord("2", "2023-04-11",
			time.Date(2023, 4, 11, 9, 15, 0, 0, time.UTC),
			time.Date(2023, 4, 11, 16, 59, 0, 0, time.UTC), 7.73),
	}

	summary := Summarize(records, lateCutoff, earlyCutoff)
	assert.Equal(t, 1, summary.LateArrivals)
	// 16:59 is early, 17:00 exactly is not.
	assert.Equal(t, 1, summary.EarlyDepartures)
}

func TestSummarize_OpenRecordCountsZeroHours(t *testing.T) {
	open := attendance.Attendance{
		UserID:  "2",
		Date:    "2023-04-10",
		ClockIn: time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
		Status:  attendance.StatusClockedIn,
	}

	summary := Summarize([]attendance.Attendance{open}, lateCutoff, earlyCutoff)
	assert.Equal(t, 1, summary.TotalDays)
	assert.Equal(t, 0.0, summary.TotalHours)
	assert.Equal(t, 0, summary.EarlyDepartures)
}

func TestAggregateByDepartment(t *testing.T) {
	directory := []employee.Employee{
		{ID: "2", Department: "Engineering"},
		{ID: "3", Department: "Marketing"},
		{ID: "4", Department: "Engineering"},
	}
	records := []attendance.Attendance{
		closedRecord("2", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 8),
		closedRecord("4", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 6),
		closedRecord("3", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 8),
		// User 99 is not in the directory and must be skipped.
		closedRecord("99", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 8),
	}

	stats := AggregateByDepartment(records, directory)
	require.Len(t, stats, 2)

	assert.Equal(t, "Engineering", stats[0].Department)
	assert.Equal(t, 14.0, stats[0].TotalHours)
	assert.Equal(t, 2, stats[0].EmployeeCount)
	assert.Equal(t, 7.0, stats[0].AverageHoursPerEmployee)

	assert.Equal(t, "Marketing", stats[1].Department)
	assert.Equal(t, 8.0, stats[1].TotalHours)
	assert.Equal(t, 1, stats[1].EmployeeCount)
}

func TestAggregateByWeekday_AlwaysSevenBuckets(t *testing.T) {
	stats := AggregateByWeekday(nil)
	require.Len(t, stats, 7)

	expected := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, s := range stats {
		assert.Equal(t, expected[i], s.Day)
		assert.Equal(t, 0, s.Count)
		assert.Equal(t, 0.0, s.TotalHours)
	}
}

func TestAggregateByWeekday_BucketsByDate(t *testing.T) {
	// 2023-04-10 is a Monday, 2023-04-15 a Saturday.
	records := []attendance.Attendance{
		closedRecord("2", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 0, 0, 0, time.UTC), 8),
		closedRecord("3", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 30, 0, 0, time.UTC), 8.5),
		closedRecord("2", "2023-04-15",
			time.Date(2023, 4, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 15, 14, 0, 0, 0, time.UTC), 4),
	}

	stats := AggregateByWeekday(records)
	require.Len(t, stats, 7)

	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 16.5, stats[0].TotalHours, 0.001)
	assert.Equal(t, 1, stats[5].Count)
	assert.Equal(t, 4.0, stats[5].TotalHours)
	// Everything else stays zero-filled.
	for _, i := range []int{1, 2, 3, 4, 6} {
		assert.Equal(t, 0, stats[i].Count)
	}
}

func TestGetUserSummary_EndToEnd(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository([]employee.Employee{
		{ID: "2", Department: "Engineering"},
	})
	attendanceRepo.Seed([]attendance.Attendance{
		closedRecord("2", "2023-04-10",
			time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 4, 10, 17, 30, 0, 0, time.UTC), 8.5),
		closedRecord("2", "2023-04-11",
			time.Date(2023, 4, 11, 8, 55, 0, 0, time.UTC),
			time.Date(2023, 4, 11, 17, 5, 0, 0, time.UTC), 8.17),
		closedRecord("2", "2023-05-01",
			time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 5, 1, 17, 0, 0, 0, time.UTC), 8),
	})

	svc := NewReportService(attendanceRepo, employeeRepo, lateCutoff, earlyCutoff)

	summary, err := svc.GetUserSummary(ctx, report.SummaryRequest{
		UserID:    "2",
		StartDate: "2023-04-01",
		EndDate:   "2023-04-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalDays)
	assert.InDelta(t, 16.67, summary.TotalHours, 0.001)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := report.ParseTimeOfDay("09:15")
	require.NoError(t, err)
	assert.Equal(t, report.TimeOfDay{Hour: 9, Minute: 15}, tod)

	_, err = report.ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
