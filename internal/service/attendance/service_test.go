package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrack-hq/timetrack-backend-go/internal/config"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/geo"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/validator"
	"github.com/timetrack-hq/timetrack-backend-go/internal/repository/memory"
)

func testGeofence(enforcement string) config.GeofenceConfig {
	return config.GeofenceConfig{
		Enforcement: enforcement,
		Fences: []geo.Fence{
			{Name: "Main Office", Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 100},
			{Name: "Satellite Office", Latitude: 37.3382, Longitude: -121.8863, RadiusMeters: 100},
		},
	}
}

func newTestService(enforcement string) (attendance.AttendanceService, *memory.AttendanceRepository) {
	repo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(repo, testGeofence(enforcement))
	return svc, repo
}

func officeClockIn(userID, timestamp string) attendance.ClockInRequest {
	return attendance.ClockInRequest{
		UserID:    userID,
		Latitude:  37.7749,
		Longitude: -122.4194,
		Accuracy:  10,
		Timestamp: timestamp,
	}
}

func TestClockInClockOut_FullDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	created, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T09:00:00Z"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, attendance.StatusClockedIn, created.Status)
	assert.Equal(t, "2023-04-10", created.Date)
	assert.Nil(t, created.TotalHours)
	assert.Nil(t, created.ClockOutTime)
	assert.Nil(t, created.Notes)

	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		RecordID:  created.ID,
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T17:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusClockedOut, closed.Status)
	require.NotNil(t, closed.TotalHours)
	assert.Equal(t, 8.5, *closed.TotalHours)
	require.NotNil(t, closed.ClockOutTime)
	assert.Equal(t, "2023-04-10T17:30:00Z", *closed.ClockOutTime)
	assert.Nil(t, closed.Notes)
}

func TestClockOut_RoundsToTwoDecimals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	created, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-11T08:55:00Z"))
	require.NoError(t, err)

	// 8h10m is 8.1666... hours, rounded to 8.17.
	closed, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		RecordID:  created.ID,
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-11T17:05:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, closed.TotalHours)
	assert.Equal(t, 8.17, *closed.TotalHours)
}

func TestClockIn_OutsideFence_SoftEnforcement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	// Sacramento, roughly 120km from both offices.
	created, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:    "3",
		Latitude:  38.5816,
		Longitude: -121.4944,
		Timestamp: "2023-04-10T09:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusClockedIn, created.Status)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "Location outside of allowed area", *created.Notes)
}

func TestClockIn_OutsideFence_HardEnforcement(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(config.GeofenceEnforcementHard)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:    "3",
		Latitude:  38.5816,
		Longitude: -121.4944,
		Timestamp: "2023-04-10T09:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)

	records, err := repo.QueryByDate(ctx, "2023-04-10")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClockIn_SecondClockInSameDayRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	_, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T09:00:00Z"))
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T13:00:00Z"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// After clocking out, the next day opens normally.
	_, err = svc.ClockIn(ctx, officeClockIn("2", "2023-04-11T09:00:00Z"))
	assert.NoError(t, err)
}

func TestClockOut_UnknownRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{
		RecordID:  "does-not-exist",
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T17:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestClockOut_OtherUsersRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	created, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T09:00:00Z"))
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		RecordID:  created.ID,
		UserID:    "3",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T17:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestClockOut_TwiceFailsAndLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(config.GeofenceEnforcementSoft)

	created, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T09:00:00Z"))
	require.NoError(t, err)

	req := attendance.ClockOutRequest{
		RecordID:  created.ID,
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T17:30:00Z",
	}
	_, err = svc.ClockOut(ctx, req)
	require.NoError(t, err)

	req.Timestamp = "2023-04-10T18:00:00Z"
	_, err = svc.ClockOut(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)

	// The stored record keeps the first clock-out.
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TotalHours)
	assert.Equal(t, 8.5, *stored.TotalHours)
	assert.Equal(t, time.Date(2023, 4, 10, 17, 30, 0, 0, time.UTC), stored.ClockOut.UTC())
}

func TestClockOut_TimestampBeforeClockInRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(config.GeofenceEnforcementSoft)

	created, err := svc.ClockIn(ctx, officeClockIn("2", "2023-04-10T09:00:00Z"))
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
		RecordID:  created.ID,
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T08:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeClockIn)

	// The record stays open and untouched.
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusClockedIn, stored.Status)
	assert.Nil(t, stored.ClockOut)
	assert.Nil(t, stored.TotalHours)
}

func TestClockIn_InvalidCoordinatesRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:    "2",
		Latitude:  123.0,
		Longitude: -122.4194,
		Timestamp: "2023-04-10T09:00:00Z",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestGetHistory_InclusiveRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	for _, day := range []string{"2023-04-10", "2023-04-11", "2023-04-12"} {
		created, err := svc.ClockIn(ctx, officeClockIn("2", day+"T09:00:00Z"))
		require.NoError(t, err)
		_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{
			RecordID:  created.ID,
			UserID:    "2",
			Latitude:  37.7749,
			Longitude: -122.4194,
			Timestamp: day + "T17:00:00Z",
		})
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, attendance.HistoryFilter{
		UserID:    "2",
		StartDate: "2023-04-10",
		EndDate:   "2023-04-11",
	})
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestGetCurrentStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(config.GeofenceEnforcementSoft)

	status, err := svc.GetCurrentStatus(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, status)

	// An open record created today shows up as the current status.
	created, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:    "2",
		Latitude:  37.7749,
		Longitude: -122.4194,
	})
	require.NoError(t, err)

	status, err = svc.GetCurrentStatus(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, created.ID, status.ID)
	assert.Equal(t, attendance.StatusClockedIn, status.Status)
}
