package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/timetrack-hq/timetrack-backend-go/internal/config"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/geo"
	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/validator"
)

// outsideFenceNote is written into a record created by a clock-in whose
// location missed every configured fence under soft enforcement.
const outsideFenceNote = "Location outside of allowed area"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	geofence config.GeofenceConfig
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, geofence config.GeofenceConfig) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		geofence:             geofence,
	}
}

// roundHours fixes a duration in hours to two decimal places.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockInTime := req.ParsedTimestamp()
	// Date adalah representasi "Hari Kerja", bukan timestamp.
	date := clockInTime.Format("2006-01-02")

	active, err := a.AttendanceRepository.FindActiveByUser(ctx, req.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check for an open attendance record: %w", err)
	}
	if active != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	var notes *string
	if !geo.WithinAny(req.Latitude, req.Longitude, a.geofence.Fences) {
		if a.geofence.Enforcement == config.GeofenceEnforcementHard {
			return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
		}
		// Soft enforcement: annotate instead of blocking, so a GPS glitch
		// never locks an employee out.
		note := outsideFenceNote
		notes = &note
	}

	data := attendance.Attendance{
		UserID:           req.UserID,
		Date:             date,
		ClockIn:          clockInTime,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Status:           attendance.StatusClockedIn,
		Notes:            notes,
	}

	record, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewAttendanceResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Ownership is part of the record identity: someone else's record looks
	// the same as a missing one.
	if record.UserID != req.UserID {
		return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
	}

	if record.Status != attendance.StatusClockedIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	clockOutTime := req.ParsedTimestamp()
	if clockOutTime.Before(record.ClockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeClockIn
	}

	totalHours := roundHours(clockOutTime.Sub(record.ClockIn))

	record.ClockOut = &clockOutTime
	record.ClockOutLatitude = &req.Latitude
	record.ClockOutLongitude = &req.Longitude
	record.TotalHours = &totalHours
	record.Status = attendance.StatusClockedOut

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.NewAttendanceResponse(record), nil
}

// GetCurrentStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCurrentStatus(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	today := time.Now().UTC().Format("2006-01-02")

	active, err := a.AttendanceRepository.FindActiveByUser(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find active attendance record: %w", err)
	}
	if active == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*active)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.QueryByUserAndRange(ctx, filter.UserID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return toResponses(records), nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	if date == "" {
		records, err := a.AttendanceRepository.QueryByRange(ctx, "", "")
		if err != nil {
			return nil, fmt.Errorf("failed to query attendance records: %w", err)
		}
		return toResponses(records), nil
	}

	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	records, err := a.AttendanceRepository.QueryByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return toResponses(records), nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, attendance.NewAttendanceResponse(record))
	}
	return result
}
