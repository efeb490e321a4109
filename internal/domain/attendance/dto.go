package attendance

import (
	"time"

	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp string  `json:"timestamp"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !validator.IsEmpty(r.Timestamp) {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedTimestamp returns the request timestamp, falling back to the current
// time when the client sent none. Call Validate first.
func (r *ClockInRequest) ParsedTimestamp() time.Time {
	if validator.IsEmpty(r.Timestamp) {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t.UTC()
}

type ClockOutRequest struct {
	RecordID  string  `json:"record_id"`
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp string  `json:"timestamp"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !validator.IsEmpty(r.Timestamp) {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedTimestamp returns the request timestamp, falling back to the current
// time when the client sent none. Call Validate first.
func (r *ClockOutRequest) ParsedTimestamp() time.Time {
	if validator.IsEmpty(r.Timestamp) {
		return time.Now().UTC()
	}
	t, _ := validator.IsValidDateTime(r.Timestamp)
	return t.UTC()
}

type HistoryFilter struct {
	UserID    string
	StartDate string
	EndDate   string
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsEmpty(f.StartDate) {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(f.EndDate) {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	Date              string   `json:"date"`
	ClockInTime       string   `json:"clock_in_time"`
	ClockOutTime      *string  `json:"clock_out_time"`
	ClockInLatitude   float64  `json:"clock_in_latitude"`
	ClockInLongitude  float64  `json:"clock_in_longitude"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude"`
	ClockOutLongitude *float64 `json:"clock_out_longitude"`
	TotalHours        *float64 `json:"total_hours"`
	Status            string   `json:"status"`
	Notes             *string  `json:"notes,omitempty"`
}

// NewAttendanceResponse maps an entity to its API representation.
func NewAttendanceResponse(record Attendance) AttendanceResponse {
	var clockOut *string
	if record.ClockOut != nil {
		formatted := record.ClockOut.UTC().Format(time.RFC3339)
		clockOut = &formatted
	}

	return AttendanceResponse{
		ID:                record.ID,
		UserID:            record.UserID,
		Date:              record.Date,
		ClockInTime:       record.ClockIn.UTC().Format(time.RFC3339),
		ClockOutTime:      clockOut,
		ClockInLatitude:   record.ClockInLatitude,
		ClockInLongitude:  record.ClockInLongitude,
		ClockOutLatitude:  record.ClockOutLatitude,
		ClockOutLongitude: record.ClockOutLongitude,
		TotalHours:        record.TotalHours,
		Status:            record.Status,
		Notes:             record.Notes,
	}
}
