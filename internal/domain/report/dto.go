package report

import (
	"fmt"
	"time"

	"github.com/timetrack-hq/timetrack-backend-go/internal/pkg/validator"
)

// TimeOfDay is a wall-clock threshold ("HH:MM") used by the lateness and
// early-departure counters.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" string such as "09:15".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// AddMinutes shifts the threshold forward, wrapping within the day. Used to
// derive the late-arrival cutoff from the scheduled start plus grace period.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	total := (t.Hour*60 + t.Minute + m) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// ========================================
// REPORT DTOs
// ========================================

type SummaryRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !validator.IsEmpty(r.StartDate) {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(r.EndDate) {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
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

// Summary aggregates a set of attendance records. It is recomputed on every
// query and never persisted.
type Summary struct {
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	LateArrivals       int     `json:"late_arrivals"`
	EarlyDepartures    int     `json:"early_departures"`
}

type DepartmentStats struct {
	Department              string  `json:"department"`
	TotalHours              float64 `json:"total_hours"`
	EmployeeCount           int     `json:"employee_count"`
	AverageHoursPerEmployee float64 `json:"average_hours_per_employee"`
}

type WeekdayStats struct {
	Day        string  `json:"day"`
	Count      int     `json:"count"`
	TotalHours float64 `json:"total_hours"`
}

type WeeklyAttendance struct {
	Week        string  `json:"week"`
	TotalHours  float64 `json:"total_hours"`
	DaysPresent int     `json:"days_present"`
}
