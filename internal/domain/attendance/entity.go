package attendance

import (
	"time"
)

// Attendance statuses. Break and Pending exist in the status vocabulary but no
// transition in the clock service reaches them yet.
const (
	StatusClockedIn  = "clocked_in"
	StatusClockedOut = "clocked_out"
	StatusBreak      = "break"
	StatusPending    = "pending"
)

type Attendance struct {
	ID     string
	UserID string

	// Date is the work day ("2006-01-02") the record belongs to. It is fixed
	// from the clock-in timestamp at creation and never recomputed.
	Date string

	ClockIn  time.Time
	ClockOut *time.Time

	ClockInLatitude   float64
	ClockInLongitude  float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64

	// TotalHours is set exactly once, together with the clocked_out transition.
	TotalHours *float64

	Status string
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
