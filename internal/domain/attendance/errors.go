package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn     = errors.New("you have already clocked in today")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed area")

	// Clock-out errors
	ErrNotClockedIn          = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut     = errors.New("attendance record is already clocked out")
	ErrClockOutBeforeClockIn = errors.New("clock-out time is earlier than clock-in time")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
