package fixtures

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }
func timePtr(t time.Time) *time.Time { return &t }

// DemoPassword is the password every seeded account accepts. Real credential
// management is out of scope for the demo deployment.
const DemoPassword = "password123"

func demoPasswordHash() *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash demo password:", err)
	}
	return strPtr(string(hash))
}

// ==========================================
// DEMO DIRECTORY
// ==========================================

// DemoEmployees returns the seeded user directory.
func DemoEmployees() []employee.Employee {
	hash := demoPasswordHash()

	return []employee.Employee{
		{
			ID:           "1",
			Email:        "admin@example.com",
			FirstName:    "Admin",
			LastName:     "User",
			Role:         employee.RoleAdmin,
			Department:   "Management",
			Position:     "HR Director",
			ProfileImage: strPtr("https://i.pravatar.cc/150?img=1"),
			PasswordHash: hash,
		},
		{
			ID:           "2",
			Email:        "employee@example.com",
			FirstName:    "John",
			LastName:     "Doe",
			Role:         employee.RoleEmployee,
			Department:   "Engineering",
			Position:     "Software Developer",
			ProfileImage: strPtr("https://i.pravatar.cc/150?img=2"),
			PasswordHash: hash,
		},
		{
			ID:           "3",
			Email:        "jane@example.com",
			FirstName:    "Jane",
			LastName:     "Smith",
			Role:         employee.RoleEmployee,
			Department:   "Marketing",
			Position:     "Marketing Specialist",
			ProfileImage: strPtr("https://i.pravatar.cc/150?img=3"),
			PasswordHash: hash,
		},
		{
			ID:           "4",
			Email:        "robert@example.com",
			FirstName:    "Robert",
			LastName:     "Johnson",
			Role:         employee.RoleEmployee,
			Department:   "Sales",
			Position:     "Sales Representative",
			ProfileImage: strPtr("https://i.pravatar.cc/150?img=4"),
			PasswordHash: hash,
		},
		{
			ID:           "5",
			Email:        "emily@example.com",
			FirstName:    "Emily",
			LastName:     "Williams",
			Role:         employee.RoleEmployee,
			Department:   "Customer Support",
			Position:     "Support Specialist",
			ProfileImage: strPtr("https://i.pravatar.cc/150?img=5"),
			PasswordHash: hash,
		},
	}
}

// ==========================================
// DEMO ATTENDANCE RECORDS
// ==========================================

// DemoAttendanceRecords returns a few closed records so the dashboard and
// reports have data on a fresh start.
func DemoAttendanceRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{
			ID:                "1",
			UserID:            "2",
			Date:              "2023-04-10",
			ClockIn:           time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:          timePtr(time.Date(2023, 4, 10, 17, 30, 0, 0, time.UTC)),
			ClockInLatitude:   37.7749,
			ClockInLongitude:  -122.4194,
			ClockOutLatitude:  float64Ptr(37.7749),
			ClockOutLongitude: float64Ptr(-122.4194),
			TotalHours:        float64Ptr(8.5),
			Status:            attendance.StatusClockedOut,
		},
		{
			ID:                "2",
			UserID:            "2",
			Date:              "2023-04-11",
			ClockIn:           time.Date(2023, 4, 11, 8, 55, 0, 0, time.UTC),
			ClockOut:          timePtr(time.Date(2023, 4, 11, 17, 5, 0, 0, time.UTC)),
			ClockInLatitude:   37.7749,
			ClockInLongitude:  -122.4194,
			ClockOutLatitude:  float64Ptr(37.7749),
			ClockOutLongitude: float64Ptr(-122.4194),
			TotalHours:        float64Ptr(8.17),
			Status:            attendance.StatusClockedOut,
		},
		{
			ID:                "3",
			UserID:            "3",
			Date:              "2023-04-11",
			ClockIn:           time.Date(2023, 4, 11, 9, 15, 0, 0, time.UTC),
			ClockOut:          timePtr(time.Date(2023, 4, 11, 18, 0, 0, 0, time.UTC)),
			ClockInLatitude:   37.7749,
			ClockInLongitude:  -122.4194,
			ClockOutLatitude:  float64Ptr(37.7749),
			ClockOutLongitude: float64Ptr(-122.4194),
			TotalHours:        float64Ptr(8.75),
			Status:            attendance.StatusClockedOut,
		},
	}
}
