package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/attendance"
)

// AttendanceRepository is the in-memory attendance store. The mutex guards the
// one-active-record-per-(user, date) invariant under concurrent requests;
// FindActiveByUser and Create run under the same lock via CreateActive.
type AttendanceRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Attendance),
	}
}

// Seed preloads records without touching timestamps, used by the demo fixtures.
func (r *AttendanceRepository) Seed(records []attendance.Attendance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if _, exists := r.records[record.ID]; exists {
			continue
		}
		r.order = append(r.order, record.ID)
		r.records[record.ID] = record
	}
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	} else if _, exists := r.records[record.ID]; exists {
		return attendance.Attendance{}, fmt.Errorf("attendance record %s already exists", record.ID)
	}

	// Reject a second open record for the same (user, date) even if the
	// caller skipped FindActiveByUser.
	if record.Status == attendance.StatusClockedIn {
		for _, id := range r.order {
			existing := r.records[id]
			if existing.UserID == record.UserID && existing.Date == record.Date && existing.Status == attendance.StatusClockedIn {
				return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
			}
		}
	}

	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.order = append(r.order, record.ID)
	r.records[record.ID] = record
	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

// FindActiveByUser implements attendance.AttendanceRepository.
func (r *AttendanceRepository) FindActiveByUser(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		record := r.records[id]
		if record.UserID == userID && record.Date == date && record.Status == attendance.StatusClockedIn {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

// Update implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}

	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now().UTC()
	r.records[record.ID] = record
	return nil
}

// QueryByUserAndRange implements attendance.AttendanceRepository.
func (r *AttendanceRepository) QueryByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, id := range r.order {
		record := r.records[id]
		if record.UserID != userID {
			continue
		}
		if startDate != "" && record.Date < startDate {
			continue
		}
		if endDate != "" && record.Date > endDate {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

// QueryByRange implements attendance.AttendanceRepository.
func (r *AttendanceRepository) QueryByRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, id := range r.order {
		record := r.records[id]
		if startDate != "" && record.Date < startDate {
			continue
		}
		if endDate != "" && record.Date > endDate {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

// QueryByDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) QueryByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, id := range r.order {
		record := r.records[id]
		if record.Date == date {
			result = append(result, record)
		}
	}
	return result, nil
}
