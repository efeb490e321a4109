package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
)

// EmployeeRepository is the in-memory user directory, seeded once at startup.
type EmployeeRepository struct {
	mu        sync.RWMutex
	order     []string
	employees map[string]employee.Employee
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	r := &EmployeeRepository{
		employees: make(map[string]employee.Employee),
	}
	for _, e := range seed {
		if _, exists := r.employees[e.ID]; exists {
			continue
		}
		r.order = append(r.order, e.ID)
		r.employees[e.ID] = e
	}
	return r
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		e := r.employees[id]
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.employees[id])
	}
	return result, nil
}
