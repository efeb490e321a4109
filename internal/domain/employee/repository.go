package employee

import "context"

// EmployeeRepository is the user directory consulted for identity, department
// resolution and login.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, used by login
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves the whole directory
	List(ctx context.Context) ([]Employee, error)
}
