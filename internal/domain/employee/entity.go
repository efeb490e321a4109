package employee

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	Department   string
	Position     string
	ProfileImage *string
	PasswordHash *string
}

// FullName joins the first and last name for display and export rows.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
