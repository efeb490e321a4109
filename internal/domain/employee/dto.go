package employee

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         Role    `json:"role"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// NewEmployeeResponse maps an entity to its API representation. The password
// hash never leaves the repository layer.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Email:        e.Email,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Role:         e.Role,
		Department:   e.Department,
		Position:     e.Position,
		ProfileImage: e.ProfileImage,
	}
}
