package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timetrack-hq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrack-hq/timetrack-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepository employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepository employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepository: employeeRepository,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepository.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.NewEmployeeResponse(e))
	}

	response.Success(w, result)
}

// GetByID implements EmployeeHandler.
func (h *employeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.employeeRepository.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponse(e))
}
