package handler

import (
	"net/http"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	var role *domain.Role
	if param := r.URL.Query().Get("role"); param != "" {
		roleParam := domain.Role(param)
		if roleParam != domain.RoleAdmin && !roleParam.Schedulable() {
			h.errorResponse(w, r, "invalid role filter")
			return
		}
		role = &roleParam
	}

	employees, err := h.repository.GetAllEmployees(role)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	h.successResponse(w, r, "employee fetched", employee)
}
