package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/repository"
	"github.com/carserv-vn/service-center/backend/internal/scheduler"
	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

// validateAssignmentRange checks a work-center date range after
// merging. A nil end date means the assignment is open-ended.
func validateAssignmentRange(startDate string, endDate *string) error {
	if _, err := timezone.ParseDate(startDate); err != nil {
		return errors.New("startDate must be a valid YYYY-MM-DD date")
	}
	if endDate != nil {
		if _, err := timezone.ParseDate(*endDate); err != nil {
			return errors.New("endDate must be a valid YYYY-MM-DD date")
		}
		if *endDate < startDate {
			return errors.New("endDate must not be before startDate")
		}
	}
	return nil
}

func (h *Handler) CreateWorkCenter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID uuid.UUID `json:"employeeId" validate:"required"`
		CenterID   uuid.UUID `json:"centerId" validate:"required"`
		StartDate  string    `json:"startDate" validate:"required"`
		EndDate    *string   `json:"endDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := validateAssignmentRange(req.StartDate, req.EndDate); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "employee does not exist")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !employee.Role.Schedulable() {
		h.errorResponse(w, r, "only staff and technicians can be assigned to a service center")
		return
	}

	center, err := h.repository.GetServiceCenterByID(req.CenterID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "service center does not exist")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if center.Status != domain.CenterStatusOpen {
		h.errorResponse(w, r, "service center is closed")
		return
	}

	assignment := &domain.WorkCenter{
		EmployeeID: req.EmployeeID,
		CenterID:   req.CenterID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	if err := h.repository.CreateWorkCenter(assignment); err != nil {
		h.workCenterWriteError(w, r, err)
		return
	}

	h.successResponse(w, r, "work-center assignment created", assignment)
}

func (h *Handler) UpdateWorkCenter(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(WorkCenterCtx).(*domain.WorkCenter)

	var req struct {
		EmployeeID *uuid.UUID `json:"employeeId"`
		CenterID   *uuid.UUID `json:"centerId"`
		StartDate  *string    `json:"startDate"`
		EndDate    *string    `json:"endDate"`
		OpenEnded  *bool      `json:"openEnded"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EmployeeID != nil && *req.EmployeeID != assignment.EmployeeID {
		employee, err := h.repository.GetEmployeeByID(*req.EmployeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "employee does not exist")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if !employee.Role.Schedulable() {
			h.errorResponse(w, r, "only staff and technicians can be assigned to a service center")
			return
		}
		assignment.EmployeeID = *req.EmployeeID
		assignment.Employee = employee
	}
	if req.CenterID != nil && *req.CenterID != assignment.CenterID {
		center, err := h.repository.GetServiceCenterByID(*req.CenterID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "service center does not exist")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if center.Status != domain.CenterStatusOpen {
			h.errorResponse(w, r, "service center is closed")
			return
		}
		assignment.CenterID = *req.CenterID
		assignment.Center = center
	}
	if req.StartDate != nil {
		assignment.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		assignment.EndDate = req.EndDate
	}
	if req.OpenEnded != nil && *req.OpenEnded {
		assignment.EndDate = nil
	}

	if err := validateAssignmentRange(assignment.StartDate, assignment.EndDate); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateWorkCenter(assignment); err != nil {
		h.workCenterWriteError(w, r, err)
		return
	}

	h.successResponse(w, r, "work-center assignment updated", assignment)
}

// resolveEndDate decides the end date a logical delete writes. An
// assignment whose end date is on or before today has already ended;
// one that has not started yet ends on its own start date.
func resolveEndDate(startDate string, endDate *string, today string) (string, error) {
	if endDate != nil && *endDate <= today {
		return "", errors.New("work-center assignment has already ended")
	}
	if today < startDate {
		return startDate, nil
	}
	return today, nil
}

func (h *Handler) EndWorkCenter(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(WorkCenterCtx).(*domain.WorkCenter)

	endDate, err := resolveEndDate(assignment.StartDate, assignment.EndDate, timezone.Today())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.EndWorkCenter(assignment, endDate); err != nil {
		h.workCenterWriteError(w, r, err)
		return
	}

	h.successResponse(w, r, "work-center assignment ended", assignment)
}

func (h *Handler) workCenterWriteError(w http.ResponseWriter, r *http.Request, err error) {
	var overlapErr *scheduler.OverlapError
	switch {
	case errors.As(err, &overlapErr):
		h.errorResponse(w, r, overlapErr.Error())
	case repository.IsSerializationFailure(err):
		h.errorResponse(w, r, "another assignment request was in flight, please retry")
	case errors.Is(err, sql.ErrNoRows):
		h.errorResponse(w, r, "please retry")
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) ListWorkCenters(w http.ResponseWriter, r *http.Request) {
	var filter repository.WorkCenterFilter

	query := r.URL.Query()
	if raw := query.Get("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid employee id")
			return
		}
		filter.EmployeeID = &id
	}
	if raw := query.Get("centerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid service center id")
			return
		}
		filter.CenterID = &id
	}
	if activeOn := query.Get("activeOn"); activeOn != "" {
		if _, err := timezone.ParseDate(activeOn); err != nil {
			h.errorResponse(w, r, "activeOn must be a valid YYYY-MM-DD date")
			return
		}
		filter.ActiveOn = &activeOn
	}

	role := h.callerRole(r)
	if domain.SelfScoped(role) {
		accountID, err := h.callerAccountID(r)
		if err != nil {
			h.errorResponse(w, r, "invalid account id")
			return
		}
		employee, err := h.repository.GetEmployeeByAccountID(accountID)
		if err != nil {
			h.errorResponse(w, r, "employee profile does not exist")
			return
		}
		filter.EmployeeID = &employee.ID
	}

	assignments, err := h.repository.ListWorkCenters(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "work-center assignments fetched", assignments)
}
