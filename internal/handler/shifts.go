package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/scheduler"
)

// validateRecurrence checks a shift's recurrence trio after merging: a
// shift carries either all of start date, end date and repeat days, or
// none of them.
func validateRecurrence(shift *domain.Shift) error {
	if shift.StartDate == nil && shift.EndDate == nil && len(shift.RepeatDays) == 0 {
		return nil
	}
	if shift.StartDate == nil || shift.EndDate == nil || len(shift.RepeatDays) == 0 {
		return errors.New("startDate, endDate and repeatDays must be provided together")
	}
	_, err := scheduler.ExpandDates(*shift.StartDate, *shift.EndDate, shift.RepeatDays)
	return err
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	center := r.Context().Value(ServiceCenterCtx).(*domain.ServiceCenter)

	var req struct {
		Name        string  `json:"name" validate:"required"`
		StartTime   string  `json:"startTime" validate:"required"`
		EndTime     string  `json:"endTime" validate:"required"`
		StartDate   *string `json:"startDate"`
		EndDate     *string `json:"endDate"`
		RepeatDays  []int   `json:"repeatDays"`
		MaximumSlot int32   `json:"maximumSlot" validate:"required,min=1"`
		Status      string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := scheduler.ValidateShiftWindow(req.StartTime, req.EndTime); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shift := &domain.Shift{
		CenterID:    center.ID,
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		RepeatDays:  req.RepeatDays,
		MaximumSlot: req.MaximumSlot,
		Status:      domain.ShiftStatusActive,
	}
	if req.Status != "" {
		shift.Status = domain.ShiftStatus(req.Status)
	}

	if err := validateRecurrence(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_center_id_name_key":
				h.errorResponse(w, r, "a shift with this name already exists in this service center")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

func (h *Handler) GetShiftsForCenter(w http.ResponseWriter, r *http.Request) {
	center := r.Context().Value(ServiceCenterCtx).(*domain.ServiceCenter)

	shifts, err := h.repository.GetShiftsByCenter(center.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts fetched", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	h.successResponse(w, r, "shift fetched", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		CenterID    *uuid.UUID `json:"centerId"`
		Name        *string    `json:"name"`
		StartTime   *string    `json:"startTime"`
		EndTime     *string    `json:"endTime"`
		StartDate   *string    `json:"startDate"`
		EndDate     *string    `json:"endDate"`
		RepeatDays  []int      `json:"repeatDays"`
		MaximumSlot *int32     `json:"maximumSlot" validate:"omitempty,min=1"`
		Status      *string    `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.CenterID != nil && *req.CenterID != shift.CenterID {
		if _, err := h.repository.GetServiceCenterByID(*req.CenterID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "service center does not exist")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		// name uniqueness within the new center is enforced by the
		// shifts_center_id_name_key constraint on the update below
		shift.CenterID = *req.CenterID
	}
	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.StartDate != nil {
		shift.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		shift.EndDate = req.EndDate
	}
	if req.RepeatDays != nil {
		if len(req.RepeatDays) == 0 {
			// an explicit empty list clears the recurrence pattern
			shift.StartDate = nil
			shift.EndDate = nil
			shift.RepeatDays = nil
		} else {
			shift.RepeatDays = req.RepeatDays
		}
	}
	if req.MaximumSlot != nil {
		shift.MaximumSlot = *req.MaximumSlot
	}
	if req.Status != nil {
		shift.Status = domain.ShiftStatus(*req.Status)
	}

	if err := scheduler.ValidateShiftWindow(shift.StartTime, shift.EndTime); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := validateRecurrence(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_center_id_name_key":
				h.errorResponse(w, r, "a shift with this name already exists in this service center")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift updated", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}
