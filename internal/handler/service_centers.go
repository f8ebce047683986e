package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (h *Handler) CreateServiceCenter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
		Status  string `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	center := &domain.ServiceCenter{
		Name:    req.Name,
		Address: req.Address,
		Status:  domain.CenterStatusOpen,
	}
	if req.Status != "" {
		center.Status = domain.CenterStatus(req.Status)
	}

	if err := h.repository.CreateServiceCenter(center); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "service_centers_name_key":
				h.errorResponse(w, r, "a service center with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "service center created", center)
}

func (h *Handler) GetAllServiceCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.repository.GetAllServiceCenters()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service centers fetched", centers)
}

func (h *Handler) GetServiceCenter(w http.ResponseWriter, r *http.Request) {
	center := r.Context().Value(ServiceCenterCtx).(*domain.ServiceCenter)

	h.successResponse(w, r, "service center fetched", center)
}

func (h *Handler) UpdateServiceCenter(w http.ResponseWriter, r *http.Request) {
	center := r.Context().Value(ServiceCenterCtx).(*domain.ServiceCenter)

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Status  *string `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		center.Name = *req.Name
	}
	if req.Address != nil {
		center.Address = *req.Address
	}
	if req.Status != nil {
		center.Status = domain.CenterStatus(*req.Status)
	}

	if err := h.repository.UpdateServiceCenter(center); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "service_centers_name_key":
				h.errorResponse(w, r, "a service center with this name already exists")
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

	h.successResponse(w, r, "service center updated", center)
}

func (h *Handler) DeleteServiceCenter(w http.ResponseWriter, r *http.Request) {
	center := r.Context().Value(ServiceCenterCtx).(*domain.ServiceCenter)

	if err := h.repository.DeleteServiceCenter(center.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "service center deleted", nil)
}
