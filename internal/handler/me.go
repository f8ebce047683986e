package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	account := r.Context().Value(MyAccountCtx).(*domain.Account)

	info := struct {
		Account  *domain.Account  `json:"account"`
		Employee *domain.Employee `json:"employee"`
	}{Account: account}

	employee, err := h.repository.GetEmployeeByAccountID(account.ID)
	switch {
	case err == nil:
		info.Employee = employee
	case errors.Is(err, sql.ErrNoRows):
		// customer accounts have no employee profile
	default:
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "profile fetched", info)
}
