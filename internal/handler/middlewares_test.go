package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func doGuardedRequest(t *testing.T, role domain.Role, action domain.Action) (Response, bool) {
	t.Helper()

	h := &Handler{}
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		h.successResponse(w, r, "ok", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), RoleCtxKey, string(role)))
	rec := httptest.NewRecorder()

	h.RequiredAction(action)(next).ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp, reached
}

func TestRequiredAction(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		action  domain.Action
		allowed bool
	}{
		{name: "admin mutates schedules", role: domain.RoleAdmin, action: domain.ActionManageSchedules, allowed: true},
		{name: "admin manages work centers", role: domain.RoleAdmin, action: domain.ActionManageWorkCenters, allowed: true},
		{name: "staff reads schedules", role: domain.RoleStaff, action: domain.ActionReadSchedules, allowed: true},
		{name: "staff cannot mutate schedules", role: domain.RoleStaff, action: domain.ActionManageSchedules, allowed: false},
		{name: "technician reads work centers", role: domain.RoleTechnician, action: domain.ActionReadWorkCenters, allowed: true},
		{name: "technician cannot manage centers", role: domain.RoleTechnician, action: domain.ActionManageCenters, allowed: false},
		{name: "customer cannot read schedules", role: domain.RoleCustomer, action: domain.ActionReadSchedules, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, reached := doGuardedRequest(t, tt.role, tt.action)
			assert.Equal(t, tt.allowed, reached)
			assert.Equal(t, tt.allowed, resp.Success)
			if !tt.allowed {
				assert.Equal(t, "permission denied", resp.Message)
			}
		})
	}
}
