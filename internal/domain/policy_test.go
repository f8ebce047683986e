package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(RoleAdmin, ActionManageSchedules))
	assert.True(t, Allowed(RoleAdmin, ActionManageWorkCenters))

	assert.False(t, Allowed(RoleStaff, ActionManageSchedules))
	assert.True(t, Allowed(RoleStaff, ActionReadSchedules))

	assert.False(t, Allowed(RoleTechnician, ActionManageCenters))
	assert.True(t, Allowed(RoleTechnician, ActionReadWorkCenters))

	assert.False(t, Allowed(RoleCustomer, ActionReadSchedules))
}

func TestSelfScoped(t *testing.T) {
	assert.False(t, SelfScoped(RoleAdmin))
	assert.True(t, SelfScoped(RoleStaff))
	assert.True(t, SelfScoped(RoleTechnician))
}

func TestSchedulable(t *testing.T) {
	assert.True(t, RoleStaff.Schedulable())
	assert.True(t, RoleTechnician.Schedulable())
	assert.False(t, RoleAdmin.Schedulable())
	assert.False(t, RoleCustomer.Schedulable())
}
