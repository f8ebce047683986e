package domain

// Action names one guarded operation of the API.
type Action string

const (
	ActionManageAccounts    Action = "manage_accounts"
	ActionManageCenters     Action = "manage_centers"
	ActionManageShifts      Action = "manage_shifts"
	ActionManageSchedules   Action = "manage_schedules"
	ActionManageWorkCenters Action = "manage_work_centers"
	ActionReadSchedules     Action = "read_schedules"
	ActionReadWorkCenters   Action = "read_work_centers"
)

var capabilities = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionManageAccounts:    true,
		ActionManageCenters:     true,
		ActionManageShifts:      true,
		ActionManageSchedules:   true,
		ActionManageWorkCenters: true,
		ActionReadSchedules:     true,
		ActionReadWorkCenters:   true,
	},
	RoleStaff: {
		ActionReadSchedules:   true,
		ActionReadWorkCenters: true,
	},
	RoleTechnician: {
		ActionReadSchedules:   true,
		ActionReadWorkCenters: true,
	},
}

// Allowed is the single authorization check run at the entry of each
// operation. Admins mutate, staff and technicians only read.
func Allowed(role Role, action Action) bool {
	return capabilities[role][action]
}

// SelfScoped reports whether reads for this role must be restricted to
// the caller's own rows.
func SelfScoped(role Role) bool {
	return role == RoleStaff || role == RoleTechnician
}
