package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyAccountCtx     ContextKey = "myAccount"
	AccountCtx       ContextKey = "account"
	EmployeeCtx      ContextKey = "employee"
	ServiceCenterCtx ContextKey = "serviceCenter"
	ShiftCtx         ContextKey = "shift"
	WorkCenterCtx    ContextKey = "workCenter"
)
