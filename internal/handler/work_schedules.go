package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/repository"
	"github.com/carserv-vn/service-center/backend/internal/scheduler"
	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

// loadSchedulableEmployees fetches the requested employees and rejects
// ids that do not exist or belong to roles that cannot be scheduled.
func (h *Handler) loadSchedulableEmployees(ids []uuid.UUID) (map[uuid.UUID]*domain.Employee, error) {
	employees, err := h.repository.GetEmployeesByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}
	for _, id := range ids {
		employee, ok := byID[id]
		if !ok {
			return nil, errors.New("one or more employees do not exist")
		}
		if !employee.Role.Schedulable() {
			return nil, errors.New("only staff and technicians can be scheduled")
		}
	}

	return byID, nil
}

// schedulableShift rejects scheduling against inactive shifts or closed
// service centers.
func (h *Handler) schedulableShift(shift *domain.Shift) error {
	if shift.Status != domain.ShiftStatusActive {
		return errors.New("shift is not active")
	}

	center, err := h.repository.GetServiceCenterByID(shift.CenterID)
	if err != nil {
		return err
	}
	if center.Status != domain.CenterStatusOpen {
		return errors.New("service center is closed")
	}

	return nil
}

func duplicateError(duplicates []scheduler.EntryKey, employees map[uuid.UUID]*domain.Employee) *scheduler.DuplicateError {
	entries := make([]scheduler.DuplicateEntry, 0, len(duplicates))
	for _, key := range duplicates {
		name := key.EmployeeID.String()
		if employee, ok := employees[key.EmployeeID]; ok {
			name = employee.FullName()
		}
		entries = append(entries, scheduler.DuplicateEntry{EmployeeName: name, Date: key.Date})
	}
	return &scheduler.DuplicateError{Entries: entries}
}

func (h *Handler) CreateWorkSchedules(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		EmployeeIDs []uuid.UUID `json:"employeeIds" validate:"required,min=1,unique"`
		Date        string      `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := timezone.ParseDate(req.Date); err != nil {
		h.errorResponse(w, r, "date must be a valid YYYY-MM-DD date")
		return
	}

	if err := h.schedulableShift(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	employees, err := h.loadSchedulableEmployees(req.EmployeeIDs)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	existing, err := h.repository.GetWorkSchedulesByShiftAndDates(shift.ID, []string{req.Date})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := scheduler.CheckCapacity(req.Date, shift.MaximumSlot, len(existing), len(req.EmployeeIDs)); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if duplicates := scheduler.FindDuplicates(existing, req.EmployeeIDs, []string{req.Date}); len(duplicates) > 0 {
		h.errorResponse(w, r, duplicateError(duplicates, employees).Error())
		return
	}

	created, err := h.repository.CreateWorkSchedules(shift, req.EmployeeIDs, []string{req.Date})
	if err != nil {
		h.scheduleWriteError(w, r, err)
		return
	}

	entries := make([]*domain.WorkSchedule, 0, len(created))
	for _, entry := range created {
		joined, err := h.repository.GetWorkScheduleByID(entry.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		entries = append(entries, joined)
	}

	h.successResponse(w, r, "work schedules created", entries)
}

func (h *Handler) ExpandRecurringSchedules(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		EmployeeIDs []uuid.UUID `json:"employeeIds" validate:"required,min=1,unique"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !shift.Recurring() {
		h.errorResponse(w, r, "shift has no recurrence pattern")
		return
	}
	if err := h.schedulableShift(shift); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	employees, err := h.loadSchedulableEmployees(req.EmployeeIDs)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	dates, err := scheduler.ExpandDates(*shift.StartDate, *shift.EndDate, shift.RepeatDays)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if len(dates) == 0 {
		h.errorResponse(w, r, scheduler.ErrNoValidDates.Error())
		return
	}

	existing, err := h.repository.GetWorkSchedulesByShiftAndDates(shift.ID, dates)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// a capacity violation on any expanded date aborts the whole batch
	countByDate := make(map[string]int, len(dates))
	for _, entry := range existing {
		countByDate[entry.Date]++
	}
	for _, date := range dates {
		if err := scheduler.CheckCapacity(date, shift.MaximumSlot, countByDate[date], len(req.EmployeeIDs)); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}

	if duplicates := scheduler.FindDuplicates(existing, req.EmployeeIDs, dates); len(duplicates) > 0 {
		h.errorResponse(w, r, duplicateError(duplicates, employees).Error())
		return
	}

	entries, err := h.repository.CreateWorkSchedules(shift, req.EmployeeIDs, dates)
	if err != nil {
		h.scheduleWriteError(w, r, err)
		return
	}

	h.successResponse(w, r, "work schedules created", entries)
}

func (h *Handler) ReplaceSchedulesForDate(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		EmployeeIDs []uuid.UUID `json:"employeeIds" validate:"omitempty,unique"`
		Date        string      `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := timezone.ParseDate(req.Date); err != nil {
		h.errorResponse(w, r, "date must be a valid YYYY-MM-DD date")
		return
	}

	current, err := h.repository.GetWorkSchedulesByShiftAndDates(shift.ID, []string{req.Date})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	currentIDs := make([]uuid.UUID, 0, len(current))
	for _, entry := range current {
		currentIDs = append(currentIDs, entry.EmployeeID)
	}

	toAdd, toRemove := scheduler.DiffAssignees(currentIDs, req.EmployeeIDs)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		h.successResponse(w, r, "no changes", current)
		return
	}

	if len(toAdd) > 0 {
		if err := h.schedulableShift(shift); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		if _, err := h.loadSchedulableEmployees(toAdd); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}

	if err := h.repository.ReplaceWorkSchedules(shift, req.Date, toAdd, toRemove); err != nil {
		h.scheduleWriteError(w, r, err)
		return
	}

	entries, err := h.repository.ListWorkSchedules(repository.WorkScheduleFilter{
		ShiftID: &shift.ID,
		Dates:   []string{req.Date},
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "work schedules replaced", entries)
}

func (h *Handler) scheduleWriteError(w http.ResponseWriter, r *http.Request, err error) {
	var capacityErr *scheduler.CapacityError
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &capacityErr):
		h.errorResponse(w, r, capacityErr.Error())
	case errors.As(err, &pgErr) && pgErr.ConstraintName == "work_schedules_employee_shift_date_key":
		h.errorResponse(w, r, "one or more employees are already scheduled on this shift and date")
	case repository.IsSerializationFailure(err):
		h.errorResponse(w, r, "another scheduling request was in flight, please retry")
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) GetShiftSchedules(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	filter := repository.WorkScheduleFilter{ShiftID: &shift.ID}
	if from := r.URL.Query().Get("from"); from != "" {
		if _, err := timezone.ParseDate(from); err != nil {
			h.errorResponse(w, r, "from must be a valid YYYY-MM-DD date")
			return
		}
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if _, err := timezone.ParseDate(to); err != nil {
			h.errorResponse(w, r, "to must be a valid YYYY-MM-DD date")
			return
		}
		filter.To = &to
	}

	if err := h.scopeScheduleFilter(r, &filter); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	entries, err := h.repository.ListWorkSchedules(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "work schedules fetched", entries)
}

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	var filter repository.WorkScheduleFilter

	query := r.URL.Query()
	if raw := query.Get("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid employee id")
			return
		}
		filter.EmployeeID = &id
	}
	if raw := query.Get("shiftId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid shift id")
			return
		}
		filter.ShiftID = &id
	}
	if raw := query.Get("centerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, r, "invalid service center id")
			return
		}
		filter.CenterID = &id
	}
	if from := query.Get("from"); from != "" {
		if _, err := timezone.ParseDate(from); err != nil {
			h.errorResponse(w, r, "from must be a valid YYYY-MM-DD date")
			return
		}
		filter.From = &from
	}
	if to := query.Get("to"); to != "" {
		if _, err := timezone.ParseDate(to); err != nil {
			h.errorResponse(w, r, "to must be a valid YYYY-MM-DD date")
			return
		}
		filter.To = &to
	}

	if err := h.scopeScheduleFilter(r, &filter); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	entries, err := h.repository.ListWorkSchedules(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "work schedules fetched", entries)
}

// scopeScheduleFilter pins self-scoped roles to their own rows no
// matter what employee filter the query carried. Staff may widen the
// scope to a whole center, but only one they are assigned to.
func (h *Handler) scopeScheduleFilter(r *http.Request, filter *repository.WorkScheduleFilter) error {
	role := h.callerRole(r)
	if !domain.SelfScoped(role) {
		return nil
	}

	accountID, err := h.callerAccountID(r)
	if err != nil {
		return errors.New("invalid account id")
	}
	employee, err := h.repository.GetEmployeeByAccountID(accountID)
	if err != nil {
		return errors.New("employee profile does not exist")
	}

	if role == domain.RoleStaff && filter.CenterID != nil {
		assignments, err := h.repository.ListWorkCenters(repository.WorkCenterFilter{
			EmployeeID: &employee.ID,
			CenterID:   filter.CenterID,
		})
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			return errors.New("you are not assigned to this service center")
		}
		// assigned staff may read the whole center's schedules
		return nil
	}

	filter.EmployeeID = &employee.ID
	return nil
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.errorResponse(w, r, "invalid work schedule id")
		return
	}

	if err := h.repository.DeleteWorkSchedule(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "work schedule does not exist")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "work schedule deleted", nil)
}
