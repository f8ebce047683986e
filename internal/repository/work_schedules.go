package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/scheduler"
)

func (r *Repository) countForShiftDate(ctx context.Context, q queryer, shiftID uuid.UUID, date string) (int, error) {
	query := `SELECT count(*) FROM work_schedules WHERE shift_id = $1 AND date = $2`

	var count int
	if err := q.QueryRowContext(ctx, query, shiftID, date).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) getByShiftAndDates(ctx context.Context, q queryer, shiftID uuid.UUID, dates []string) ([]*domain.WorkSchedule, error) {
	query, args, err := builder.
		Select("id", "employee_id", "shift_id", "date", "created_at").
		From("work_schedules").
		Where(sq.Eq{"shift_id": shiftID, "date": dates}).
		OrderBy("date", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.WorkSchedule, 0)
	for rows.Next() {
		entry := &domain.WorkSchedule{}
		var date time.Time
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.ShiftID, &date, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Date = dateString(date)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetWorkSchedulesByShiftAndDates returns the bare entries of one shift
// on the given dates, for capacity counting and duplicate detection.
func (r *Repository) GetWorkSchedulesByShiftAndDates(shiftID uuid.UUID, dates []string) ([]*domain.WorkSchedule, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	return r.getByShiftAndDates(ctx, r.dbpool, shiftID, dates)
}

// CreateWorkSchedules inserts one entry per (employee, date) pair in a
// single serializable transaction. Capacity is re-counted per date
// inside the transaction and a violation on any date aborts the whole
// batch; exact duplicates abort via the unique constraint.
func (r *Repository) CreateWorkSchedules(shift *domain.Shift, employeeIDs []uuid.UUID, dates []string) ([]*domain.WorkSchedule, error) {
	ctx, cancel := r.txContext()
	defer cancel()

	entries := make([]*domain.WorkSchedule, 0, len(employeeIDs)*len(dates))

	err := r.serializableTx(ctx, func(tx *sql.Tx) error {
		for _, date := range dates {
			count, err := r.countForShiftDate(ctx, tx, shift.ID, date)
			if err != nil {
				return err
			}
			if err := scheduler.CheckCapacity(date, shift.MaximumSlot, count, len(employeeIDs)); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO work_schedules (employee_id, shift_id, date)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`
		for _, date := range dates {
			for _, employeeID := range employeeIDs {
				entry := &domain.WorkSchedule{
					EmployeeID: employeeID,
					ShiftID:    shift.ID,
					Date:       date,
				}
				if err := tx.QueryRowContext(ctx, query, employeeID, shift.ID, date).Scan(&entry.ID, &entry.CreatedAt); err != nil {
					return err
				}
				entries = append(entries, entry)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ReplaceWorkSchedules applies a diff for one (shift, date): removals
// and additions run in the same serializable transaction, and capacity
// is validated against the resulting total only.
func (r *Repository) ReplaceWorkSchedules(shift *domain.Shift, date string, toAdd, toRemove []uuid.UUID) error {
	ctx, cancel := r.txContext()
	defer cancel()

	return r.serializableTx(ctx, func(tx *sql.Tx) error {
		if len(toRemove) > 0 {
			query, args, err := builder.
				Delete("work_schedules").
				Where(sq.Eq{"shift_id": shift.ID, "date": date, "employee_id": toRemove}).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}

		count, err := r.countForShiftDate(ctx, tx, shift.ID, date)
		if err != nil {
			return err
		}
		if err := scheduler.CheckCapacity(date, shift.MaximumSlot, count, len(toAdd)); err != nil {
			return err
		}

		query := `INSERT INTO work_schedules (employee_id, shift_id, date) VALUES ($1, $2, $3)`
		for _, employeeID := range toAdd {
			if _, err := tx.ExecContext(ctx, query, employeeID, shift.ID, date); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) DeleteWorkSchedule(id uuid.UUID) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, `DELETE FROM work_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type WorkScheduleFilter struct {
	EmployeeID *uuid.UUID
	ShiftID    *uuid.UUID
	CenterID   *uuid.UUID
	From       *string
	To         *string
	Dates      []string
}

const workScheduleColumns = `
	ws.id, ws.employee_id, ws.shift_id, ws.date, ws.created_at,
	e.account_id, e.first_name, e.last_name, e.phone, a.role,
	s.center_id, s.name, s.start_time, s.end_time, s.maximum_slot, s.status,
	c.name, c.address, c.status
`

// ListWorkSchedules returns entries with joined employee, shift and
// center details for presentation.
func (r *Repository) ListWorkSchedules(filter WorkScheduleFilter) ([]*domain.WorkSchedule, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	q := builder.
		Select(workScheduleColumns).
		From("work_schedules ws").
		Join("employees e ON e.id = ws.employee_id").
		Join("accounts a ON a.id = e.account_id").
		Join("shifts s ON s.id = ws.shift_id").
		Join("service_centers c ON c.id = s.center_id").
		OrderBy("ws.date", "s.name", "e.last_name")

	if filter.EmployeeID != nil {
		q = q.Where(sq.Eq{"ws.employee_id": *filter.EmployeeID})
	}
	if filter.ShiftID != nil {
		q = q.Where(sq.Eq{"ws.shift_id": *filter.ShiftID})
	}
	if filter.CenterID != nil {
		q = q.Where(sq.Eq{"s.center_id": *filter.CenterID})
	}
	if filter.From != nil {
		q = q.Where(sq.GtOrEq{"ws.date": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(sq.LtOrEq{"ws.date": *filter.To})
	}
	if len(filter.Dates) > 0 {
		q = q.Where(sq.Eq{"ws.date": filter.Dates})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.WorkSchedule, 0)
	for rows.Next() {
		entry := &domain.WorkSchedule{
			Employee: &domain.Employee{},
			Shift:    &domain.Shift{},
			Center:   &domain.ServiceCenter{},
		}
		var date time.Time

		dst := []any{
			&entry.ID, &entry.EmployeeID, &entry.ShiftID, &date, &entry.CreatedAt,
			&entry.Employee.AccountID, &entry.Employee.FirstName, &entry.Employee.LastName, &entry.Employee.Phone, &entry.Employee.Role,
			&entry.Shift.CenterID, &entry.Shift.Name, &entry.Shift.StartTime, &entry.Shift.EndTime, &entry.Shift.MaximumSlot, &entry.Shift.Status,
			&entry.Center.Name, &entry.Center.Address, &entry.Center.Status,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		entry.Date = dateString(date)
		entry.Employee.ID = entry.EmployeeID
		entry.Shift.ID = entry.ShiftID
		entry.Center.ID = entry.Shift.CenterID

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetWorkScheduleByID loads one entry with joined details.
func (r *Repository) GetWorkScheduleByID(id uuid.UUID) (*domain.WorkSchedule, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules ws
		JOIN employees e ON e.id = ws.employee_id
		JOIN accounts a ON a.id = e.account_id
		JOIN shifts s ON s.id = ws.shift_id
		JOIN service_centers c ON c.id = s.center_id
		WHERE ws.id = $1
	`

	entry := &domain.WorkSchedule{
		Employee: &domain.Employee{},
		Shift:    &domain.Shift{},
		Center:   &domain.ServiceCenter{},
	}
	var date time.Time

	dst := []any{
		&entry.ID, &entry.EmployeeID, &entry.ShiftID, &date, &entry.CreatedAt,
		&entry.Employee.AccountID, &entry.Employee.FirstName, &entry.Employee.LastName, &entry.Employee.Phone, &entry.Employee.Role,
		&entry.Shift.CenterID, &entry.Shift.Name, &entry.Shift.StartTime, &entry.Shift.EndTime, &entry.Shift.MaximumSlot, &entry.Shift.Status,
		&entry.Center.Name, &entry.Center.Address, &entry.Center.Status,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	entry.Date = dateString(date)
	entry.Employee.ID = entry.EmployeeID
	entry.Shift.ID = entry.ShiftID
	entry.Center.ID = entry.Shift.CenterID

	return entry, nil
}
