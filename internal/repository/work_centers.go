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

const workCenterColumns = `
	wc.id, wc.employee_id, wc.center_id, wc.start_date, wc.end_date, wc.created_at, wc.version,
	e.account_id, e.first_name, e.last_name, e.phone, a.role, e.created_at,
	c.name, c.address, c.status
`

func scanWorkCenter(row interface{ Scan(dest ...any) error }) (*domain.WorkCenter, error) {
	assignment := &domain.WorkCenter{
		Employee: &domain.Employee{},
		Center:   &domain.ServiceCenter{},
	}

	var startDate time.Time
	var endDate sql.NullTime

	dst := []any{
		&assignment.ID, &assignment.EmployeeID, &assignment.CenterID, &startDate, &endDate, &assignment.CreatedAt, &assignment.Version,
		&assignment.Employee.AccountID, &assignment.Employee.FirstName, &assignment.Employee.LastName, &assignment.Employee.Phone, &assignment.Employee.Role, &assignment.Employee.CreatedAt,
		&assignment.Center.Name, &assignment.Center.Address, &assignment.Center.Status,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	assignment.StartDate = dateString(startDate)
	assignment.EndDate = nullDateString(endDate)
	assignment.Employee.ID = assignment.EmployeeID
	assignment.Center.ID = assignment.CenterID

	return assignment, nil
}

func (r *Repository) GetWorkCenterByID(id uuid.UUID) (*domain.WorkCenter, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + workCenterColumns + `
		FROM work_centers wc
		JOIN employees e ON e.id = wc.employee_id
		JOIN accounts a ON a.id = e.account_id
		JOIN service_centers c ON c.id = wc.center_id
		WHERE wc.id = $1
	`

	return scanWorkCenter(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) getWorkCentersByPair(ctx context.Context, q queryer, employeeID, centerID uuid.UUID) ([]*domain.WorkCenter, error) {
	query := `
		SELECT ` + workCenterColumns + `
		FROM work_centers wc
		JOIN employees e ON e.id = wc.employee_id
		JOIN accounts a ON a.id = e.account_id
		JOIN service_centers c ON c.id = wc.center_id
		WHERE wc.employee_id = $1 AND wc.center_id = $2
		ORDER BY wc.start_date
	`

	rows, err := q.QueryContext(ctx, query, employeeID, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.WorkCenter, 0)
	for rows.Next() {
		assignment, err := scanWorkCenter(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// GetWorkCentersByEmployeeAndCenter loads every assignment of one
// (employee, center) pair, with joined names for conflict messages.
func (r *Repository) GetWorkCentersByEmployeeAndCenter(employeeID, centerID uuid.UUID) ([]*domain.WorkCenter, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	return r.getWorkCentersByPair(ctx, r.dbpool, employeeID, centerID)
}

// CreateWorkCenter re-runs the overlap check against the current rows
// inside a serializable transaction before inserting.
func (r *Repository) CreateWorkCenter(assignment *domain.WorkCenter) error {
	ctx, cancel := r.txContext()
	defer cancel()

	return r.serializableTx(ctx, func(tx *sql.Tx) error {
		existing, err := r.getWorkCentersByPair(ctx, tx, assignment.EmployeeID, assignment.CenterID)
		if err != nil {
			return err
		}
		if err := scheduler.CheckAssignmentOverlap(existing, assignment.StartDate, assignment.EndDate, uuid.Nil); err != nil {
			return err
		}

		query := `
			INSERT INTO work_centers (employee_id, center_id, start_date, end_date)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, version
		`
		params := []any{assignment.EmployeeID, assignment.CenterID, assignment.StartDate, assignment.EndDate}
		return tx.QueryRowContext(ctx, query, params...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version)
	})
}

// UpdateWorkCenter rewrites an assignment's employee, center or date
// range; the overlap check runs against the target pair, skipping the
// assignment itself.
func (r *Repository) UpdateWorkCenter(assignment *domain.WorkCenter) error {
	ctx, cancel := r.txContext()
	defer cancel()

	return r.serializableTx(ctx, func(tx *sql.Tx) error {
		existing, err := r.getWorkCentersByPair(ctx, tx, assignment.EmployeeID, assignment.CenterID)
		if err != nil {
			return err
		}
		if err := scheduler.CheckAssignmentOverlap(existing, assignment.StartDate, assignment.EndDate, assignment.ID); err != nil {
			return err
		}

		query := `
			UPDATE work_centers
			SET
				employee_id = $1,
				center_id = $2,
				start_date = $3,
				end_date = $4,
				version = version + 1
			WHERE id = $5 AND version = $6
			RETURNING version
		`
		params := []any{assignment.EmployeeID, assignment.CenterID, assignment.StartDate, assignment.EndDate, assignment.ID, assignment.Version}
		return tx.QueryRowContext(ctx, query, params...).Scan(&assignment.Version)
	})
}

// EndWorkCenter is the logical delete: it only sets the end date.
func (r *Repository) EndWorkCenter(assignment *domain.WorkCenter, endDate string) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE work_centers
		SET end_date = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	params := []any{endDate, assignment.ID, assignment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&assignment.Version); err != nil {
		return err
	}

	assignment.EndDate = &endDate
	return nil
}

type WorkCenterFilter struct {
	EmployeeID *uuid.UUID
	CenterID   *uuid.UUID
	ActiveOn   *string
}

func (r *Repository) ListWorkCenters(filter WorkCenterFilter) ([]*domain.WorkCenter, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	q := builder.
		Select(workCenterColumns).
		From("work_centers wc").
		Join("employees e ON e.id = wc.employee_id").
		Join("accounts a ON a.id = e.account_id").
		Join("service_centers c ON c.id = wc.center_id").
		OrderBy("wc.start_date", "e.last_name")

	if filter.EmployeeID != nil {
		q = q.Where(sq.Eq{"wc.employee_id": *filter.EmployeeID})
	}
	if filter.CenterID != nil {
		q = q.Where(sq.Eq{"wc.center_id": *filter.CenterID})
	}
	if filter.ActiveOn != nil {
		q = q.Where(sq.LtOrEq{"wc.start_date": *filter.ActiveOn})
		q = q.Where(sq.Or{sq.Eq{"wc.end_date": nil}, sq.GtOrEq{"wc.end_date": *filter.ActiveOn}})
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

	assignments := make([]*domain.WorkCenter, 0)
	for rows.Next() {
		assignment, err := scanWorkCenter(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}
