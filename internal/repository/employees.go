package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

const employeeColumns = "e.id, e.account_id, e.first_name, e.last_name, e.phone, a.role, e.created_at"

func scanEmployee(row interface{ Scan(dest ...any) error }) (*domain.Employee, error) {
	employee := &domain.Employee{}
	dst := []any{&employee.ID, &employee.AccountID, &employee.FirstName, &employee.LastName, &employee.Phone, &employee.Role, &employee.CreatedAt}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *Repository) GetEmployeeByID(id uuid.UUID) (*domain.Employee, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN accounts a ON a.id = e.account_id
		WHERE e.id = $1
	`

	return scanEmployee(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetEmployeeByAccountID(accountID uuid.UUID) (*domain.Employee, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN accounts a ON a.id = e.account_id
		WHERE e.account_id = $1
	`

	return scanEmployee(r.dbpool.QueryRowContext(ctx, query, accountID))
}

// GetEmployeesByIDs returns the employees for the given ids; callers
// compare lengths to detect ids that do not exist.
func (r *Repository) GetEmployeesByIDs(ids []uuid.UUID) ([]*domain.Employee, error) {
	if len(ids) == 0 {
		return []*domain.Employee{}, nil
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	query, args, err := builder.
		Select(employeeColumns).
		From("employees e").
		Join("accounts a ON a.id = e.account_id").
		Where(sq.Eq{"e.id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0, len(ids))
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (r *Repository) GetAllEmployees(role *domain.Role) ([]*domain.Employee, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	q := builder.
		Select(employeeColumns).
		From("employees e").
		Join("accounts a ON a.id = e.account_id").
		OrderBy("e.last_name", "e.first_name")
	if role != nil {
		q = q.Where(sq.Eq{"a.role": *role})
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

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}
