package repository

import (
	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (r *Repository) CreateAccount(account *domain.Account) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, version
	`

	params := []any{account.Email, account.PasswordHash, account.Role}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&account.ID, &account.IsActive, &account.CreatedAt, &account.Version)
}

// CreateEmployeeAccount creates the account and its employee profile in
// one transaction.
func (r *Repository) CreateEmployeeAccount(account *domain.Account, employee *domain.Employee) error {
	ctx, cancel := r.txContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, version
	`
	params := []any{account.Email, account.PasswordHash, account.Role}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&account.ID, &account.IsActive, &account.CreatedAt, &account.Version); err != nil {
		return err
	}

	employee.AccountID = account.ID
	employee.Role = account.Role

	query = `
		INSERT INTO employees (account_id, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	params = []any{employee.AccountID, employee.FirstName, employee.LastName, employee.Phone}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&employee.ID, &employee.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetAccountByID(id uuid.UUID) (*domain.Account, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT email, password_hash, role, is_active, created_at, version
		FROM accounts WHERE id = $1
	`

	account := &domain.Account{ID: id}

	dst := []any{&account.Email, &account.PasswordHash, &account.Role, &account.IsActive, &account.CreatedAt, &account.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetAccountByEmail(email string) (*domain.Account, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, password_hash, role, is_active, created_at, version
		FROM accounts WHERE email = $1
	`

	account := &domain.Account{Email: email}

	dst := []any{&account.ID, &account.PasswordHash, &account.Role, &account.IsActive, &account.CreatedAt, &account.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetAllAccounts() ([]*domain.Account, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, email, role, is_active, created_at, version
		FROM accounts ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		account := &domain.Account{}
		dst := []any{&account.ID, &account.Email, &account.Role, &account.IsActive, &account.CreatedAt, &account.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *Repository) UpdateAccount(account *domain.Account) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE accounts
		SET
			password_hash = $1,
			role = $2,
			is_active = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{account.PasswordHash, account.Role, account.IsActive, account.ID, account.Version}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&account.Version)
}
