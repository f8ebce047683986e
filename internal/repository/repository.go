package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carserv-vn/service-center/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// builder produces postgres-placeholder queries for the dynamic list
// endpoints.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// queryer is satisfied by both *sql.DB and *sql.Tx, so read helpers can
// run inside or outside a transaction.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}

func (r *Repository) txContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
}

// serializableTx wraps check-then-act write sequences. Capacity and
// overlap invariants are validated inside the transaction, so two
// concurrent writers targeting the same (shift, date) or (employee,
// center) pair cannot both pass the check.
func (r *Repository) serializableTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.dbpool.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// IsSerializationFailure reports whether err is a serializable
// transaction conflict (SQLSTATE 40001); callers should ask the client
// to retry.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// date columns come back from the driver as UTC-midnight instants
func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func nullDateString(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := dateString(t.Time)
	return &s
}
