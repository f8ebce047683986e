package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
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
		INSERT INTO shifts (center_id, name, start_time, end_time, start_date, end_date, maximum_slot, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`
	params := []any{shift.CenterID, shift.Name, shift.StartTime, shift.EndTime, shift.StartDate, shift.EndDate, shift.MaximumSlot, shift.Status}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	for _, day := range shift.RepeatDays {
		query = `INSERT INTO shift_repeat_days (shift_id, day) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, query, shift.ID, day); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetShiftByID(id uuid.UUID) (*domain.Shift, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			s.center_id,
			s.name,
			s.start_time,
			s.end_time,
			s.start_date,
			s.end_date,
			s.maximum_slot,
			s.status,
			s.created_at,
			s.version,
			srd.day
		FROM shifts s
		LEFT JOIN shift_repeat_days srd ON s.id = srd.shift_id
		WHERE s.id = $1
		ORDER BY srd.day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shift := &domain.Shift{ID: id, RepeatDays: make([]int, 0)}
	found := false

	for rows.Next() {
		var row struct {
			StartDate sql.NullTime
			EndDate   sql.NullTime
			Day       sql.NullInt32
		}

		dst := []any{
			&shift.CenterID,
			&shift.Name,
			&shift.StartTime,
			&shift.EndTime,
			&row.StartDate,
			&row.EndDate,
			&shift.MaximumSlot,
			&shift.Status,
			&shift.CreatedAt,
			&shift.Version,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		found = true
		shift.StartDate = nullDateString(row.StartDate)
		shift.EndDate = nullDateString(row.EndDate)

		if row.Day.Valid {
			shift.RepeatDays = append(shift.RepeatDays, int(row.Day.Int32))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, sql.ErrNoRows
	}

	return shift, nil
}

func (r *Repository) GetShiftsByCenter(centerID uuid.UUID) ([]*domain.Shift, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			s.id,
			s.name,
			s.start_time,
			s.end_time,
			s.start_date,
			s.end_date,
			s.maximum_slot,
			s.status,
			s.created_at,
			s.version,
			srd.day
		FROM shifts s
		LEFT JOIN shift_repeat_days srd ON s.id = srd.shift_id
		WHERE s.center_id = $1
		ORDER BY s.name, srd.day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftsMap := make(map[uuid.UUID]*domain.Shift)
	order := make([]uuid.UUID, 0)

	for rows.Next() {
		var row struct {
			ID          uuid.UUID
			Name        string
			StartTime   string
			EndTime     string
			StartDate   sql.NullTime
			EndDate     sql.NullTime
			MaximumSlot int32
			Status      domain.ShiftStatus
			CreatedAt   sql.NullTime
			Version     int32
			Day         sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.StartTime,
			&row.EndTime,
			&row.StartDate,
			&row.EndDate,
			&row.MaximumSlot,
			&row.Status,
			&row.CreatedAt,
			&row.Version,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		shift, exists := shiftsMap[row.ID]
		if !exists {
			shift = &domain.Shift{
				ID:          row.ID,
				CenterID:    centerID,
				Name:        row.Name,
				StartTime:   row.StartTime,
				EndTime:     row.EndTime,
				StartDate:   nullDateString(row.StartDate),
				EndDate:     nullDateString(row.EndDate),
				RepeatDays:  make([]int, 0),
				MaximumSlot: row.MaximumSlot,
				Status:      row.Status,
				CreatedAt:   row.CreatedAt.Time,
				Version:     row.Version,
			}
			shiftsMap[row.ID] = shift
			order = append(order, row.ID)
		}

		if row.Day.Valid {
			shift.RepeatDays = append(shift.RepeatDays, int(row.Day.Int32))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	shifts := make([]*domain.Shift, 0, len(order))
	for _, id := range order {
		shifts = append(shifts, shiftsMap[id])
	}

	return shifts, nil
}

// UpdateShift rewrites the shift row and its repeat days in one
// transaction, guarded by the optimistic version column.
func (r *Repository) UpdateShift(shift *domain.Shift) error {
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
		UPDATE shifts
		SET
			center_id = $1,
			name = $2,
			start_time = $3,
			end_time = $4,
			start_date = $5,
			end_date = $6,
			maximum_slot = $7,
			status = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`
	params := []any{shift.CenterID, shift.Name, shift.StartTime, shift.EndTime, shift.StartDate, shift.EndDate, shift.MaximumSlot, shift.Status, shift.ID, shift.Version}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&shift.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_repeat_days WHERE shift_id = $1`, shift.ID); err != nil {
		return err
	}
	for _, day := range shift.RepeatDays {
		if _, err := tx.ExecContext(ctx, `INSERT INTO shift_repeat_days (shift_id, day) VALUES ($1, $2)`, shift.ID, day); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteShift(id uuid.UUID) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM shifts WHERE id = $1`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}
