package repository

import (
	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func (r *Repository) CreateServiceCenter(center *domain.ServiceCenter) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO service_centers (name, address, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	params := []any{center.Name, center.Address, center.Status}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&center.ID, &center.CreatedAt, &center.Version)
}

func (r *Repository) GetServiceCenterByID(id uuid.UUID) (*domain.ServiceCenter, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT name, address, status, created_at, version
		FROM service_centers WHERE id = $1
	`

	center := &domain.ServiceCenter{ID: id}

	dst := []any{&center.Name, &center.Address, &center.Status, &center.CreatedAt, &center.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return center, nil
}

func (r *Repository) GetAllServiceCenters() ([]*domain.ServiceCenter, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, name, address, status, created_at, version
		FROM service_centers
		ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]*domain.ServiceCenter, 0)
	for rows.Next() {
		center := &domain.ServiceCenter{}
		dst := []any{&center.ID, &center.Name, &center.Address, &center.Status, &center.CreatedAt, &center.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}

	return centers, rows.Err()
}

func (r *Repository) UpdateServiceCenter(center *domain.ServiceCenter) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE service_centers
		SET
			name = $1,
			address = $2,
			status = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{center.Name, center.Address, center.Status, center.ID, center.Version}
	return r.dbpool.QueryRowContext(ctx, query, params...).Scan(&center.Version)
}

func (r *Repository) DeleteServiceCenter(id uuid.UUID) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `DELETE FROM service_centers WHERE id = $1`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}
