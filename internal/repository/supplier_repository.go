package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemasghani/beReactNative/internal/models"
)

type supplierRepo struct {
	db *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, s *models.Supplier) error {
	if s.Name == "" {
		return fmt.Errorf("%w: supplier name required", ErrInvalidInput)
	}

	sql := `
		INSERT INTO supplier (
			name,
			address,
			phone
	) VALUES ($1, $2, $3)
	RETURNING supplier_id
	`

	err := r.db.QueryRow(ctx, sql,
		s.Name,
		s.Address,
		s.Phone,
	).Scan(&s.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	return nil
}
