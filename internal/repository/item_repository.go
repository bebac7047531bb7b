package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemasghani/beReactNative/internal/models"
)

type itemRepo struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, i *models.Item) error {
	if i.Name == "" {
		return fmt.Errorf("%w: item name required", ErrInvalidInput)
	}
	if i.ImagePath == "" {
		return fmt.Errorf("%w: item image path required", ErrInvalidInput)
	}

	sql := `
		INSERT INTO item (
			name,
			image,
			description,
			quantity
	) VALUES ($1, $2, $3, $4)
	RETURNING item_id
	`

	err := r.db.QueryRow(ctx, sql,
		i.Name,
		i.ImagePath,
		i.Description,
		i.Quantity,
	).Scan(&i.ItemID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}
