package repository

import (
	"context"

	"github.com/kemasghani/beReactNative/internal/models"
)

type UserRepository interface {
	Register(ctx context.Context, user *models.User) error
	Authenticate(ctx context.Context, username, password string) error
	GetIDByUsername(ctx context.Context, username string) (int, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetAll(ctx context.Context) ([]models.Report, error)
}
