package repository

// Validation runs before any statement is issued, so these tests pass a nil
// pool and only exercise the input checks.

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kemasghani/beReactNative/internal/models"
)

func TestRegisterRequiresFields(t *testing.T) {
	repo := NewUserRepository(nil)

	err := repo.Register(context.Background(), &models.User{Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = repo.Register(context.Background(), &models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticateRejectsEmptyCredentials(t *testing.T) {
	repo := NewUserRepository(nil)

	err := repo.Authenticate(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = repo.Authenticate(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetIDByUsernameRequiresUsername(t *testing.T) {
	repo := NewUserRepository(nil)

	_, err := repo.GetIDByUsername(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateItemRequiresNameAndImage(t *testing.T) {
	repo := NewItemRepository(nil)

	err := repo.Create(context.Background(), &models.Item{ImagePath: "uploads/x.png"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = repo.Create(context.Background(), &models.Item{Name: "Widget"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSupplierRequiresName(t *testing.T) {
	repo := NewSupplierRepository(nil)

	err := repo.Create(context.Background(), &models.Supplier{Address: "1 Main St"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateReportRequiresDate(t *testing.T) {
	repo := NewReportRepository(nil)

	err := repo.Create(context.Background(), &models.Report{Income: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
