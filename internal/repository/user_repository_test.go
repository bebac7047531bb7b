package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemasghani/beReactNative/internal/models"
)

// stubRow feeds a canned result into QueryRow().Scan.
type stubRow struct {
	err error
	id  int
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if idPtr, ok := dest[0].(*int); ok {
			*idPtr = r.id
		}
	}
	return nil
}

type stubQuerier struct {
	row stubRow
}

func (q stubQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return q.row
}

func TestRegisterMapsUniqueViolationToDuplicate(t *testing.T) {
	repo := &userRepo{db: stubQuerier{row: stubRow{err: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_username_key",
	}}}}

	err := repo.Register(context.Background(), &models.User{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegisterWrapsOtherStorageErrors(t *testing.T) {
	repo := &userRepo{db: stubQuerier{row: stubRow{err: &pgconn.PgError{Code: "57P01"}}}}

	err := repo.Register(context.Background(), &models.User{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterReturnsGeneratedID(t *testing.T) {
	repo := &userRepo{db: stubQuerier{row: stubRow{id: 7}}}

	u := models.User{Username: "alice", Password: "pw1"}
	require.NoError(t, repo.Register(context.Background(), &u))
	assert.Equal(t, 7, u.UserID)
}

func TestAuthenticateMapsNoRowsToInvalidCredentials(t *testing.T) {
	repo := &userRepo{db: stubQuerier{row: stubRow{err: pgx.ErrNoRows}}}

	err := repo.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetIDByUsernameMapsNoRowsToNotFound(t *testing.T) {
	repo := &userRepo{db: stubQuerier{row: stubRow{err: pgx.ErrNoRows}}}

	_, err := repo.GetIDByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
