package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemasghani/beReactNative/internal/models"
)

// rowQuerier is the slice of the pool the user repository needs. Keeping it
// narrow lets tests drive the error-mapping branches without a database.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type userRepo struct {
	db rowQuerier
}

var validate = validator.New()

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Register(ctx context.Context, u *models.User) error {
	if err := validate.Struct(u); err != nil {
		var validationErr validator.ValidationErrors
		if errors.As(err, &validationErr) {
			firstErr := validationErr[0]
			switch firstErr.Field() {
			case "Username":
				return fmt.Errorf("%w: username is required", ErrInvalidInput)
			case "Password":
				return fmt.Errorf("%w: password is required", ErrInvalidInput)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sql := `
		INSERT INTO users (
			username,
			password
	) VALUES ($1, $2)
	RETURNING user_id
	`

	err := r.db.QueryRow(ctx, sql,
		u.Username,
		u.Password,
	).Scan(&u.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username already taken", ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Authenticate matches username and password exactly against the stored row.
// Passwords are stored and compared in cleartext, carried over from the
// system this service replaces.
func (r *userRepo) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	sql := `
		SELECT user_id
		FROM users WHERE username = $1 AND password = $2
	`

	var userID int

	err := r.db.QueryRow(ctx, sql, username, password).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("authenticate user: %w", err)
	}

	return nil
}

func (r *userRepo) GetIDByUsername(ctx context.Context, username string) (int, error) {
	if username == "" {
		return 0, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
	}

	sql := `
		SELECT user_id
		FROM users WHERE username = $1
	`

	var userID int

	err := r.db.QueryRow(ctx, sql, username).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get user %q: %w", username, err)
	}

	return userID, nil
}
