package postgres

import (
	"context"
	"errors"

	"ride-booking/internal/domain/user"
	"ride-booking/internal/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// UserRepo persists users using pgx and plain SQL.
type UserRepo struct{}

// NewUserRepo constructs a new UserRepo.
func NewUserRepo() ports.UserRepository {
	return &UserRepo{}
}

// CreateUser inserts a new user row. A duplicate username surfaces as
// user.ErrUsernameTaken.
func (repo *UserRepo) CreateUser(ctx context.Context, u *user.User) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, role, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`,
		u.Username,
		u.Role.String(),
		u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrUsernameTaken
		}
		return err
	}

	return nil
}

// GetByUsername returns one user by username, or (nil, nil) when absent.
func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var (
		out      user.User
		roleText string
	)

	err = tx.QueryRow(ctx, `
		SELECT id, created_at, username, role, password_hash
		FROM users
		WHERE username = $1
	`, username).Scan(&out.ID, &out.CreatedAt, &out.Username, &roleText, &out.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	out.Role = user.Role(roleText)
	return &out, nil
}
