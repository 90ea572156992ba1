package user

import (
	"errors"
	"strings"
	"time"
)

// User is the domain entity corresponding to the `users` table.
// Users are created at registration and never deleted; the only
// mutable field after creation would be the password hash, and no
// password-change operation exists yet.
type User struct {
	ID           string
	CreatedAt    time.Time
	Username     string
	Role         Role
	PasswordHash string
}

var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

	// ErrUsernameTaken is surfaced by the repository on a unique violation.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and bad password,
	// so a login attempt cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NewUser constructs a new User entity. The caller provides an already-hashed password.
func NewUser(username string, role Role, passwordHash string) (*User, error) {
	u := &User{
		CreatedAt:    time.Now().UTC(),
		Username:     strings.TrimSpace(username),
		Role:         role,
		PasswordHash: strings.TrimSpace(passwordHash),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate checks invariants of the User entity.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrUsernameRequired
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	return nil
}
