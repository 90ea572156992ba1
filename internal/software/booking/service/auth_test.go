package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ride-booking/internal/domain/user"
	"ride-booking/internal/general/jwt"
	"ride-booking/internal/general/logger"
	"ride-booking/internal/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[u.Username]; exists {
		return user.ErrUsernameTaken
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	clone := *u
	f.users[u.Username] = &clone
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func newTestAuthService(t *testing.T) (ports.AuthService, *jwt.Manager) {
	t.Helper()
	mgr := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(logger.New("booking-service-test"), passThroughUow{}, newFakeUserRepo(), mgr)
	return svc, mgr
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService(t)

	view, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "s3cret", Role: "passenger",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, user.RolePassenger.String(), view.Role)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "s3cret", Role: "ADMIN",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "", Role: "PASSENGER",
	})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "", Password: "s3cret", Role: "PASSENGER",
	})
	assert.ErrorIs(t, err, user.ErrUsernameRequired)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "s3cret", Role: "PASSENGER",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "other", Role: "DRIVER",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc, mgr := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "s3cret", Role: "DRIVER",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "bob", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := mgr.ParseAndValidate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username())
	assert.Equal(t, user.RoleDriver, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "s3cret", Role: "DRIVER",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
