package service

import (
	"context"
	"errors"

	"ride-booking/internal/domain/user"
	"ride-booking/internal/general/jwt"
	"ride-booking/internal/general/logger"
	"ride-booking/internal/ports"

	"golang.org/x/crypto/bcrypt"
)

// authService handles registration and login. Passwords are bcrypt-hashed
// before they reach storage and never leave this package in any other form.
type authService struct {
	logger   *logger.Logger
	uow      ports.UnitOfWork
	userRepo ports.UserRepository
	jwtMgr   *jwt.Manager
}

// NewAuthService creates a new instance of the AuthService with the provided dependencies.
func NewAuthService(log *logger.Logger, uow ports.UnitOfWork, userRepo ports.UserRepository, jwtMgr *jwt.Manager) ports.AuthService {
	return &authService{
		logger:   log,
		uow:      uow,
		userRepo: userRepo,
		jwtMgr:   jwtMgr,
	}
}

// ErrPasswordRequired rejects empty registration passwords before hashing.
var ErrPasswordRequired = errors.New("password is required")

func (service *authService) Register(ctx context.Context, in ports.RegisterInput) (ports.UserView, error) {
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return ports.UserView{}, err
	}
	if in.Password == "" {
		return ports.UserView{}, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.UserView{}, err
	}

	newUser, err := user.NewUser(in.Username, role, string(hash))
	if err != nil {
		return ports.UserView{}, err
	}

	err = service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		return service.userRepo.CreateUser(txCtx, newUser)
	})
	if err != nil {
		return ports.UserView{}, err
	}

	service.logger.Info(ctx, "user_registered", "User registered",
		map[string]any{"username": newUser.Username, "role": newUser.Role.String()})

	return ports.NewUserView(newUser), nil
}

func (service *authService) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	var found *user.User
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		found, err = service.userRepo.GetByUsername(txCtx, username)
		return err
	})
	if err != nil {
		return ports.LoginResult{}, err
	}
	if found == nil {
		return ports.LoginResult{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return ports.LoginResult{}, user.ErrInvalidCredentials
	}

	token, _, err := service.jwtMgr.IssueUserToken(found.Username, found.Role)
	if err != nil {
		return ports.LoginResult{}, err
	}

	service.logger.Info(ctx, "user_logged_in", "User logged in",
		map[string]any{"username": found.Username})

	return ports.LoginResult{Token: token}, nil
}
