package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"

	"latitude/internal/auth"
	"latitude/internal/domain"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
	"latitude/internal/domain/services"
)

// authService implements the AuthService interface
type authService struct {
	users  repositories.UserRepository
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repositories.UserRepository,
	tokens auth.TokenService,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account and issues its first token
func (s *authService) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(req.Password, validation.Required, validation.Length(6, 72)),
	}.Filter()
	if err != nil {
		return nil, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	return &services.AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same outcome as a wrong password so the response does not
			// reveal which emails are registered.
			return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &services.AuthResponse{User: user, Token: token}, nil
}
