package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

// RegistrationSuccess is the acknowledgment returned on successful
// registration. No token is issued at that point.
const RegistrationSuccess = "User registered successfully"

// AuthService orchestrates registration and login over the user
// directory, the password hasher, and the token issuer.
type AuthService struct {
	users  domain.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new user account and returns a success message.
// A username already in use yields domain.ErrUserExists; any other
// failure is logged and mapped to ErrRegistrationFailed.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	// Best-effort pre-check; the store's unique constraint is the authority.
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return "", domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logger.Error("registration lookup failed", zap.String("username", username), zap.Error(err))
		return "", ErrRegistrationFailed
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return "", err
		}
		logger.Error("registration hash failed", zap.String("username", username), zap.Error(err))
		return "", ErrRegistrationFailed
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent insert loses the race at the constraint, not here.
		if errors.Is(err, domain.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		logger.Error("registration failed", zap.String("username", username), zap.Error(err))
		return "", ErrRegistrationFailed
	}

	logger.Info("user registered", zap.String("username", username))
	return RegistrationSuccess, nil
}

// Login verifies credentials and returns a signed bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller:
// both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		logger.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		return "", ErrLoginFailed
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		logger.Error("token issue failed", zap.String("username", username), zap.Error(err))
		return "", ErrLoginFailed
	}

	logger.Info("user logged in", zap.String("username", username))
	return token, nil
}
