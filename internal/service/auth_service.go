// Package service implements the application's use cases on top of the
// repositories and the auth primitives.
package service

import (
	"context"
	"errors"

	"fitgpt/internal/auth"
	"fitgpt/internal/models"
	"fitgpt/internal/observability"
	"fitgpt/internal/repository"
)

// AuthService handles registration, login, and identity resolution.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

// NewAuthService creates an AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Register creates a user with a hashed password and defaulted profile
// fields. The email-existence lookup is a best-effort pre-check; the unique
// index on users.email is the source of truth, so a concurrent duplicate
// insert still comes back as DuplicateEmail.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		observability.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
		return nil, models.NewDuplicateEmailError()
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:             email,
		HashedPassword:    hashed,
		BodyType:          models.DefaultBodyType,
		Lifestyle:         models.DefaultLifestyle,
		ComfortPreference: models.DefaultComfortPreference,
		IsActive:          true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.AuthAttempts.WithLabelValues("register", "success").Inc()
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password fail identically so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Verify(password, user.HashedPassword) {
		observability.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return "", models.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	observability.AuthAttempts.WithLabelValues("login", "success").Inc()
	return token, nil
}

// Authenticate resolves a bearer token to the concrete user record. It is
// the single choke point for protected operations: a valid signature whose
// subject no longer exists (user deleted after issuance) is still
// Unauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		observability.TokenVerifications.WithLabelValues("invalid").Inc()
		return nil, models.NewUnauthenticatedError("Invalid or expired token")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		observability.TokenVerifications.WithLabelValues("unknown_subject").Inc()
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewUnauthenticatedError("Invalid authentication credentials")
		}
		return nil, err
	}

	observability.TokenVerifications.WithLabelValues("valid").Inc()
	return user, nil
}
