package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stock_dashboard/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists when a unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by username.
	// It returns ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	// It returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// JWTGenerator abstracts token issuance.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given username.
	GenerateToken(username string) (string, error)
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	TokenType string
	User      *entity.User
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password. Username must be
// unique; email, when provided, must be unique too. Uniqueness is checked up
// front for a friendly error, and enforced again by the database indexes so a
// race can never produce two rows.
func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if email != "" {
		if _, err := u.users.FindByEmail(ctx, email); err == nil {
			return nil, ErrEmailAlreadyExists
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Password: string(hashed)}
	if email != "" {
		user.Email = &email
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed JWT token on success.
// To mitigate timing attacks, a bcrypt comparison runs even when the user
// does not exist, so "no such account" and "wrong password" take the same
// time and produce the same error.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path even when
	// the lookup failed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.Username)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return &LoginResult{Token: token, TokenType: "bearer", User: user}, nil
}

// GetUserByUsername looks up a user, used by the identity endpoint after
// token verification.
func (u *authUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return u.users.FindByUsername(ctx, username)
}
