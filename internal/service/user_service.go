package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "Bookmarker/internal/domain"
	"Bookmarker/internal/password"
	"Bookmarker/internal/repo"
	"Bookmarker/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrInvalidCredentials is returned for a missing user and for a wrong
	// password alike, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNotFound           = errors.New("not found")
)

// UserService handles signup, signin and profile edits.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register hashes the password and creates the user. A unique violation on
// email yields ErrEmailTaken; every other storage failure is returned wrapped.
func (s *UserService) Register(ctx context.Context, email, plaintext string) (dom.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" || plaintext == "" {
		return dom.Profile{}, ErrInvalidCredentials
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		return dom.Profile{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.repo.Create(ctx, email, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Profile{}, ErrEmailTaken
		}
		return dom.Profile{}, fmt.Errorf("create user: %w", err)
	}
	return u.Profile(), nil
}

// Authenticate verifies email and password; returns the redacted profile if valid.
func (s *UserService) Authenticate(ctx context.Context, email, plaintext string) (dom.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" || plaintext == "" {
		return dom.Profile{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Profile{}, ErrInvalidCredentials
		}
		return dom.Profile{}, fmt.Errorf("find user: %w", err)
	}
	if err := password.Verify(u.Hash, plaintext); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return dom.Profile{}, ErrInvalidCredentials
		}
		return dom.Profile{}, fmt.Errorf("verify password: %w", err)
	}
	return u.Profile(), nil
}

// GetProfile returns the user's redacted profile.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (dom.Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Profile{}, ErrNotFound
		}
		return dom.Profile{}, fmt.Errorf("find user: %w", err)
	}
	return u.Profile(), nil
}

// EditProfile applies the sparse patch to the user. Changing email to one
// already taken yields ErrEmailTaken; a missing id yields ErrNotFound.
func (s *UserService) EditProfile(ctx context.Context, userID int64, patch repo.UserPatch) (dom.Profile, error) {
	if patch.Email != nil {
		trimmed := strings.TrimSpace(*patch.Email)
		if trimmed == "" {
			return dom.Profile{}, fmt.Errorf("email must not be empty")
		}
		patch.Email = &trimmed
	}
	u, err := s.repo.UpdateByID(ctx, userID, patch)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Profile{}, ErrEmailTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Profile{}, ErrNotFound
		}
		return dom.Profile{}, fmt.Errorf("update user: %w", err)
	}
	return u.Profile(), nil
}
