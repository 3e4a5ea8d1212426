package core

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"medialocker-backend-go/internal/db"
	"medialocker-backend-go/internal/models"
)

// Custom errors for the UserService
var (
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so login failures do not reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	tokens   TokenIssuer
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, tokens TokenIssuer) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account. Only the bcrypt hash of the password is
// persisted.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("userService: userRepo not initialized")
	}

	if req.Password != req.Password2 {
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Lockers:  []string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return nil, fmt.Errorf("%w: '%s'", ErrUsernameTaken, req.Username)
		}
		return nil, fmt.Errorf("failed to create user '%s': %w", req.Username, err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token for the user.
// A missing account and a bad password surface identically.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	if s.userRepo == nil || s.tokens == nil {
		return nil, "", errors.New("userService: component not initialized")
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user '%s': %w", req.Username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token for user '%s': %w", req.Username, err)
	}
	return user, tok, nil
}

// GetByID retrieves a user by their ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// GetUserLockers returns the locker references kept on the user's own
// record.
func (s *userService) GetUserLockers(ctx context.Context, userID string) ([]string, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Lockers, nil
}

// AttachLocker appends a locker reference to the user's own record and
// returns the updated reference list. No validation is performed against
// the locker collection; identifiers are opaque at this layer.
func (s *userService) AttachLocker(ctx context.Context, userID, lockerID string) ([]string, error) {
	user, err := s.userRepo.PushLockerRef(ctx, userID, lockerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to attach locker '%s' to user '%s': %w", lockerID, userID, err)
	}
	return user.Lockers, nil
}

// DetachLocker removes a locker reference from the user's own record and
// returns the updated reference list.
func (s *userService) DetachLocker(ctx context.Context, userID, lockerID string) ([]string, error) {
	user, err := s.userRepo.PullLockerRef(ctx, userID, lockerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to detach locker '%s' from user '%s': %w", lockerID, userID, err)
	}
	return user.Lockers, nil
}
