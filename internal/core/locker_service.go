package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medialocker-backend-go/internal/db"
	"medialocker-backend-go/internal/models"
)

// Custom errors for the LockerService
var (
	ErrLockerNotFound  = errors.New("locker not found")
	ErrForbiddenAccess = errors.New("user does not have permission for this action on the locker")
	ErrInvalidItemKind = errors.New("invalid item kind")
)

// lockerService implements the LockerService interface.
type lockerService struct {
	lockerRepo db.LockerRepository
}

// NewLockerService creates a new LockerService instance.
func NewLockerService(lr db.LockerRepository) LockerService {
	return &lockerService{lockerRepo: lr}
}

// authorizeUser reports whether callerID may read or mutate the locker:
// the owner always qualifies, otherwise the caller must appear in
// usersWithAccess. Visibility is not consulted.
func authorizeUser(callerID string, locker *models.Locker) bool {
	if callerID == locker.OwnerID {
		return true
	}
	for _, id := range locker.UsersWithAccess {
		if id == callerID {
			return true
		}
	}
	return false
}

// CreateLocker allocates a new locker owned by ownerID. Any caller creates
// for themself, so no authorization applies here.
func (s *lockerService) CreateLocker(ctx context.Context, ownerID string) (*models.Locker, error) {
	if s.lockerRepo == nil {
		return nil, errors.New("lockerService: lockerRepo not initialized")
	}

	now := time.Now().UTC()
	locker := &models.Locker{
		ID:              uuid.NewString(),
		Name:            models.DefaultLockerName,
		Visibility:      models.VisibilityPrivate,
		Games:           []string{},
		Movies:          []string{},
		Books:           []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       ownerID,
		OwnerID:         ownerID,
		UsersWithAccess: []string{},
	}

	if err := s.lockerRepo.Create(ctx, locker); err != nil {
		return nil, fmt.Errorf("failed to create locker in repository: %w", err)
	}
	return locker, nil
}

// GetLockerByID retrieves a locker if the caller is the owner or has been
// granted access. Existence is checked before authorization, so acting on a
// missing locker yields ErrLockerNotFound rather than ErrForbiddenAccess.
func (s *lockerService) GetLockerByID(ctx context.Context, callerID, lockerID string) (*models.Locker, error) {
	locker, err := s.fetch(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	if !authorizeUser(callerID, locker) {
		return nil, fmt.Errorf("%w: user '%s' may not read locker '%s'", ErrForbiddenAccess, callerID, lockerID)
	}
	return locker, nil
}

// AddItem appends itemID to the locker sequence selected by kind. The
// append is a single atomic update in the repository; duplicates are
// permitted.
func (s *lockerService) AddItem(ctx context.Context, callerID, lockerID string, kind models.ItemKind, itemID string) (*models.Locker, error) {
	field := kind.Field()
	if field == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidItemKind, kind)
	}

	locker, err := s.fetch(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	if !authorizeUser(callerID, locker) {
		return nil, fmt.Errorf("%w: user '%s' may not modify locker '%s'", ErrForbiddenAccess, callerID, lockerID)
	}

	updated, err := s.lockerRepo.PushItem(ctx, lockerID, field, itemID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Deleted between the authorization fetch and the update.
			return nil, fmt.Errorf("%w: locker '%s'", ErrLockerNotFound, lockerID)
		}
		return nil, fmt.Errorf("failed to add %s '%s' to locker '%s': %w", kind, itemID, lockerID, err)
	}
	return updated, nil
}

// RemoveItem removes every occurrence of itemID from the locker sequence
// selected by kind. Removing a value that is not present is not an error:
// the update still advances updatedAt and returns the (unchanged) sequence.
func (s *lockerService) RemoveItem(ctx context.Context, callerID, lockerID string, kind models.ItemKind, itemID string) (*models.Locker, error) {
	field := kind.Field()
	if field == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidItemKind, kind)
	}

	locker, err := s.fetch(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	if !authorizeUser(callerID, locker) {
		return nil, fmt.Errorf("%w: user '%s' may not modify locker '%s'", ErrForbiddenAccess, callerID, lockerID)
	}

	updated, err := s.lockerRepo.PullItem(ctx, lockerID, field, itemID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: locker '%s'", ErrLockerNotFound, lockerID)
		}
		return nil, fmt.Errorf("failed to remove %s '%s' from locker '%s': %w", kind, itemID, lockerID, err)
	}
	return updated, nil
}

// DeleteLocker permanently removes the locker document. Same authorization
// as mutation; there is no soft delete.
func (s *lockerService) DeleteLocker(ctx context.Context, callerID, lockerID string) (*models.Locker, error) {
	locker, err := s.fetch(ctx, lockerID)
	if err != nil {
		return nil, err
	}
	if !authorizeUser(callerID, locker) {
		return nil, fmt.Errorf("%w: user '%s' may not delete locker '%s'", ErrForbiddenAccess, callerID, lockerID)
	}

	deleted, err := s.lockerRepo.Delete(ctx, lockerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: locker '%s'", ErrLockerNotFound, lockerID)
		}
		return nil, fmt.Errorf("failed to delete locker '%s': %w", lockerID, err)
	}
	return deleted, nil
}

// ListByOwner returns all lockers owned by ownerID. Only the owner themself
// may list; being in usersWithAccess of some locker does not grant this.
func (s *lockerService) ListByOwner(ctx context.Context, callerID, ownerID string) ([]*models.Locker, error) {
	if callerID != ownerID {
		return nil, fmt.Errorf("%w: user '%s' may not list lockers of '%s'", ErrForbiddenAccess, callerID, ownerID)
	}

	lockers, err := s.lockerRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lockers for owner '%s': %w", ownerID, err)
	}
	return lockers, nil
}

// fetch loads a locker and maps the repository not-found into the service
// taxonomy.
func (s *lockerService) fetch(ctx context.Context, lockerID string) (*models.Locker, error) {
	if s.lockerRepo == nil {
		return nil, errors.New("lockerService: lockerRepo not initialized")
	}
	locker, err := s.lockerRepo.GetByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: locker '%s'", ErrLockerNotFound, lockerID)
		}
		return nil, fmt.Errorf("failed to get locker '%s' from repository: %w", lockerID, err)
	}
	return locker, nil
}
