package db

import (
	"context"
	"errors"

	"medialocker-backend-go/internal/models"
)

// ErrNotFound is returned by repositories when no document matches the
// given key. Services translate it into their own taxonomy.
var ErrNotFound = errors.New("document not found")

// LockerRepository defines the interface for locker data storage operations.
//
// PushItem and PullItem must be atomic single-document updates: two
// concurrent appends to the same locker may not lose an update, so a
// fetch-then-write implementation is not acceptable here.
type LockerRepository interface {
	Create(ctx context.Context, locker *models.Locker) error
	GetByID(ctx context.Context, lockerID string) (*models.Locker, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Locker, error)
	// PushItem appends itemID to the named array field and advances
	// updatedAt in the same update command. Returns the updated document.
	PushItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error)
	// PullItem removes every occurrence of itemID from the named array field
	// and advances updatedAt in the same update command. Removing an absent
	// value is not an error. Returns the updated document.
	PullItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error)
	// Delete permanently removes the locker document and returns it.
	Delete(ctx context.Context, lockerID string) (*models.Locker, error)
}

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	// Create inserts a new user record. Returns ErrDuplicateUsername when
	// the username is already taken.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// PushLockerRef appends a locker reference to the user's own record.
	PushLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error)
	// PullLockerRef removes a locker reference from the user's own record.
	PullLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error)
}

// ErrDuplicateUsername is returned by UserRepository.Create when the unique
// index on username rejects the insert.
var ErrDuplicateUsername = errors.New("username already taken")
