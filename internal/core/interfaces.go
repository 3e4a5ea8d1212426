package core

import (
	"context"

	"medialocker-backend-go/internal/models"
)

// LockerService defines the interface for locker operations: creation,
// reads, item mutation and deletion, all gated on the caller's identity.
type LockerService interface {
	CreateLocker(ctx context.Context, ownerID string) (*models.Locker, error)
	GetLockerByID(ctx context.Context, callerID, lockerID string) (*models.Locker, error)
	AddItem(ctx context.Context, callerID, lockerID string, kind models.ItemKind, itemID string) (*models.Locker, error)
	RemoveItem(ctx context.Context, callerID, lockerID string, kind models.ItemKind, itemID string) (*models.Locker, error)
	DeleteLocker(ctx context.Context, callerID, lockerID string) (*models.Locker, error)
	// ListByOwner is owner-scoped: only the owner themself may list,
	// collaborator access does not qualify.
	ListByOwner(ctx context.Context, callerID, ownerID string) ([]*models.Locker, error)
}

// UserService defines the interface for account operations and the locker
// references kept on the user's own record.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	// Login verifies credentials and returns the user together with a signed
	// bearer token.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetUserLockers(ctx context.Context, userID string) ([]string, error)
	AttachLocker(ctx context.Context, userID, lockerID string) ([]string, error)
	DetachLocker(ctx context.Context, userID, lockerID string) ([]string, error)
}

// TokenIssuer abstracts issuing bearer tokens so UserService does not
// depend on the concrete JWT manager.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
