package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"medialocker-backend-go/internal/db"
	"medialocker-backend-go/internal/models"
)

// FakeLockerRepository is an in-memory db.LockerRepository. Its clock
// advances on every mutation so updatedAt comparisons are deterministic in
// tests.
type FakeLockerRepository struct {
	mu      sync.Mutex
	lockers map[string]*models.Locker
	now     time.Time
	// Mutations counts push/pull/delete commands that reached the store,
	// letting tests assert that denied operations never touched it.
	Mutations int
}

// NewFakeLockerRepository creates an empty fake locker store.
func NewFakeLockerRepository() *FakeLockerRepository {
	return &FakeLockerRepository{
		lockers: make(map[string]*models.Locker),
		now:     time.Now().UTC(),
	}
}

func (f *FakeLockerRepository) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func copyLocker(l *models.Locker) *models.Locker {
	c := *l
	c.Games = append([]string(nil), l.Games...)
	c.Movies = append([]string(nil), l.Movies...)
	c.Books = append([]string(nil), l.Books...)
	c.UsersWithAccess = append([]string(nil), l.UsersWithAccess...)
	return &c
}

func (f *FakeLockerRepository) Create(ctx context.Context, locker *models.Locker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lockers[locker.ID] = copyLocker(locker)
	return nil
}

func (f *FakeLockerRepository) GetByID(ctx context.Context, lockerID string) (*models.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lockers[lockerID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return copyLocker(l), nil
}

func (f *FakeLockerRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Locker
	for _, l := range f.lockers {
		if l.OwnerID == ownerID {
			out = append(out, copyLocker(l))
		}
	}
	return out, nil
}

func (f *FakeLockerRepository) PushItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lockers[lockerID]
	if !ok {
		return nil, db.ErrNotFound
	}
	f.Mutations++
	switch field {
	case "games":
		l.Games = append(l.Games, itemID)
	case "movies":
		l.Movies = append(l.Movies, itemID)
	case "books":
		l.Books = append(l.Books, itemID)
	}
	l.UpdatedAt = f.tick()
	return copyLocker(l), nil
}

func (f *FakeLockerRepository) PullItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lockers[lockerID]
	if !ok {
		return nil, db.ErrNotFound
	}
	f.Mutations++
	switch field {
	case "games":
		l.Games = removeAll(l.Games, itemID)
	case "movies":
		l.Movies = removeAll(l.Movies, itemID)
	case "books":
		l.Books = removeAll(l.Books, itemID)
	}
	// $pull matches the document even when the value is absent, so the
	// timestamp advances either way.
	l.UpdatedAt = f.tick()
	return copyLocker(l), nil
}

func (f *FakeLockerRepository) Delete(ctx context.Context, lockerID string) (*models.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lockers[lockerID]
	if !ok {
		return nil, db.ErrNotFound
	}
	f.Mutations++
	delete(f.lockers, lockerID)
	return l, nil
}

func removeAll(items []string, value string) []string {
	out := items[:0]
	for _, it := range items {
		if it != value {
			out = append(out, it)
		}
	}
	return out
}

// Seed installs a locker directly, bypassing the service layer.
func (f *FakeLockerRepository) Seed(locker *models.Locker) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lockers[locker.ID] = copyLocker(locker)
}

// Snapshot returns the stored document, or nil if absent.
func (f *FakeLockerRepository) Snapshot(lockerID string) *models.Locker {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lockers[lockerID]
	if !ok {
		return nil
	}
	return copyLocker(l)
}

// FakeUserRepository is an in-memory db.UserRepository.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by hex ID
}

// NewFakeUserRepository creates an empty fake user store.
func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Lockers = append([]string(nil), u.Lockers...)
	return &c
}

func (f *FakeUserRepository) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return db.ErrDuplicateUsername
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = copyUser(user)
	return nil
}

func (f *FakeUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return copyUser(u), nil
}

func (f *FakeUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *FakeUserRepository) PushLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	u.Lockers = append(u.Lockers, lockerID)
	return copyUser(u), nil
}

func (f *FakeUserRepository) PullLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	u.Lockers = removeAll(u.Lockers, lockerID)
	return copyUser(u), nil
}
