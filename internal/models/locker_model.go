package models

import "time"

// Locker visibility values. Visibility is persisted but no operation
// currently branches on it.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// DefaultLockerName is assigned to every locker at creation time.
const DefaultLockerName = "My Locker"

// Locker groups references to games, movies and books for a user.
// The `id` field is the public, application-generated identifier and is
// distinct from Mongo's internal `_id`; all lookups go through `id`.
type Locker struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Visibility      string    `json:"visibility" bson:"visibility"`
	Games           []string  `json:"games" bson:"games"`
	Movies          []string  `json:"movies" bson:"movies"`
	Books           []string  `json:"books" bson:"books"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
	CreatedBy       string    `json:"createdBy" bson:"createdBy"`
	OwnerID         string    `json:"ownerId" bson:"ownerId"`
	UsersWithAccess []string  `json:"usersWithAccess" bson:"usersWithAccess"`
}

// ItemKind selects which of the locker's item sequences an operation
// targets.
type ItemKind string

const (
	KindGame  ItemKind = "game"
	KindMovie ItemKind = "movie"
	KindBook  ItemKind = "book"
)

// Field returns the document field backing this kind, or "" if the kind is
// unknown. Keeping the mapping here ensures the repository never receives a
// caller-controlled field name.
func (k ItemKind) Field() string {
	switch k {
	case KindGame:
		return "games"
	case KindMovie:
		return "movies"
	case KindBook:
		return "books"
	default:
		return ""
	}
}

// Items returns the sequence for this kind from the given locker. Used by
// handlers and tests to read back the mutated field generically.
func (k ItemKind) Items(l *Locker) []string {
	switch k {
	case KindGame:
		return l.Games
	case KindMovie:
		return l.Movies
	case KindBook:
		return l.Books
	default:
		return nil
	}
}
