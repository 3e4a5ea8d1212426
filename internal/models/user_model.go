package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the persisted account record. The password field holds a bcrypt
// hash, never the raw password, and is excluded from JSON responses.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
	Lockers  []string           `json:"lockers" bson:"lockers"`
}
