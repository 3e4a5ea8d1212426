package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medialocker-backend-go/internal/models"
)

// mongoUserRepository implements the UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
func NewMongoUserRepository(m *Mongo) UserRepository {
	if m == nil {
		panic("Mongo handle is not initialized for UserRepository")
	}
	return &mongoUserRepository{collection: m.Users()}
}

// Create inserts a new user record. The unique index on username turns a
// duplicate insert into ErrDuplicateUsername.
func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username '%s': %w", user.Username, ErrDuplicateUsername)
		}
		return fmt.Errorf("failed to create user '%s': %w", user.Username, err)
	}
	return nil
}

// GetByID retrieves a user by the hex form of their ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID '%s': %w", userID, ErrNotFound)
	}

	var user models.User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by their unique username.
func (r *mongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty for GetByUsername operation")
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user '%s' not found: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return &user, nil
}

// PushLockerRef appends a locker reference to the user's own record. This
// touches only the user document; no cross-document atomicity with the
// locker collection is provided or required.
func (r *mongoUserRepository) PushLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error) {
	return r.updateLockerRefs(ctx, userID, bson.M{"$push": bson.M{"lockers": lockerID}})
}

// PullLockerRef removes a locker reference from the user's own record.
func (r *mongoUserRepository) PullLockerRef(ctx context.Context, userID, lockerID string) (*models.User, error) {
	return r.updateLockerRefs(ctx, userID, bson.M{"$pull": bson.M{"lockers": lockerID}})
}

func (r *mongoUserRepository) updateLockerRefs(ctx context.Context, userID string, update bson.M) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID '%s': %w", userID, ErrNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user with ID '%s' not found for update: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update locker refs for user '%s': %w", userID, err)
	}
	return &updated, nil
}
