package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medialocker-backend-go/internal/models"
)

// mongoLockerRepository implements the LockerRepository interface using
// MongoDB.
type mongoLockerRepository struct {
	collection *mongo.Collection
}

// NewMongoLockerRepository creates a new instance of mongoLockerRepository.
func NewMongoLockerRepository(m *Mongo) LockerRepository {
	if m == nil {
		panic("Mongo handle is not initialized for LockerRepository")
	}
	return &mongoLockerRepository{collection: m.Lockers()}
}

// Create inserts a new locker document. The caller is responsible for
// populating the id field; the unique index rejects a reused one.
func (r *mongoLockerRepository) Create(ctx context.Context, locker *models.Locker) error {
	if locker.ID == "" {
		return errors.New("locker id cannot be empty for Create operation")
	}
	if _, err := r.collection.InsertOne(ctx, locker); err != nil {
		return fmt.Errorf("failed to create locker: %w", err)
	}
	return nil
}

// GetByID retrieves a locker document by its application id.
func (r *mongoLockerRepository) GetByID(ctx context.Context, lockerID string) (*models.Locker, error) {
	if lockerID == "" {
		return nil, errors.New("lockerID cannot be empty for GetByID operation")
	}

	var locker models.Locker
	err := r.collection.FindOne(ctx, bson.M{"id": lockerID}).Decode(&locker)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("locker with ID '%s' not found: %w", lockerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get locker with ID '%s': %w", lockerID, err)
	}
	return &locker, nil
}

// GetByOwnerID retrieves all lockers owned by a specific user.
func (r *mongoLockerRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Locker, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for GetByOwnerID operation")
	}

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to query lockers for owner '%s': %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var lockers []*models.Locker
	if err := cursor.All(ctx, &lockers); err != nil {
		return nil, fmt.Errorf("failed to decode lockers for owner '%s': %w", ownerID, err)
	}
	return lockers, nil
}

// PushItem appends itemID to the named array field. The append and the
// updatedAt bump happen in one FindOneAndUpdate command, so concurrent
// appends from different callers cannot lose an update. Duplicates are
// permitted; $push does not deduplicate.
func (r *mongoLockerRepository) PushItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error) {
	return r.updateItems(ctx, lockerID, bson.M{
		"$push": bson.M{field: itemID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// PullItem removes all occurrences of itemID from the named array field.
// $pull is removal-by-value over the whole array, which gives the multiset
// semantics the service contract requires; pulling an absent value matches
// the document and still advances updatedAt.
func (r *mongoLockerRepository) PullItem(ctx context.Context, lockerID, field, itemID string) (*models.Locker, error) {
	return r.updateItems(ctx, lockerID, bson.M{
		"$pull": bson.M{field: itemID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *mongoLockerRepository) updateItems(ctx context.Context, lockerID string, update bson.M) (*models.Locker, error) {
	if lockerID == "" {
		return nil, errors.New("lockerID cannot be empty for item update operation")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Locker
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": lockerID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("locker with ID '%s' not found for update: %w", lockerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update locker with ID '%s': %w", lockerID, err)
	}
	return &updated, nil
}

// Delete removes a locker document permanently and returns the deleted
// document.
func (r *mongoLockerRepository) Delete(ctx context.Context, lockerID string) (*models.Locker, error) {
	if lockerID == "" {
		return nil, errors.New("lockerID cannot be empty for Delete operation")
	}

	var deleted models.Locker
	err := r.collection.FindOneAndDelete(ctx, bson.M{"id": lockerID}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("locker with ID '%s' not found for deletion: %w", lockerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete locker with ID '%s': %w", lockerID, err)
	}
	return &deleted, nil
}
