package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jahangir2k04/fitflex-client/internal/models"
)

type Classes struct {
	collection *mongo.Collection
}

func NewClasses(db *mongo.Database) *Classes {
	return &Classes{collection: db.Collection("classes")}
}

func (r *Classes) FindAll(ctx context.Context) ([]models.Class, error) {
	// No status filter: pending and denied classes come back too, filtering
	// is the front-end's concern.
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decoding classes: %w", err)
	}
	return classes, nil
}

func (r *Classes) FindByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"instructorEmail": email})
	if err != nil {
		return nil, fmt.Errorf("finding classes for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decoding classes: %w", err)
	}
	return classes, nil
}

func (r *Classes) Insert(ctx context.Context, class models.Class) (models.Class, error) {
	class.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, class); err != nil {
		return models.Class{}, fmt.Errorf("inserting class: %w", err)
	}
	return class, nil
}

func (r *Classes) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invalid("id", "must be a valid object id")
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return fmt.Errorf("updating class status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Classes) UpdateFeedback(ctx context.Context, id string, feedback string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invalid("id", "must be a valid object id")
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"feedback": feedback},
	})
	if err != nil {
		return fmt.Errorf("updating class feedback: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReserveSeat atomically moves one seat from available to enrolled. The
// seats > 0 guard makes concurrent payments for the last seat race safely:
// exactly one of them matches, the rest get ErrNoSeats.
func (r *Classes) ReserveSeat(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invalid("classId", "must be a valid object id")
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objID, "seats": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"seats": -1, "enrolled": 1}},
	)
	if err != nil {
		return fmt.Errorf("reserving seat on class %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing class from a full one.
		if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("checking class %s: %w", id, err)
		}
		return ErrNoSeats
	}
	return nil
}
