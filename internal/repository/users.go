package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jahangir2k04/fitflex-client/internal/models"
)

type Users struct {
	collection *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{collection: db.Collection("users")}
}

func (r *Users) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("finding user %s: %w", email, err)
	}
	return user, nil
}

func (r *Users) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("finding users by role: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// Create inserts the user unless one with the same email already exists.
// The second return value reports whether an insert happened.
func (r *Users) Create(ctx context.Context, user models.User) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("checking for existing user: %w", err)
	}

	user.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		// The unique index closes the find-then-insert race.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("inserting user: %w", err)
	}
	return true, nil
}

func (r *Users) UpdateRole(ctx context.Context, id string, role models.UserRole) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invalid("id", "must be a valid object id")
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementTotalStudent bumps the instructor's student counter, creating the
// record if the instructor has never signed in.
func (r *Users) IncrementTotalStudent(ctx context.Context, email string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$inc": bson.M{"totalStudent": 1},
	}, opts)
	if err != nil {
		return fmt.Errorf("incrementing totalStudent for %s: %w", email, err)
	}
	return nil
}
