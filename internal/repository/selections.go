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

type Selections struct {
	collection *mongo.Collection
}

func NewSelections(db *mongo.Database) *Selections {
	return &Selections{collection: db.Collection("selectedClasses")}
}

func (r *Selections) FindByStudent(ctx context.Context, email string) ([]models.SelectedClass, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"studentEmail": email})
	if err != nil {
		return nil, fmt.Errorf("finding selections for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var selections []models.SelectedClass
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, fmt.Errorf("decoding selections: %w", err)
	}
	return selections, nil
}

func (r *Selections) Exists(ctx context.Context, studentEmail, classID string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{
		"studentEmail": studentEmail,
		"classId":      classID,
	}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("checking for existing selection: %w", err)
}

func (r *Selections) Insert(ctx context.Context, sel models.SelectedClass) (models.SelectedClass, error) {
	sel.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, sel); err != nil {
		return models.SelectedClass{}, fmt.Errorf("inserting selection: %w", err)
	}
	return sel, nil
}

func (r *Selections) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Invalid("id", "must be a valid object id")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("deleting selection %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByStudentAndClass removes every selection the student holds for the
// class and reports how many went away. Zero matches is not an error: the
// student may have paid without selecting first.
func (r *Selections) DeleteByStudentAndClass(ctx context.Context, studentEmail, classID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{
		"studentEmail": studentEmail,
		"classId":      classID,
	})
	if err != nil {
		return 0, fmt.Errorf("deleting selections for (%s, %s): %w", studentEmail, classID, err)
	}
	return result.DeletedCount, nil
}
