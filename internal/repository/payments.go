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

type Payments struct {
	collection *mongo.Collection
}

func NewPayments(db *mongo.Database) *Payments {
	return &Payments{collection: db.Collection("payments")}
}

func (r *Payments) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, payment); err != nil {
		return models.Payment{}, fmt.Errorf("inserting payment: %w", err)
	}
	return payment, nil
}

// FindByStudent returns the student's payments newest first.
func (r *Payments) FindByStudent(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"studentEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding payments for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decoding payments: %w", err)
	}
	return payments, nil
}

func (r *Payments) FindByIdempotencyKey(ctx context.Context, key string) (models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"idempotencyKey": key}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Payment{}, ErrNotFound
		}
		return models.Payment{}, fmt.Errorf("finding payment by key: %w", err)
	}
	return payment, nil
}
