package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed charge. Seats and Enrolled
// hold the client's snapshot at checkout time for auditing; the authoritative
// counters live on the Class document and are moved with an atomic update.
type Payment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IdempotencyKey  string             `json:"idempotencyKey" bson:"idempotencyKey"`
	StudentEmail    string             `json:"studentEmail" bson:"studentEmail"`
	TransactionID   string             `json:"transactionId" bson:"transactionId"`
	Price           float64            `json:"price" bson:"price"`
	Date            time.Time          `json:"date" bson:"date"`
	ClassID         string             `json:"classId" bson:"classId"`
	ClassName       string             `json:"className" bson:"className"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Seats           int                `json:"seats" bson:"seats"`
	Enrolled        int                `json:"enrolled" bson:"enrolled"`
}
