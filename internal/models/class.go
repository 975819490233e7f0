package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

// Class is an offering owned by an instructor. Seats and enrolled move in
// lockstep during payment completion: one successful payment shifts exactly
// one seat from available to enrolled, so seats+enrolled stays constant.
type Class struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorName  string             `json:"instructorName" bson:"instructorName"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Seats           int                `json:"seats" bson:"seats"`
	Enrolled        int                `json:"enrolled" bson:"enrolled"`
	Price           float64            `json:"price" bson:"price"`
	Status          ClassStatus        `json:"status" bson:"status"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}
