package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClass is a student's pending intent to enroll. It lives from the
// moment the student picks a class until they either cancel it or a payment
// for that class completes.
type SelectedClass struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentEmail    string             `json:"studentEmail" bson:"studentEmail"`
	ClassID         string             `json:"classId" bson:"classId"`
	ClassName       string             `json:"className" bson:"className"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Price           float64            `json:"price" bson:"price"`
}
