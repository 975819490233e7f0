package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleNone       UserRole = ""
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Name         string             `json:"name" bson:"name"`
	PhotoURL     string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role         UserRole           `json:"role" bson:"role"`
	TotalStudent int                `json:"totalStudent" bson:"totalStudent"`
}
