package repository

import (
	"context"
	"errors"

	"github.com/jahangir2k04/fitflex-client/internal/models"
)

// ErrNotFound is returned by find-one operations that match no document.
var ErrNotFound = errors.New("repository: document not found")

// ErrNoSeats is returned when a seat reservation matches a class that has no
// remaining capacity.
var ErrNoSeats = errors.New("repository: no seats remaining")

// UserStore is the typed access surface for the users collection.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	Create(ctx context.Context, user models.User) (inserted bool, err error)
	UpdateRole(ctx context.Context, id string, role models.UserRole) error
	IncrementTotalStudent(ctx context.Context, email string) error
}

// ClassStore is the typed access surface for the classes collection.
type ClassStore interface {
	FindAll(ctx context.Context) ([]models.Class, error)
	FindByInstructor(ctx context.Context, email string) ([]models.Class, error)
	Insert(ctx context.Context, class models.Class) (models.Class, error)
	UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error
	UpdateFeedback(ctx context.Context, id string, feedback string) error
	ReserveSeat(ctx context.Context, id string) error
}

// SelectionStore is the typed access surface for the selectedClasses
// collection.
type SelectionStore interface {
	FindByStudent(ctx context.Context, email string) ([]models.SelectedClass, error)
	Exists(ctx context.Context, studentEmail, classID string) (bool, error)
	Insert(ctx context.Context, sel models.SelectedClass) (models.SelectedClass, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByStudentAndClass(ctx context.Context, studentEmail, classID string) (int64, error)
}

// PaymentStore is the typed access surface for the payments collection.
// Payments are append-only: there is no update or delete.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (models.Payment, error)
	FindByStudent(ctx context.Context, email string) ([]models.Payment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (models.Payment, error)
}
