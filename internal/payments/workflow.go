package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

// CompletionRequest is the payload posted after the processor confirms a
// charge. Seats and Enrolled are the client's snapshot of the class at
// checkout; they are recorded on the payment but never written back to the
// class, which is updated atomically instead.
type CompletionRequest struct {
	IdempotencyKey  string    `json:"idempotencyKey"`
	ClassID         string    `json:"classId"`
	StudentEmail    string    `json:"studentEmail"`
	InstructorEmail string    `json:"instructorEmail"`
	TransactionID   string    `json:"transactionId"`
	ClassName       string    `json:"className"`
	Price           float64   `json:"price"`
	Seats           int       `json:"seats"`
	Enrolled        int       `json:"enrolled"`
	Date            time.Time `json:"date"`
}

// CompletionResult reports what each step of the workflow did. The steps are
// sequential with no rollback, so on failure the flags show how far the
// chain got before stopping.
type CompletionResult struct {
	Payment           models.Payment `json:"payment"`
	Replayed          bool           `json:"replayed"`
	SelectionsRemoved int64          `json:"selectionsRemoved"`
	SeatReserved      bool           `json:"seatReserved"`
	InstructorUpdated bool           `json:"instructorUpdated"`
}

// Workflow applies the multi-collection state transition behind a completed
// charge: record the payment, clear the pending selection, move a seat from
// available to enrolled, and credit the instructor.
type Workflow struct {
	payments   repository.PaymentStore
	selections repository.SelectionStore
	classes    repository.ClassStore
	users      repository.UserStore
	log        *zap.SugaredLogger
	notify     func(payment models.Payment)
}

func NewWorkflow(
	payments repository.PaymentStore,
	selections repository.SelectionStore,
	classes repository.ClassStore,
	users repository.UserStore,
	log *zap.SugaredLogger,
) *Workflow {
	return &Workflow{
		payments:   payments,
		selections: selections,
		classes:    classes,
		users:      users,
		log:        log,
	}
}

// OnCompleted registers a hook invoked in its own goroutine after the whole
// chain succeeds. Used for the receipt email.
func (w *Workflow) OnCompleted(fn func(payment models.Payment)) {
	w.notify = fn
}

func (w *Workflow) validate(req CompletionRequest) error {
	if _, err := primitive.ObjectIDFromHex(req.ClassID); err != nil {
		return models.Invalid("classId", "must be a valid object id")
	}
	if req.StudentEmail == "" {
		return models.Invalid("studentEmail", "must not be empty")
	}
	if req.InstructorEmail == "" {
		return models.Invalid("instructorEmail", "must not be empty")
	}
	if req.Price <= 0 {
		return models.Invalid("price", "must be positive")
	}
	return nil
}

// Complete runs the four writes in order and stops at the first failure.
// Earlier writes are not compensated; the returned result shows which steps
// applied so the caller can see any partial state.
func (w *Workflow) Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error) {
	var result CompletionResult

	if err := w.validate(req); err != nil {
		return result, err
	}

	// A replayed idempotency key means the charge was already processed:
	// return the stored payment without touching anything.
	if req.IdempotencyKey != "" {
		existing, err := w.payments.FindByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			result.Payment = existing
			result.Replayed = true
			return result, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return result, fmt.Errorf("checking idempotency key: %w", err)
		}
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	payment, err := w.payments.Insert(ctx, models.Payment{
		IdempotencyKey:  key,
		StudentEmail:    req.StudentEmail,
		TransactionID:   req.TransactionID,
		Price:           req.Price,
		Date:            req.Date,
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		InstructorEmail: req.InstructorEmail,
		Seats:           req.Seats,
		Enrolled:        req.Enrolled,
	})
	if err != nil {
		return result, fmt.Errorf("recording payment: %w", err)
	}
	result.Payment = payment

	removed, err := w.selections.DeleteByStudentAndClass(ctx, req.StudentEmail, req.ClassID)
	if err != nil {
		w.log.Errorw("payment recorded but selection cleanup failed",
			"classId", req.ClassID, "student", req.StudentEmail, "error", err)
		return result, fmt.Errorf("clearing selection: %w", err)
	}
	result.SelectionsRemoved = removed

	if err := w.classes.ReserveSeat(ctx, req.ClassID); err != nil {
		w.log.Errorw("payment recorded but seat reservation failed",
			"classId", req.ClassID, "student", req.StudentEmail, "error", err)
		return result, fmt.Errorf("reserving seat: %w", err)
	}
	result.SeatReserved = true

	if err := w.users.IncrementTotalStudent(ctx, req.InstructorEmail); err != nil {
		w.log.Errorw("payment recorded but instructor counter update failed",
			"instructor", req.InstructorEmail, "error", err)
		return result, fmt.Errorf("updating instructor: %w", err)
	}
	result.InstructorUpdated = true

	if w.notify != nil {
		go w.notify(payment)
	}

	return result, nil
}
