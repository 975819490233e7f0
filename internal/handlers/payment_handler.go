package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/middleware"
	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/payments"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

type PaymentHandler struct {
	workflow *payments.Workflow
	intents  payments.IntentCreator
	payments repository.PaymentStore
	log      *zap.SugaredLogger
}

func NewPaymentHandler(
	workflow *payments.Workflow,
	intents payments.IntentCreator,
	store repository.PaymentStore,
	log *zap.SugaredLogger,
) *PaymentHandler {
	return &PaymentHandler{workflow: workflow, intents: intents, payments: store, log: log}
}

// CreateIntent asks the processor for a payment intent and hands the client
// secret back so the front-end can confirm the charge.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if body.Price <= 0 {
		writeFailure(w, models.Invalid("price", "must be positive"))
		return
	}

	clientSecret, err := h.intents.CreateIntent(body.Price)
	if err != nil {
		h.log.Errorw("failed to create payment intent", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// CompletePayment runs the post-charge workflow. The student on the payment
// is always the caller; the rest of the payload comes from the client.
func (h *PaymentHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	var req payments.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	req.StudentEmail = claims.Email

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.workflow.Complete(ctx, req)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// EnrolledClasses lists the caller's payments newest first.
func (h *PaymentHandler) EnrolledClasses(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.Payment{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		writeError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	enrolled, err := h.payments.FindByStudent(ctx, email)
	if err != nil {
		h.log.Errorw("failed to fetch payments", "email", email, "error", err)
		writeFailure(w, err)
		return
	}
	if enrolled == nil {
		enrolled = []models.Payment{}
	}

	writeJSON(w, http.StatusOK, enrolled)
}
