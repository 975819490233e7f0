package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/middleware"
	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

type SelectionHandler struct {
	selections repository.SelectionStore
	log        *zap.SugaredLogger
}

func NewSelectionHandler(selections repository.SelectionStore, log *zap.SugaredLogger) *SelectionHandler {
	return &SelectionHandler{selections: selections, log: log}
}

// GetSelections lists the pending selections for the email in the query.
// Students can only read their own.
func (h *SelectionHandler) GetSelections(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.SelectedClass{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		writeError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	selections, err := h.selections.FindByStudent(ctx, email)
	if err != nil {
		h.log.Errorw("failed to fetch selections", "email", email, "error", err)
		writeFailure(w, err)
		return
	}
	if selections == nil {
		selections = []models.SelectedClass{}
	}

	writeJSON(w, http.StatusOK, selections)
}

// CreateSelection records a student's intent to enroll. A second selection
// of the same class by the same student reports "already selected" instead
// of creating a duplicate.
func (h *SelectionHandler) CreateSelection(w http.ResponseWriter, r *http.Request) {
	var sel models.SelectedClass
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	// The owner is always the caller, whatever the body says.
	sel.StudentEmail = claims.Email

	if _, err := primitive.ObjectIDFromHex(sel.ClassID); err != nil {
		writeFailure(w, models.Invalid("classId", "must be a valid object id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	exists, err := h.selections.Exists(ctx, sel.StudentEmail, sel.ClassID)
	if err != nil {
		h.log.Errorw("failed to check existing selection", "email", sel.StudentEmail, "error", err)
		writeFailure(w, err)
		return
	}
	if exists {
		writeJSON(w, http.StatusOK, map[string]string{"message": "class already selected"})
		return
	}

	created, err := h.selections.Insert(ctx, sel)
	if err != nil {
		h.log.Errorw("failed to create selection", "email", sel.StudentEmail, "error", err)
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteSelection is the student's explicit cancellation of a pending
// selection. Payment completion removes selections implicitly instead.
func (h *SelectionHandler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.selections.DeleteByID(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorw("failed to delete selection", "id", id, "error", err)
		}
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
