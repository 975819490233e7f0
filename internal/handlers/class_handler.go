package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

type ClassHandler struct {
	classes repository.ClassStore
	log     *zap.SugaredLogger
}

func NewClassHandler(classes repository.ClassStore, log *zap.SugaredLogger) *ClassHandler {
	return &ClassHandler{classes: classes, log: log}
}

// GetClasses returns every class regardless of approval status.
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	classes, err := h.classes.FindAll(ctx)
	if err != nil {
		h.log.Errorw("failed to fetch classes", "error", err)
		writeFailure(w, err)
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	writeJSON(w, http.StatusOK, classes)
}

// CreateClass inserts a new offering. Status always starts as pending; only
// an admin decision moves it to approved or denied.
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var newClass models.Class
	if err := json.NewDecoder(r.Body).Decode(&newClass); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if newClass.Name == "" {
		writeFailure(w, models.Invalid("name", "must not be empty"))
		return
	}
	if newClass.InstructorEmail == "" {
		writeFailure(w, models.Invalid("instructorEmail", "must not be empty"))
		return
	}
	if newClass.Seats < 0 {
		writeFailure(w, models.Invalid("seats", "must not be negative"))
		return
	}
	if newClass.Price < 0 {
		writeFailure(w, models.Invalid("price", "must not be negative"))
		return
	}

	newClass.Status = models.StatusPending
	newClass.Enrolled = 0
	newClass.Feedback = ""

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := h.classes.Insert(ctx, newClass)
	if err != nil {
		h.log.Errorw("failed to create class", "instructor", newClass.InstructorEmail, "error", err)
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ClassHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status models.ClassStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	switch body.Status {
	case models.StatusApproved, models.StatusDenied, models.StatusPending:
	default:
		writeFailure(w, models.Invalid("status", "must be pending, approved or denied"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.classes.UpdateStatus(ctx, id, body.Status); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorw("failed to update class status", "id", id, "error", err)
		}
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"modified": true})
}

func (h *ClassHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.classes.UpdateFeedback(ctx, id, body.Feedback); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorw("failed to update class feedback", "id", id, "error", err)
		}
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"modified": true})
}

// MyClasses lists the calling instructor's own offerings.
func (h *ClassHandler) MyClasses(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.Class{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	classes, err := h.classes.FindByInstructor(ctx, email)
	if err != nil {
		h.log.Errorw("failed to fetch instructor classes", "email", email, "error", err)
		writeFailure(w, err)
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	writeJSON(w, http.StatusOK, classes)
}
