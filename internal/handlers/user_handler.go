package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jahangir2k04/fitflex-client/internal/auth"
	"github.com/jahangir2k04/fitflex-client/internal/middleware"
	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

type UserHandler struct {
	users  repository.UserStore
	tokens *auth.Service
	log    *zap.SugaredLogger
}

func NewUserHandler(users repository.UserStore, tokens *auth.Service, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, log: log}
}

// IssueToken signs a short-lived token for the identity in the request body.
// The front-end calls this right after its own sign-in flow completes.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if identity.Email == "" {
		writeFailure(w, models.Invalid("email", "must not be empty"))
		return
	}

	token, err := h.tokens.Issue(identity.Email, identity.Name)
	if err != nil {
		h.log.Errorw("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := h.users.FindAll(ctx)
	if err != nil {
		h.log.Errorw("failed to fetch users", "error", err)
		writeFailure(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// CreateUser registers a user on first sign-in. A repeated sign-in with the
// same email is not an error, it just reports the account already exists.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if newUser.Email == "" {
		writeFailure(w, models.Invalid("email", "must not be empty"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	inserted, err := h.users.Create(ctx, newUser)
	if err != nil {
		h.log.Errorw("failed to create user", "email", newUser.Email, "error", err)
		writeFailure(w, err)
		return
	}
	if !inserted {
		writeJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}

	writeJSON(w, http.StatusCreated, newUser)
}

// UpdateRole promotes or demotes a user. Because roles are re-read on every
// protected request, the change is visible on the user's next call.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Role models.UserRole `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	switch body.Role {
	case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
	default:
		writeFailure(w, models.Invalid("role", "must be student, instructor or admin"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.users.UpdateRole(ctx, id, body.Role); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Errorw("failed to update role", "id", id, "error", err)
		}
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"modified": true})
}

// CheckAdmin is a soft self-service check: asking about someone else's email
// answers {admin:false} rather than failing, unlike the hard role gates.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.log.Errorw("failed to check admin role", "email", email, "error", err)
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"admin": user.Role == models.RoleAdmin})
}

// CheckInstructor mirrors CheckAdmin for the instructor role.
func (h *UserHandler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		writeJSON(w, http.StatusOK, map[string]bool{"instructor": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.log.Errorw("failed to check instructor role", "email", email, "error", err)
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"instructor": user.Role == models.RoleInstructor})
}

func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	instructors, err := h.users.FindByRole(ctx, models.RoleInstructor)
	if err != nil {
		h.log.Errorw("failed to fetch instructors", "error", err)
		writeFailure(w, err)
		return
	}
	if instructors == nil {
		instructors = []models.User{}
	}

	writeJSON(w, http.StatusOK, instructors)
}
