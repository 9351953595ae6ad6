package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/prakash/ats-cv-generator/internal/server/middleware"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// ProfileStore is the subset of database operations the profile handler needs.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, snapshot *types.ProfileSnapshot) error
	FetchProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error)
}

// ProfileHandler handles candidate profile HTTP requests.
type ProfileHandler struct {
	store ProfileStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Get returns the authenticated user's profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshot, err := h.store.FetchProfile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snapshot == nil {
		notFound := &ErrProfileNotFound{UserID: userID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// Upsert creates or replaces the authenticated user's profile.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.ProfileUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshot := &types.ProfileSnapshot{
		UserID:          userID,
		PersonalDetails: req.PersonalDetails,
		Education:       req.Education,
		Skills:          req.Skills,
		Projects:        req.Projects,
		Internships:     req.Internships,
		Certifications:  req.Certifications,
		Achievements:    req.Achievements,
	}

	if err := h.store.UpsertProfile(r.Context(), userID, snapshot); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
