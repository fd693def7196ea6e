// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowdcheck/cliparse"
	"github.com/danielhkuo/crowdcheck/middleware"
	"github.com/danielhkuo/crowdcheck/models"
	"github.com/danielhkuo/crowdcheck/store"
)

type UpvoteHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewUpvoteHandler(st *store.Store, cfg cliparse.Config) *UpvoteHandler {
	return &UpvoteHandler{store: st, cfg: cfg}
}

// Upvote handles POST /upvote. The insert itself is the duplicate check:
// the unique constraint on (resource_id, user_id) comes back as
// ErrDuplicate, which maps to 409.
func (h *UpvoteHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	claims := middleware.CurrentUser(r)

	var req models.UpvoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing data")
		return
	}

	if req.ResourceID == "" || claims == nil || claims.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing data")
		return
	}

	err := h.store.AddUpvote(req.ResourceID, claims.UserID)
	if errors.Is(err, store.ErrDuplicate) {
		middleware.ErrorResponse(w, http.StatusConflict, "Already upvoted")
		return
	}
	if err != nil {
		slog.Error("failed to insert upvote", "resource_id", req.ResourceID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	count, err := h.store.CountUpvotes(req.ResourceID)
	if err != nil {
		slog.Error("failed to count upvotes", "resource_id", req.ResourceID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("upvote recorded", "resource_id", req.ResourceID, "user_id", claims.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.UpvoteResponse{
		Success: true,
		Upvotes: count,
	})
}
