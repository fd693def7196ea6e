// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/crowdcheck/cliparse"
	"github.com/danielhkuo/crowdcheck/middleware"
	"github.com/danielhkuo/crowdcheck/models"
	"github.com/danielhkuo/crowdcheck/store"
)

type PostHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPostHandler(st *store.Store, cfg cliparse.Config) *PostHandler {
	return &PostHandler{store: st, cfg: cfg}
}

type createPostData struct {
	Username string
	Error    string
}

// CreatePostForm handles GET /create_post
func (h *PostHandler) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	claims := middleware.CurrentUser(r)
	render(w, "create_post.html", createPostData{Username: claims.Username})
}

// CreatePost handles POST /create_post. Inserts the resource, then its
// initial status update. The two writes are sequential, not
// transactional: if the second fails, the orphaned resource simply
// renders with sentinel fields until someone posts an update.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	claims := middleware.CurrentUser(r)

	title := r.FormValue("title")
	if title == "" {
		render(w, "create_post.html", createPostData{
			Username: claims.Username,
			Error:    "Venue name is required.",
		})
		return
	}

	res := models.Resource{
		ID:        uuid.NewString(),
		Name:      title,
		CreatedAt: time.Now(),
	}
	if imageURL := r.FormValue("image_url"); imageURL != "" {
		res.ImageURL = &imageURL
	}

	if err := h.store.CreateResource(res); err != nil {
		slog.Error("failed to create resource", "error", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	su := models.StatusUpdate{
		ID:             uuid.NewString(),
		ResourceID:     res.ID,
		StatusMessage:  r.FormValue("description"),
		CrowdLevel:     r.FormValue("crowd"),
		ChipsAvailable: r.FormValue("chips"),
		QueueLength:    r.FormValue("queue"),
		UserID:         claims.UserID,
		CreatedAt:      time.Now(),
	}

	if err := h.store.AppendStatus(su); err != nil {
		slog.Error("failed to insert initial status", "resource_id", res.ID, "error", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	slog.Info("post created", "resource_id", res.ID, "user_id", claims.UserID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdatePost handles POST /update_post/{id}. Appends a new status row;
// history is never mutated in place.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	resourceID := r.PathValue("id")
	if resourceID == "" {
		http.Error(w, "resource id is required", http.StatusBadRequest)
		return
	}

	claims := middleware.CurrentUser(r)

	su := models.StatusUpdate{
		ID:             uuid.NewString(),
		ResourceID:     resourceID,
		StatusMessage:  r.FormValue("description"),
		CrowdLevel:     r.FormValue("crowd"),
		ChipsAvailable: r.FormValue("chips"),
		QueueLength:    r.FormValue("queue"),
		UserID:         claims.UserID,
		CreatedAt:      time.Now(),
	}

	if err := h.store.AppendStatus(su); err != nil {
		slog.Error("failed to append status", "resource_id", resourceID, "error", err)
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	slog.Info("status appended", "resource_id", resourceID, "user_id", claims.UserID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
