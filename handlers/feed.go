// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/crowdcheck/cliparse"
	"github.com/danielhkuo/crowdcheck/models"
	"github.com/danielhkuo/crowdcheck/session"
	"github.com/danielhkuo/crowdcheck/store"
)

type FeedHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewFeedHandler(st *store.Store, cfg cliparse.Config) *FeedHandler {
	return &FeedHandler{store: st, cfg: cfg}
}

// ListPosts assembles the ranked feed: every resource joined with its
// latest status update and its upvote count, sorted by upvotes
// descending. Ties land in no particular order.
//
// This runs two queries per resource on purpose. The data set is
// feed-sized; a single aggregate query would be the move at real scale,
// but the contract here is latest-status-wins, count ranking, and
// soft-fail, not throughput.
//
// Failure handling: if the resource listing itself fails, the feed
// degrades to empty. A failed per-resource query degrades only that post
// to its sentinel fields or a zero count, so one bad row cannot take the
// page down.
func ListPosts(st *store.Store) []models.Post {
	resources, err := st.ListResources()
	if err != nil {
		slog.Error("failed to list resources", "error", err)
		return []models.Post{}
	}

	posts := make([]models.Post, 0, len(resources))
	for _, res := range resources {
		post := models.Post{
			ID:          res.ID,
			Title:       res.Name,
			Description: models.NoStatusMessage,
			Crowd:       models.NotAvailable,
			Chips:       models.NotAvailable,
			Queue:       models.NotAvailable,
		}
		if res.ImageURL != nil {
			post.ImageURL = *res.ImageURL
		}

		su, err := st.LatestStatus(res.ID)
		switch {
		case err == nil:
			post.Description = su.StatusMessage
			post.Crowd = su.CrowdLevel
			post.Chips = su.ChipsAvailable
			post.Queue = su.QueueLength
			post.Updated = humanize.Time(su.CreatedAt)
		case errors.Is(err, store.ErrNotFound):
			// no updates yet, sentinels stand
		default:
			slog.Error("failed to fetch latest status", "resource_id", res.ID, "error", err)
		}

		count, err := st.CountUpvotes(res.ID)
		if err != nil {
			slog.Error("failed to count upvotes", "resource_id", res.ID, "error", err)
		} else {
			post.Upvotes = count
		}

		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Upvotes > posts[j].Upvotes
	})

	return posts
}

type feedData struct {
	Username string
	Posts    []models.Post
}

// username returns the session username for nav rendering on public
// pages, or "" when logged out. Public pages never redirect.
func (h *FeedHandler) username(r *http.Request) string {
	claims, err := session.FromRequest(r, h.cfg.SessionSecret)
	if err != nil {
		return ""
	}
	return claims.Username
}

// Index handles GET /
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, "index.html", feedData{
		Username: h.username(r),
		Posts:    ListPosts(h.store),
	})
}

// About handles GET /about
func (h *FeedHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, "about.html", feedData{Username: h.username(r)})
}
