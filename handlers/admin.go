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

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

type adminPageData struct {
	Username string
	Accounts []models.Account
}

// Page handles GET /admin
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	claims := middleware.CurrentUser(r)

	accounts, err := h.store.ListAccounts()
	if err != nil {
		slog.Error("failed to list accounts", "error", err)
		// Page still renders, just without the table
	}

	render(w, "admin.html", adminPageData{
		Username: claims.Username,
		Accounts: accounts,
	})
}

// Grant handles POST /admin/grant. The only elevation path besides the
// registration-time ADMIN_EMAILS bootstrap.
func (h *AdminHandler) Grant(w http.ResponseWriter, r *http.Request) {
	accountID := r.FormValue("account_id")
	if accountID == "" {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	err := h.store.GrantAdmin(accountID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to grant admin", "account_id", accountID, "error", err)
		http.Error(w, "Failed to grant admin", http.StatusInternalServerError)
		return
	}

	slog.Info("admin granted", "account_id", accountID, "granted_by", middleware.CurrentUser(r).UserID)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
