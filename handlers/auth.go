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
	"github.com/danielhkuo/crowdcheck/session"
	"github.com/danielhkuo/crowdcheck/store"
)

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

type authPageData struct {
	Username string
	Error    string
}

type profileData struct {
	Username string
	IsAdmin  bool
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", authPageData{})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// The form field is named username but carries the email address
	email := r.FormValue("username")
	password := r.FormValue("password")

	acct, err := h.store.SignIn(email, password)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidCredentials) {
			slog.Error("sign-in failed", "error", err)
		}
		render(w, "login.html", authPageData{Error: "Invalid credentials. Please try again."})
		return
	}

	h.startSession(w, r, acct, "login.html")
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, "register.html", authPageData{})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("username")
	password := r.FormValue("password")

	if email == "" || password == "" {
		render(w, "register.html", authPageData{Error: "Email and password are required."})
		return
	}

	// New accounts are never admins unless bootstrapped through the
	// configured ADMIN_EMAILS list; /admin/grant handles the rest.
	isAdmin := h.cfg.IsAdminEmail(email)

	acct, err := h.store.SignUp(email, password, isAdmin)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			render(w, "register.html", authPageData{Error: "An account with that email already exists."})
			return
		}
		slog.Error("sign-up failed", "error", err)
		render(w, "register.html", authPageData{Error: "Something went wrong. Please try again."})
		return
	}

	slog.Info("account created", "account_id", acct.ID, "is_admin", acct.IsAdmin)

	h.startSession(w, r, acct, "register.html")
}

// startSession issues a signed token, sets the cookie, and redirects to
// the profile page. errPage names the form to re-render if issuing fails.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, acct models.Account, errPage string) {
	token, err := session.Issue(h.cfg.SessionSecret, acct.ID, acct.Email, acct.IsAdmin)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		render(w, errPage, authPageData{Error: "Something went wrong. Please try again."})
		return
	}

	session.SetCookie(w, token)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile handles GET /profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.CurrentUser(r)
	render(w, "profile.html", profileData{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	})
}
