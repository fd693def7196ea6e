// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/crowdcheck/cliparse"
	"github.com/danielhkuo/crowdcheck/handlers"
	"github.com/danielhkuo/crowdcheck/middleware"
	"github.com/danielhkuo/crowdcheck/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	st := store.New(db)
	secret := cfg.SessionSecret

	// Initialize handlers
	feedHandler := handlers.NewFeedHandler(st, cfg)
	authHandler := handlers.NewAuthHandler(st, cfg)
	postHandler := handlers.NewPostHandler(st, cfg)
	upvoteHandler := handlers.NewUpvoteHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(feedHandler.Index))
	mux.HandleFunc("GET /about", middleware.WithLogging(feedHandler.About))

	// Authentication
	mux.HandleFunc("GET /login", middleware.WithLogging(authHandler.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /register", middleware.WithLogging(authHandler.RegisterForm))
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("GET /logout", middleware.WithLogging(middleware.RequireLogin(secret, authHandler.Logout)))
	mux.HandleFunc("GET /profile", middleware.WithLogging(middleware.RequireLogin(secret, authHandler.Profile)))

	// Admin (guards stack: login first, then the admin flag)
	mux.HandleFunc("GET /admin", middleware.WithLogging(middleware.RequireLogin(secret, middleware.RequireAdmin(adminHandler.Page))))
	mux.HandleFunc("POST /admin/grant", middleware.WithLogging(middleware.RequireLogin(secret, middleware.RequireAdmin(adminHandler.Grant))))

	// Posts
	mux.HandleFunc("GET /create_post", middleware.WithLogging(middleware.RequireLogin(secret, postHandler.CreatePostForm)))
	mux.HandleFunc("POST /create_post", middleware.WithLogging(middleware.RequireLogin(secret, postHandler.CreatePost)))
	mux.HandleFunc("POST /update_post/{id}", middleware.WithLogging(middleware.RequireLogin(secret, postHandler.UpdatePost)))

	// Upvotes
	mux.HandleFunc("POST /upvote", middleware.WithLogging(middleware.RequireLogin(secret, upvoteHandler.Upvote)))

	return mux
}
