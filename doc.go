// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the crowdcheck server.

Crowdcheck is a small community site for venue conditions: users post
status updates (crowd level, chips available, queue length) for tracked
venues, and upvote the venues worth watching. The feed ranks venues by
upvote count, always showing each one's most recent status.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=app.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 8471 -d app.db -session-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - SESSION_SECRET (-session-secret): secret for session token signing

Optional settings:

  - PORT (-p): server port (default: 8471)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ADMIN_EMAILS (-admin-emails): bootstrap admins at registration

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (feed, auth, posts, upvote, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, login/admin guards
  - models: row and view-model types
  - session: signed session tokens
  - store: typed data-access layer
  - db: schema creation
  - cliparse: configuration parsing
  - templates: embedded HTML pages

See package documentation for each component.
*/
package main
