// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helpers for the crowdcheck
server.

# Guards

Two independent guards compose by stacking at route registration:

	middleware.RequireLogin(secret, handler)                            // auth only
	middleware.RequireLogin(secret, middleware.RequireAdmin(handler))   // auth + admin

RequireLogin verifies the session cookie and redirects unauthenticated
requests to /login. RequireAdmin redirects non-admin sessions to /.
Neither guard ever produces an error response; redirect is the only
failure signal. Handlers behind RequireLogin read the session with
middleware.CurrentUser(r).

# Helpers

  - WithLogging: request start/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with status codes
  - ParseJSONBody: request body decoding
*/
package middleware
