// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the crowdcheck server.

Routes use Go 1.22+ method/pattern matching on the standard ServeMux.
Guards are composed at registration, innermost handler last:

	RequireLogin(secret, handler)                 // needs a session
	RequireLogin(secret, RequireAdmin(handler))   // needs an admin session

# Route Table

Public:

	GET  /            ranked post feed
	GET  /about       static page
	GET  /health      liveness probe
	GET,POST /login   login form / authenticate
	GET,POST /register

Authenticated:

	GET  /profile
	GET  /logout
	GET,POST /create_post
	POST /update_post/{id}
	POST /upvote          (JSON)

Admin:

	GET  /admin
	POST /admin/grant
*/
package router
