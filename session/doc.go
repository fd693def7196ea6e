// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements signed session tokens for the crowdcheck server.

A session is an HS256-signed JWT carrying exactly three claims - user_id,
username, and is_admin - stored in an HttpOnly cookie. No session state is
kept server-side: logging out is clearing the cookie, and every request is
authenticated by verifying the signature.

# Usage

At login or registration:

	token, err := session.Issue(cfg.SessionSecret, user.ID, user.Email, user.IsAdmin)
	session.SetCookie(w, token)

On guarded requests (done by the middleware package):

	claims, err := session.FromRequest(r, cfg.SessionSecret)

Tokens expire after seven days. Expired or tampered tokens fail Parse and
are treated as logged-out, never as errors shown to the user.
*/
package session
