// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer for the crowdcheck server.

The store wraps *sql.DB with typed operations and sentinel errors so
handlers decide between fallback and propagation instead of swallowing
driver errors:

  - ErrNotFound: the row does not exist
  - ErrDuplicate: a unique constraint rejected the write
  - ErrInvalidCredentials: sign-in failed

# Operations

Resources and statuses:

	st.CreateResource(res)          // immutable after creation
	st.ListResources()              // unbounded, feed-sized data
	st.LatestStatus(resourceID)     // newest row wins, ErrNotFound if none
	st.AppendStatus(su)             // append-only history

Upvotes:

	st.AddUpvote(resourceID, userID)  // ErrDuplicate = already upvoted
	st.CountUpvotes(resourceID)

The upvote insert relies on the UNIQUE (resource_id, user_id) constraint
rather than a check-then-act read, so the duplicate check cannot race.

Accounts:

	st.SignUp(email, password, isAdmin)  // bcrypt hash, ErrDuplicate on taken email
	st.SignIn(email, password)           // ErrInvalidCredentials on any mismatch
	st.ListAccounts()
	st.GrantAdmin(accountID)
*/
package store
