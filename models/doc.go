// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data types shared across the crowdcheck server.

# Persisted Types

Four row types map directly to tables:

  - Resource: a venue being tracked (gym, dining hall, lab)
  - StatusUpdate: an append-only report of a resource's conditions
  - Upvote: one user's endorsement of a resource, unique per (resource, user)
  - Account: a registered user with a bcrypt password hash

StatusUpdate history is never mutated. The current state of a resource is
whichever of its rows has the latest created_at.

# View Types

Post is the derived record the feed renders: a resource joined with its
latest status update and its upvote count. It exists only in memory.

Resources with no status updates render the sentinels NoStatusMessage and
NotAvailable instead of real fields.

# Wire Types

UpvoteRequest/UpvoteResponse and ErrorResponse define the JSON surface of
the /upvote endpoint.
*/
package models
