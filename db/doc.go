// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the crowdcheck server.

# Schema

Four tables:

  - account: registered users (bcrypt password hash, admin flag)
  - resource: tracked venues, immutable after creation
  - status_update: append-only condition reports, indexed by
    (resource_id, created_at) for the latest-status query
  - upvote: endorsements with UNIQUE (resource_id, user_id)

The upvote uniqueness constraint is load-bearing: the store maps its
violation to the "already upvoted" outcome instead of running a separate
existence check, which closes the race between concurrent upvotes.

# Usage

Call during startup, after connecting:

	if err := db.CreateSchema(dbConn); err != nil {
		// handle
	}

The DDL is idempotent and portable between postgres (production) and
sqlite (development and tests).
*/
package db
