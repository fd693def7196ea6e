// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the subset shared by postgres and sqlite; created_at
// columns have no database default, callers always set them explicitly.
//
// The REFERENCES clauses are enforced on postgres only: sqlite ignores
// them unless PRAGMA foreign_keys is enabled per connection, and the dev
// driver connects without it. Inserts against an unknown parent id
// therefore succeed on sqlite and fail on postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

-- Resources (venues)
CREATE TABLE IF NOT EXISTS resource (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    image_url TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Status updates (append-only history)
CREATE TABLE IF NOT EXISTS status_update (
    id TEXT PRIMARY KEY,
    resource_id TEXT NOT NULL REFERENCES resource(id) ON DELETE CASCADE,
    status_message TEXT NOT NULL,
    crowd_level TEXT NOT NULL,
    chips_available TEXT NOT NULL,
    queue_length TEXT NOT NULL,
    user_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_status_update_resource ON status_update(resource_id, created_at);

-- Upvotes. The UNIQUE constraint is the "already upvoted" signal;
-- there is deliberately no application-level existence check.
CREATE TABLE IF NOT EXISTS upvote (
    id TEXT PRIMARY KEY,
    resource_id TEXT NOT NULL REFERENCES resource(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    UNIQUE (resource_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_upvote_resource ON upvote(resource_id);
`
