// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/crowdcheck/models"
)

// Sentinel errors returned by the store. Callers branch with errors.Is
// instead of inspecting driver errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate row")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is the narrow client surface over the backing database: inserts,
// equality-filtered selects with order/limit, counts, and account
// sign-up/sign-in. Handlers never run SQL directly.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation recognizes unique-constraint failures from both the
// sqlite and postgres drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// CreateResource inserts a new resource row. Resources are immutable
// after creation; there is no update or delete path.
func (s *Store) CreateResource(res models.Resource) error {
	_, err := s.db.Exec(`
		INSERT INTO resource (id, name, image_url, created_at)
		VALUES ($1, $2, $3, $4)
	`, res.ID, res.Name, res.ImageURL, res.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ListResources returns every resource. Unbounded by design: the feed
// shows all venues and the data set stays small.
func (s *Store) ListResources() ([]models.Resource, error) {
	rows, err := s.db.Query(`
		SELECT id, name, image_url, created_at
		FROM resource
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.ImageURL, &res.CreatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// LatestStatus returns the newest status update for a resource, or
// ErrNotFound when it has none.
func (s *Store) LatestStatus(resourceID string) (models.StatusUpdate, error) {
	var su models.StatusUpdate
	err := s.db.QueryRow(`
		SELECT id, resource_id, status_message, crowd_level, chips_available, queue_length, user_id, created_at
		FROM status_update
		WHERE resource_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, resourceID).Scan(
		&su.ID, &su.ResourceID, &su.StatusMessage, &su.CrowdLevel,
		&su.ChipsAvailable, &su.QueueLength, &su.UserID, &su.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return models.StatusUpdate{}, ErrNotFound
	}
	if err != nil {
		return models.StatusUpdate{}, err
	}
	return su, nil
}

// AppendStatus inserts a new status update row. History is append-only;
// existing rows are never touched.
func (s *Store) AppendStatus(su models.StatusUpdate) error {
	_, err := s.db.Exec(`
		INSERT INTO status_update (id, resource_id, status_message, crowd_level, chips_available, queue_length, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, su.ID, su.ResourceID, su.StatusMessage, su.CrowdLevel,
		su.ChipsAvailable, su.QueueLength, su.UserID, su.CreatedAt)
	return err
}

// CountUpvotes returns the number of upvotes for a resource.
func (s *Store) CountUpvotes(resourceID string) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(id) FROM upvote WHERE resource_id = $1
	`, resourceID).Scan(&n)
	return n, err
}

// AddUpvote records userID's upvote of resourceID. The unique constraint
// on (resource_id, user_id) is the duplicate check - no read-then-write
// sequence, so concurrent upvotes from one user cannot both land. A
// violation comes back as ErrDuplicate.
func (s *Store) AddUpvote(resourceID, userID string) error {
	_, err := s.db.Exec(`
		INSERT INTO upvote (id, resource_id, user_id)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), resourceID, userID)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
