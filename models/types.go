package models

import "time"

// Sentinel display values for resources with no status updates yet
const (
	NoStatusMessage = "No status updates yet."
	NotAvailable    = "N/A"
)

// Persisted rows

type Resource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusUpdate rows are append-only: changing a resource's state inserts a
// new row, and the row with the maximum created_at wins.
type StatusUpdate struct {
	ID             string    `json:"id"`
	ResourceID     string    `json:"resource_id"`
	StatusMessage  string    `json:"status_message"`
	CrowdLevel     string    `json:"crowd_level"`
	ChipsAvailable string    `json:"chips_available"`
	QueueLength    string    `json:"queue_length"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type Upvote struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	UserID     string `json:"user_id"`
}

type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is the derived, display-ready combination of a resource, its latest
// status update, and its upvote count. Never persisted.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description"`
	Upvotes     int    `json:"upvotes"`
	Comments    int    `json:"comments"` // reserved for a future comment count, always 0
	Crowd       string `json:"crowd"`
	Chips       string `json:"chips"`
	Queue       string `json:"queue"`
	Updated     string `json:"updated,omitempty"` // humanized age of the latest status
}

// Request types

type UpvoteRequest struct {
	ResourceID string `json:"resource_id"`
}

// Response types

type UpvoteResponse struct {
	Success bool `json:"success"`
	Upvotes int  `json:"upvotes"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
