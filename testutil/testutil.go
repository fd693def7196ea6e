// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/crowdcheck/cliparse"
	"github.com/danielhkuo/crowdcheck/db"
	"github.com/danielhkuo/crowdcheck/models"
	"github.com/danielhkuo/crowdcheck/session"
	"github.com/danielhkuo/crowdcheck/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive for the test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8471,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
	}
}

// CreateTestAccount registers an account through the store and returns it
func CreateTestAccount(t *testing.T, st *store.Store, email string, isAdmin bool) models.Account {
	t.Helper()

	acct, err := st.SignUp(email, "password123", isAdmin)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
	return acct
}

// CreateTestResource inserts a resource and returns its ID
func CreateTestResource(t *testing.T, st *store.Store, name string) string {
	t.Helper()

	id := uuid.NewString()
	err := st.CreateResource(models.Resource{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test resource: %v", err)
	}
	return id
}

// AddTestStatus appends a status update with an explicit timestamp
func AddTestStatus(t *testing.T, st *store.Store, resourceID, userID, message, crowd, chips, queue string, at time.Time) string {
	t.Helper()

	id := uuid.NewString()
	err := st.AppendStatus(models.StatusUpdate{
		ID:             id,
		ResourceID:     resourceID,
		StatusMessage:  message,
		CrowdLevel:     crowd,
		ChipsAvailable: chips,
		QueueLength:    queue,
		UserID:         userID,
		CreatedAt:      at,
	})
	if err != nil {
		t.Fatalf("Failed to add test status: %v", err)
	}
	return id
}

// SessionCookie returns a valid session cookie for the account
func SessionCookie(t *testing.T, cfg cliparse.Config, acct models.Account) *http.Cookie {
	t.Helper()

	token, err := session.Issue(cfg.SessionSecret, acct.ID, acct.Email, acct.IsAdmin)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// MakeFormRequest creates a urlencoded form request
func MakeFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 redirect to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
