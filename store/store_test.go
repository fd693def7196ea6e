// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/crowdcheck/db"
	"github.com/danielhkuo/crowdcheck/models"
)

// setupStore creates an in-memory database for testing
func setupStore(t *testing.T) *Store {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return New(conn)
}

func testResource(name string) models.Resource {
	return models.Resource{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func TestCreateAndListResources(t *testing.T) {
	st := setupStore(t)

	img := "https://example.com/gym.png"
	withImage := testResource("Gym A")
	withImage.ImageURL = &img

	if err := st.CreateResource(withImage); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}
	if err := st.CreateResource(testResource("Dining Hall")); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	resources, err := st.ListResources()
	if err != nil {
		t.Fatalf("ListResources failed: %v", err)
	}
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}

	byName := map[string]models.Resource{}
	for _, r := range resources {
		byName[r.Name] = r
	}

	if got := byName["Gym A"]; got.ImageURL == nil || *got.ImageURL != img {
		t.Errorf("expected image URL to round-trip, got %v", got.ImageURL)
	}
	if got := byName["Dining Hall"]; got.ImageURL != nil {
		t.Errorf("expected nil image URL, got %v", *got.ImageURL)
	}
}

func TestLatestStatus(t *testing.T) {
	st := setupStore(t)
	res := testResource("Gym A")
	if err := st.CreateResource(res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	// No updates yet
	if _, err := st.LatestStatus(res.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	older := models.StatusUpdate{
		ID: uuid.NewString(), ResourceID: res.ID,
		StatusMessage: "quiet morning", CrowdLevel: "Low",
		ChipsAvailable: "Plenty", QueueLength: "None",
		UserID: "user-1", CreatedAt: base,
	}
	newer := models.StatusUpdate{
		ID: uuid.NewString(), ResourceID: res.ID,
		StatusMessage: "packed", CrowdLevel: "High",
		ChipsAvailable: "Running out", QueueLength: "10 min",
		UserID: "user-2", CreatedAt: base.Add(2 * time.Hour),
	}

	// Insert newest first to prove ordering comes from created_at,
	// not insertion order
	if err := st.AppendStatus(newer); err != nil {
		t.Fatalf("AppendStatus failed: %v", err)
	}
	if err := st.AppendStatus(older); err != nil {
		t.Fatalf("AppendStatus failed: %v", err)
	}

	got, err := st.LatestStatus(res.ID)
	if err != nil {
		t.Fatalf("LatestStatus failed: %v", err)
	}
	if got.StatusMessage != "packed" {
		t.Errorf("expected the newer status to win, got %q", got.StatusMessage)
	}
	if got.CrowdLevel != "High" || got.QueueLength != "10 min" {
		t.Errorf("unexpected status fields: %+v", got)
	}
}

func TestUpvotes(t *testing.T) {
	st := setupStore(t)
	res := testResource("Gym A")
	if err := st.CreateResource(res); err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}

	count, err := st.CountUpvotes(res.ID)
	if err != nil {
		t.Fatalf("CountUpvotes failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 upvotes, got %d", count)
	}

	if err := st.AddUpvote(res.ID, "user-1"); err != nil {
		t.Fatalf("AddUpvote failed: %v", err)
	}

	// Second upvote from the same user hits the unique constraint
	if err := st.AddUpvote(res.ID, "user-1"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	count, _ = st.CountUpvotes(res.ID)
	if count != 1 {
		t.Errorf("expected count to stay at 1 after a duplicate, got %d", count)
	}

	// A different user may still upvote
	if err := st.AddUpvote(res.ID, "user-2"); err != nil {
		t.Fatalf("AddUpvote for second user failed: %v", err)
	}
	count, _ = st.CountUpvotes(res.ID)
	if count != 2 {
		t.Errorf("expected 2 upvotes, got %d", count)
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	st := setupStore(t)

	acct, err := st.SignUp("Alice@Example.com", "s3cret", false)
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if acct.Email != "alice@example.com" {
		t.Errorf("expected lowercased email, got %q", acct.Email)
	}
	if acct.IsAdmin {
		t.Error("new accounts must not be admins")
	}

	// Duplicate email, any casing
	if _, err := st.SignUp("alice@example.com", "other", false); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Correct credentials
	got, err := st.SignIn("alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if got.ID != acct.ID {
		t.Errorf("expected account %s, got %s", acct.ID, got.ID)
	}

	// Wrong password and unknown email look identical
	if _, err := st.SignIn("alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := st.SignIn("nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGrantAdmin(t *testing.T) {
	st := setupStore(t)

	acct, err := st.SignUp("bob@example.com", "s3cret", false)
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if err := st.GrantAdmin(acct.ID); err != nil {
		t.Fatalf("GrantAdmin failed: %v", err)
	}

	got, err := st.SignIn("bob@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if !got.IsAdmin {
		t.Error("expected account to be admin after grant")
	}

	if err := st.GrantAdmin("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAccounts(t *testing.T) {
	st := setupStore(t)

	if _, err := st.SignUp("a@example.com", "pw", false); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SignUp("b@example.com", "pw", true); err != nil {
		t.Fatal(err)
	}

	accounts, err := st.ListAccounts()
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	for _, a := range accounts {
		if len(a.PasswordHash) != 0 {
			t.Error("ListAccounts must not return password hashes")
		}
	}
}
