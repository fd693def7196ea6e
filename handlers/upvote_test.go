// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/crowdcheck/middleware"
	"github.com/danielhkuo/crowdcheck/models"
	"github.com/danielhkuo/crowdcheck/store"
	"github.com/danielhkuo/crowdcheck/testutil"
)

func TestUpvote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewUpvoteHandler(st, cfg)

	acct := testutil.CreateTestAccount(t, st, "alice@example.com", false)
	cookie := testutil.SessionCookie(t, cfg, acct)
	rid := testutil.CreateTestResource(t, st, "Gym A")

	req := testutil.MakeRequest("POST", "/upvote", models.UpvoteRequest{ResourceID: rid}, cookie)
	w := httptest.NewRecorder()
	middleware.RequireLogin(cfg.SessionSecret, h.Upvote)(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.UpvoteResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Upvotes != 1 {
		t.Errorf("expected 1 upvote, got %d", resp.Upvotes)
	}
}

func TestUpvote_Duplicate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewUpvoteHandler(st, cfg)

	acct := testutil.CreateTestAccount(t, st, "alice@example.com", false)
	cookie := testutil.SessionCookie(t, cfg, acct)
	rid := testutil.CreateTestResource(t, st, "Gym A")

	guarded := middleware.RequireLogin(cfg.SessionSecret, h.Upvote)

	first := httptest.NewRecorder()
	guarded(first, testutil.MakeRequest("POST", "/upvote", models.UpvoteRequest{ResourceID: rid}, cookie))
	testutil.AssertStatus(t, first, 200)

	second := httptest.NewRecorder()
	guarded(second, testutil.MakeRequest("POST", "/upvote", models.UpvoteRequest{ResourceID: rid}, cookie))
	testutil.AssertStatus(t, second, 409)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, second, &errResp)
	if errResp.Error != "Already upvoted" {
		t.Errorf("expected error 'Already upvoted', got %q", errResp.Error)
	}

	count, err := st.CountUpvotes(rid)
	if err != nil {
		t.Fatalf("CountUpvotes failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count to stay at 1, got %d", count)
	}
}

func TestUpvote_MissingData(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewUpvoteHandler(st, cfg)

	acct := testutil.CreateTestAccount(t, st, "alice@example.com", false)
	cookie := testutil.SessionCookie(t, cfg, acct)

	guarded := middleware.RequireLogin(cfg.SessionSecret, h.Upvote)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty resource id", models.UpvoteRequest{}},
		{"no body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			guarded(w, testutil.MakeRequest("POST", "/upvote", tt.body, cookie))

			testutil.AssertStatus(t, w, 400)

			var errResp models.ErrorResponse
			testutil.AssertJSON(t, w, &errResp)
			if errResp.Error != "Missing data" {
				t.Errorf("expected error 'Missing data', got %q", errResp.Error)
			}
		})
	}
}
