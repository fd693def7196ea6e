// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/crowdcheck/middleware"
	"github.com/danielhkuo/crowdcheck/store"
	"github.com/danielhkuo/crowdcheck/testutil"
)

func TestAdminPage(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(st, cfg)

	admin := testutil.CreateTestAccount(t, st, "root@example.com", true)
	testutil.CreateTestAccount(t, st, "alice@example.com", false)
	cookie := testutil.SessionCookie(t, cfg, admin)

	req := testutil.MakeRequest("GET", "/admin", nil, cookie)
	w := httptest.NewRecorder()
	middleware.RequireLogin(cfg.SessionSecret, middleware.RequireAdmin(h.Page))(w, req)

	testutil.AssertStatus(t, w, 200)
	body := w.Body.String()
	for _, want := range []string{"root@example.com", "alice@example.com"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected account list to contain %q", want)
		}
	}
}

func TestGrantAdmin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(st, cfg)

	admin := testutil.CreateTestAccount(t, st, "root@example.com", true)
	target := testutil.CreateTestAccount(t, st, "alice@example.com", false)
	cookie := testutil.SessionCookie(t, cfg, admin)

	form := url.Values{"account_id": {target.ID}}
	req := testutil.MakeFormRequest("POST", "/admin/grant", form, cookie)
	w := httptest.NewRecorder()
	middleware.RequireLogin(cfg.SessionSecret, middleware.RequireAdmin(h.Grant))(w, req)

	testutil.AssertRedirect(t, w, "/admin")

	got, err := st.SignIn("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if !got.IsAdmin {
		t.Error("expected target account to be admin after grant")
	}
}

func TestGrantAdmin_UnknownAccount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(st, cfg)

	admin := testutil.CreateTestAccount(t, st, "root@example.com", true)
	cookie := testutil.SessionCookie(t, cfg, admin)

	form := url.Values{"account_id": {"no-such-id"}}
	req := testutil.MakeFormRequest("POST", "/admin/grant", form, cookie)
	w := httptest.NewRecorder()
	middleware.RequireLogin(cfg.SessionSecret, middleware.RequireAdmin(h.Grant))(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestGrantAdmin_MissingID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(st, cfg)

	admin := testutil.CreateTestAccount(t, st, "root@example.com", true)
	cookie := testutil.SessionCookie(t, cfg, admin)

	req := testutil.MakeFormRequest("POST", "/admin/grant", url.Values{}, cookie)
	w := httptest.NewRecorder()
	middleware.RequireLogin(cfg.SessionSecret, middleware.RequireAdmin(h.Grant))(w, req)

	testutil.AssertStatus(t, w, 400)
}
