package goCertify

import (
	"net/http"
	"testing"

	"github.com/MrEthical07/goCertify/session"
)

func TestUsersBypassesCacheByDefault(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodGet, "/users", []map[string]any{
		{"uid": "u-1", "email": "admin@example.com", "roles": "SUPERADMIN"},
	})

	engine, store := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-admin")

	for i := 0; i < 2; i++ {
		users, err := engine.Users(ctx)
		if err != nil {
			t.Fatalf("Users failed: %v", err)
		}
		if len(users) != 1 || users[0].Role != session.RoleSuperAdmin {
			t.Fatalf("unexpected users: %+v", users)
		}
	}

	if got := sb.calls(http.MethodGet, "/users"); got != 2 {
		t.Fatalf("zero TTL must bypass the cache, got %d backend calls", got)
	}
	if store.Len() != 0 {
		t.Fatalf("bypassed reads must not populate the store, got %d entries", store.Len())
	}
	if engine.metrics.Value(MetricCacheBypass) != 2 {
		t.Fatalf("expected 2 bypasses, got %d", engine.metrics.Value(MetricCacheBypass))
	}
}

func TestUsersCachedWhenTTLConfigured(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodGet, "/users", []map[string]any{})
	sb.handleOK(http.MethodPost, "/users/add", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	engine.config.Cache.UserListTTL = engine.config.Cache.EventListTTL
	ctx := authedCtx("tok-admin")

	if _, err := engine.Users(ctx); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if _, err := engine.Users(ctx); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if got := sb.calls(http.MethodGet, "/users"); got != 1 {
		t.Fatalf("expected cached second read, got %d backend calls", got)
	}

	res := engine.SignUpByAdmin(ctx, SignUpByAdminInput{
		Email:           "new@example.com",
		Password:        "str0ng-password",
		ConfirmPassword: "str0ng-password",
		Role:            session.RoleUser,
		PremiumPackage:  session.PackageFree,
	})
	if !res.Success {
		t.Fatalf("SignUpByAdmin failed: %+v", res)
	}

	if _, err := engine.Users(ctx); err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	if got := sb.calls(http.MethodGet, "/users"); got != 2 {
		t.Fatalf("expected refetch after user creation, got %d backend calls", got)
	}
}

func TestSignUpByAdminValidation(t *testing.T) {
	sb := newStubBackend(t)
	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-admin")

	cases := map[string]SignUpByAdminInput{
		"password mismatch": {
			Email:           "new@example.com",
			Password:        "str0ng-password",
			ConfirmPassword: "other-password",
			Role:            session.RoleUser,
			PremiumPackage:  session.PackageFree,
		},
		"short password": {
			Email:           "new@example.com",
			Password:        "short",
			ConfirmPassword: "short",
			Role:            session.RoleUser,
			PremiumPackage:  session.PackageFree,
		},
		"unknown role": {
			Email:           "new@example.com",
			Password:        "str0ng-password",
			ConfirmPassword: "str0ng-password",
			Role:            "WIZARD",
			PremiumPackage:  session.PackageFree,
		},
	}

	for name, in := range cases {
		res := engine.SignUpByAdmin(ctx, in)
		if res.Success || res.Message != "Invalid user data." {
			t.Fatalf("%s: unexpected result: %+v", name, res)
		}
	}

	if got := sb.calls(http.MethodPost, "/users/add"); got != 0 {
		t.Fatalf("invalid input must not reach the backend, got %d calls", got)
	}
}

func TestDeleteUserInvalidatesUserTags(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodGet, "/users", []map[string]any{})
	sb.handleOK(http.MethodDelete, "/users/u-1/delete", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	engine.config.Cache.UserListTTL = engine.config.Cache.EventListTTL
	ctx := authedCtx("tok-admin")

	if _, err := engine.Users(ctx); err != nil {
		t.Fatalf("prime read failed: %v", err)
	}

	if res := engine.DeleteUser(ctx, "u-1"); !res.Success {
		t.Fatalf("DeleteUser failed: %+v", res)
	}

	if _, err := engine.Users(ctx); err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	if got := sb.calls(http.MethodGet, "/users"); got != 2 {
		t.Fatalf("expected refetch after delete, got %d backend calls", got)
	}
}

func TestDeleteUserInvalidatesListTagOnly(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodDelete, "/users/u-1/delete", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	rec := recordInvalidations(engine)

	if res := engine.DeleteUser(authedCtx("tok-admin"), "u-1"); !res.Success {
		t.Fatalf("DeleteUser failed: %+v", res)
	}

	got := rec.invalidatedTags()
	if len(got) != 1 || got[0] != "users" {
		t.Fatalf("expected exactly [users] invalidated, got %v", got)
	}
}

func TestUpdownUserPackage(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodPatch, "/users/u-1/updown-package", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-admin")

	if res := engine.UpdownUserPackage(ctx, "u-1", "DIAMOND"); res.Success || res.Message != "Invalid premium package." {
		t.Fatalf("unexpected result for unknown package: %+v", res)
	}
	if res := engine.UpdownUserPackage(ctx, "", session.PackageGold); res.Success {
		t.Fatalf("expected failure for empty uid: %+v", res)
	}

	res := engine.UpdownUserPackage(ctx, "u-1", session.PackageGold)
	if !res.Success {
		t.Fatalf("UpdownUserPackage failed: %+v", res)
	}
	if got := sb.calls(http.MethodPatch, "/users/u-1/updown-package"); got != 1 {
		t.Fatalf("expected exactly one backend call, got %d", got)
	}
}
