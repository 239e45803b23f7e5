package session

import (
	"context"
	"testing"
	"time"
)

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(NewMemoryStore(), time.Hour)

	s := Session{Token: "tok-1", UserID: 7, Name: "Alex", Role: RoleBlogger}
	if err := mgr.Hydrate(ctx, s); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}

	got, ok := mgr.Resolve(ctx, "tok-1")
	if !ok {
		t.Fatal("hydrated session not resolvable")
	}
	if got.UserID != 7 || got.Role != RoleBlogger {
		t.Fatalf("session corrupted: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("hydrate must stamp CreatedAt")
	}

	if _, ok := mgr.Resolve(ctx, "unknown"); ok {
		t.Fatal("unknown token resolved")
	}

	mgr.Clear(ctx, "tok-1")
	if _, ok := mgr.Resolve(ctx, "tok-1"); ok {
		t.Fatal("cleared session still resolvable")
	}
}

func TestHydrateRejectsBadSessions(t *testing.T) {
	ctx := context.Background()
	mgr := NewManager(NewMemoryStore(), time.Hour)

	if err := mgr.Hydrate(ctx, Session{Token: "", Role: RoleAdmin}); err == nil {
		t.Fatal("empty token accepted")
	}
	if err := mgr.Hydrate(ctx, Session{Token: "t", Role: "superuser"}); err == nil {
		t.Fatal("unknown role accepted")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := Session{Token: "tok-2", Role: RoleWriter}
	if err := store.Put(ctx, s, -time.Second); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "tok-2"); ok {
		t.Fatal("expired session returned")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleAccountant, RoleBlogger, RoleManager, RoleWriter, RoleTeams} {
		if !ValidRole(r) {
			t.Fatalf("role %s should be valid", r)
		}
	}
	if ValidRole("root") {
		t.Fatal("unknown role accepted")
	}
}
