package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/me/jobdesk/internal/store"
	"github.com/me/jobdesk/pkg/jobportal"
)

func setupTokenStore(t *testing.T) (*TokenStore, store.Store) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:", slog.Default())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewTokenStore(st), st
}

func TestTokenStore_SaveLoad(t *testing.T) {
	ts, _ := setupTokenStore(t)
	ctx := context.Background()

	pair := jobportal.TokenPair{Access: "acc-1", Refresh: "ref-1"}
	if err := ts.Save(ctx, pair); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok, err := ts.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a pair to be present")
	}
	if loaded != pair {
		t.Errorf("Load = %+v, want %+v", loaded, pair)
	}

	// A new login overwrites the previous pair.
	next := jobportal.TokenPair{Access: "acc-2", Refresh: "ref-2"}
	if err := ts.Save(ctx, next); err != nil {
		t.Fatalf("Save (overwrite) failed: %v", err)
	}
	loaded, _, _ = ts.Load(ctx)
	if loaded != next {
		t.Errorf("Load after overwrite = %+v, want %+v", loaded, next)
	}
}

func TestTokenStore_SaveRejectsPartialPair(t *testing.T) {
	ts, _ := setupTokenStore(t)

	if err := ts.Save(context.Background(), jobportal.TokenPair{Access: "only-access"}); err == nil {
		t.Error("expected Save to reject a partial pair")
	}
}

func TestTokenStore_Load_Absent(t *testing.T) {
	ts, _ := setupTokenStore(t)

	_, ok, err := ts.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected no pair in a fresh store")
	}
}

func TestTokenStore_Load_PartialIsAbsent(t *testing.T) {
	ts, st := setupTokenStore(t)
	ctx := context.Background()

	// Simulate a torn write: only one entry present.
	if err := st.Set(ctx, "access_token", "orphan"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, ok, err := ts.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("partial pair must read as absent")
	}

	// Empty value counts as missing too.
	if err := st.Set(ctx, "refresh_token", ""); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, _ := ts.Load(ctx); ok {
		t.Error("pair with empty entry must read as absent")
	}
}

func TestTokenStore_Clear(t *testing.T) {
	ts, _ := setupTokenStore(t)
	ctx := context.Background()

	if err := ts.Save(ctx, jobportal.TokenPair{Access: "a", Refresh: "r"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := ts.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := ts.Load(ctx); ok {
		t.Error("expected empty store after Clear")
	}

	// Clear is idempotent.
	if err := ts.Clear(ctx); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
