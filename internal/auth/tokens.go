// Package auth owns JobDesk's authentication state: durable token
// persistence and the session lifecycle around it. All actual
// credential checking happens on the portal server; this package only
// stores what the server issued and tracks who is signed in.
package auth

import (
	"context"
	"fmt"

	"github.com/me/jobdesk/internal/store"
	"github.com/me/jobdesk/pkg/jobportal"
)

// Storage entry names, matching the keys the original web client used
// in browser storage.
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// TokenStore persists the access/refresh pair in durable storage.
// At most one pair exists at a time; saving a new pair overwrites both
// entries in a single transaction. No expiry or signature inspection
// happens here, the tokens are opaque.
type TokenStore struct {
	store store.Store
}

// NewTokenStore creates a token store over the given storage backend.
func NewTokenStore(st store.Store) *TokenStore {
	return &TokenStore{store: st}
}

// Save writes both halves of the pair, overwriting any existing pair.
func (ts *TokenStore) Save(ctx context.Context, pair jobportal.TokenPair) error {
	if pair.IsZero() {
		return fmt.Errorf("refusing to save a partial token pair")
	}
	if err := ts.store.SetPair(ctx, accessTokenKey, pair.Access, refreshTokenKey, pair.Refresh); err != nil {
		return fmt.Errorf("save token pair: %w", err)
	}
	return nil
}

// Load returns the persisted pair. A pair with either entry missing or
// empty is reported as absent: a torn pair is indistinguishable from
// being logged out.
func (ts *TokenStore) Load(ctx context.Context) (jobportal.TokenPair, bool, error) {
	access, okA, err := ts.store.Get(ctx, accessTokenKey)
	if err != nil {
		return jobportal.TokenPair{}, false, fmt.Errorf("load access token: %w", err)
	}
	refresh, okR, err := ts.store.Get(ctx, refreshTokenKey)
	if err != nil {
		return jobportal.TokenPair{}, false, fmt.Errorf("load refresh token: %w", err)
	}

	pair := jobportal.TokenPair{Access: access, Refresh: refresh}
	if !okA || !okR || pair.IsZero() {
		return jobportal.TokenPair{}, false, nil
	}
	return pair, true, nil
}

// Clear removes both entries unconditionally. Idempotent.
func (ts *TokenStore) Clear(ctx context.Context) error {
	if err := ts.store.DeletePair(ctx, accessTokenKey, refreshTokenKey); err != nil {
		return fmt.Errorf("clear token pair: %w", err)
	}
	return nil
}
