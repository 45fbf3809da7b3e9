// Package tokenstore persists the OAuth2 credential pair on a single
// well-known key of the kv capability. The expiry lives in kv metadata, not
// in the value payload, so expiry checks never touch the JSON.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logiless/internal/kv"
)

type Credential struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Store struct {
	kv  kv.Store
	key string
}

func New(kvs kv.Store, key string) *Store {
	return &Store{kv: kvs, key: key}
}

// Get returns the stored credential and its expiry. The expiry is nil when
// the record was written without one; callers must treat that as expired.
// kv.ErrNotFound passes through untouched ("not logged in").
func (s *Store) Get(ctx context.Context) (Credential, *time.Time, error) {
	raw, meta, err := s.kv.GetWithMetadata(ctx, s.key)
	if err != nil {
		return Credential{}, nil, err
	}
	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return Credential{}, nil, fmt.Errorf("tokenstore: decode credential: %w", err)
	}
	return cred, meta.ExpiresAt, nil
}

// Put replaces the whole credential record. Refreshes never patch fields in
// place.
func (s *Store) Put(ctx context.Context, cred Credential, expiresAt time.Time) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("tokenstore: encode credential: %w", err)
	}
	return s.kv.Put(ctx, s.key, raw, kv.Metadata{ExpiresAt: &expiresAt})
}
