package storage

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/nikkjke/finance-tracker/internal/logging"
)

// Keys of the persisted slots.
const (
	KeyExpenses    = "expenses"
	KeyBudgets     = "budgets"
	KeyCurrentUser = "currentUser"
	KeyTheme       = "theme"
)

// ErrNotFound indicates a key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is a byte-level key-value store. Each key holds one serialized blob.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Load returns the collection stored under key. When the key is absent or
// its value cannot be parsed, seed is written to the store and a copy of it
// is returned. Other read errors return the seed without writing it.
func Load[T any](ctx context.Context, s Store, key string, seed []T) []T {
	data, err := s.Get(ctx, key)
	if err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items
		}
		logging.Warnf("storage: discarding unparsable %q: %v", key, err)
	}

	items := slices.Clone(seed)
	if items == nil {
		items = []T{}
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		// The slot may still hold good data; do not overwrite it.
		logging.Warnf("storage: read %q: %v", key, err)
		return items
	}
	_ = Save(ctx, s, key, items)
	return items
}

// Save serializes items and writes them under key. Failures are logged and
// returned; callers that treat persistence as best-effort may ignore them.
func Save[T any](ctx context.Context, s Store, key string, items []T) error {
	return SaveValue(ctx, s, key, items)
}

// LoadValue reads a single JSON object stored under key. The boolean is false
// when the key is absent. A parse failure is returned as an error.
func LoadValue[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var v T
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, true, err
	}
	return v, true, nil
}

// SaveValue serializes v and writes it under key, logging any failure.
func SaveValue[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Warnf("storage: encode %q: %v", key, err)
		return err
	}
	if err := s.Put(ctx, key, data); err != nil {
		logging.Warnf("storage: write %q: %v", key, err)
		return err
	}
	return nil
}

// Remove deletes key, logging any failure. Removing an absent key is not an
// error.
func Remove(ctx context.Context, s Store, key string) error {
	if err := s.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		logging.Warnf("storage: delete %q: %v", key, err)
		return err
	}
	return nil
}
