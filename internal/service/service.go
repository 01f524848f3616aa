// Package service implements the domain services on top of a storage.Store:
// expenses, budgets, the authenticated session and the theme preference.
// Remote-facing operations go through a simulated Network and report
// failures as *Error values.
package service

import (
	"context"
	"fmt"

	"github.com/nikkjke/finance-tracker/internal/storage"
)

// Options configures the behavior shared by the services.
type Options struct {
	// Network simulates the remote API. Nil means Instant.
	Network *Network
	// SurfaceWriteErrors reports failed store writes as transient errors
	// instead of only logging them.
	SurfaceWriteErrors bool
}

func (o Options) network() *Network {
	if o.Network == nil {
		return Instant()
	}
	return o.Network
}

// persisted handles the outcome of a store write. The failure has already
// been logged by the storage helpers.
func (o Options) persisted(op string, err error) error {
	if err == nil || !o.SurfaceWriteErrors {
		return nil
	}
	return &Error{
		Kind:    KindTransient,
		Op:      op,
		Message: "Failed to save changes. Please try again.",
		Err:     err,
	}
}

func saveAll[T any](ctx context.Context, s storage.Store, o Options, op, key string, items []T) error {
	return o.persisted(op, storage.Save(ctx, s, key, items))
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func quoted(v any) string {
	return fmt.Sprintf("%q", v)
}
