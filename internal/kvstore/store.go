// Package kvstore defines the key-value persistence adapter used by all
// stores in AuditDesk. Values are opaque strings (JSON documents); the
// adapter knows nothing about their shape. The concrete implementation is
// Redis, but services depend only on the Store interface so tests can swap
// in fakes.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist. Callers that
// treat a missing key as "empty collection" check for this error explicitly.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the persistence contract: string keys, opaque string values.
// All methods accept a context for cancellation and deadline propagation.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Keys holds the namespaced storage keys owned by this service. Built once
// from the configured namespace so no package hard-codes key strings.
type Keys struct {
	Drafts     string
	Activities string
	Reports    string
	Theme      string
	Currency   string
	Language   string
	Users      string
}

// NewKeys builds the key set for a namespace (e.g., "audit_demo" produces
// "audit_demo:drafts" and friends).
func NewKeys(namespace string) Keys {
	return Keys{
		Drafts:     namespace + ":drafts",
		Activities: namespace + ":activities",
		Reports:    namespace + ":reports",
		Theme:      namespace + ":theme",
		Currency:   namespace + ":currency",
		Language:   namespace + ":language",
		Users:      namespace + ":users",
	}
}
