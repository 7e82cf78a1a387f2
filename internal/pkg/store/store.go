// Package store provides the key-value persistence the rates service reads and writes.
//
//go:generate go run -mod=mod github.com/matryer/moq -out storemock/store_mock.go -pkg storemock . Store
package store

import (
	"context"
	"errors"
)

// DefaultName is the namespace the rates dataset is written into.
const DefaultName = "statestore"

// ErrNotFound is returned by Get when the store holds no value for the key.
var ErrNotFound = errors.New("key not found")

// Store defines a namespaced string key-value store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, storeName, key, value string) error
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, storeName, key string) (string, error)
}
