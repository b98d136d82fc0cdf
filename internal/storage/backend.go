// Package storage provides the named-collection persistence primitive the
// record store is built on. A Backend maps collection names to opaque byte
// snapshots; writes replace the whole snapshot, so readers always observe a
// complete collection.
package storage

import "context"

// Backend is a minimal key-value surface over durable client-local storage.
//
// Get returns the stored snapshot and whether the name exists. Set replaces
// the snapshot atomically from the caller's point of view: after Set returns
// nil, a subsequent Get observes the new bytes. Delete removes the name and
// is a no-op when it does not exist.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}
