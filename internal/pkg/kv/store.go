// internal/pkg/kv/store.go
package kv

import "context"

// Store is a key-value persistence facility for serialized session state.
// Load reports absence via the second return value rather than an error,
// so callers can distinguish "no saved data" from a real storage failure.
type Store interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
