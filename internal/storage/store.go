package storage

import "context"

// ArchiveKey is the key the combination archive is persisted under.
const ArchiveKey = "lottoCombinations"

// Store is a string key/value persistence backend.
//
// Load reports found=false when the key has never been saved. Implementations
// must be safe for concurrent use.
type Store interface {
	Init(ctx context.Context) error
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
}
