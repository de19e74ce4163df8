package storage

import "fmt"

// Options selects and parameterizes a backend for NewStore.
type Options struct {
	Kind       string
	SQLitePath string
	Redis      RedisOptions
}

func NewStore(opts Options) (Store, error) {
	switch opts.Kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(opts.SQLitePath)
	case "redis":
		return NewRedisStore(opts.Redis), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", opts.Kind)
	}
}

func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
