// Package store persists game snapshots between sessions
//
// Every backend stores one flat JSON record under a fixed key. Missing or
// malformed data loads as "no saved state", never as an error
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/pump-clicker/engine"
)

// ErrUnknownStore is returned by New for an unsupported backend name
var ErrUnknownStore = errors.New("unknown store backend")

// Store is the persistence contract, engine.SnapshotStore
type Store interface {
	engine.SnapshotStore
	Close() error
}

// Backend names
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	Key     string

	// File backend
	Dir string

	// Redis backend
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisMaxRetries uint64
}

// New builds the backend named by opts.Backend
func New(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case BackendFile, "":
		return NewFileStore(opts.Dir, opts.Key)
	case BackendRedis:
		return ConnectRedis(ctx, RedisOptions{
			Addr:       opts.RedisAddr,
			Password:   opts.RedisPassword,
			DB:         opts.RedisDB,
			Key:        opts.Key,
			MaxRetries: opts.RedisMaxRetries,
		})
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, opts.Backend)
	}
}
