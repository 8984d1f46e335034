package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite,
// postgres, s3) implement this and one is picked at startup.
type Store interface {
	Registrations() Registrations

	// ApplyMigrations brings the backing schema up to date. Drivers without
	// a schema return nil.
	ApplyMigrations() error

	// Backend names the driver, e.g. "sqlite".
	Backend() string

	// Ping verifies the backing service is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Entry is one key/record pair returned by enumeration.
type Entry struct {
	Key    string
	Record domain.Registration
}

type Registrations interface {
	// Exists reports whether a record is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Get returns the record under key or ErrNotFound.
	Get(ctx context.Context, key string) (domain.Registration, error)

	// Put stores rec under key, replacing whatever was there.
	Put(ctx context.Context, key string, rec domain.Registration) error

	// PutIfAbsent stores rec only if key is free, atomically with respect to
	// other writers. Otherwise it returns ErrAlreadyExists and leaves the
	// existing record untouched.
	PutIfAbsent(ctx context.Context, key string, rec domain.Registration) error

	// GetAll returns every stored entry. Ordering is driver specific.
	GetAll(ctx context.Context) ([]Entry, error)
}
