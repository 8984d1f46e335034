// Package memory is a process-lifetime store driver. Records are lost when
// the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

const Backend = "memory"

type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Registration
	order   []string // insertion order of keys
}

func NewStore() *Store {
	return &Store{records: make(map[string]domain.Registration)}
}

func (s *Store) Registrations() store.Registrations { return &registrationsRepo{s: s} }

func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Backend() string { return Backend }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

type registrationsRepo struct {
	s *Store
}

func (r *registrationsRepo) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.records[key]
	return ok, nil
}

func (r *registrationsRepo) Get(ctx context.Context, key string) (domain.Registration, error) {
	if err := ctx.Err(); err != nil {
		return domain.Registration{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.records[key]
	if !ok {
		return domain.Registration{}, store.ErrNotFound
	}
	return rec, nil
}

func (r *registrationsRepo) Put(ctx context.Context, key string, rec domain.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.records[key]; !ok {
		r.s.order = append(r.s.order, key)
	}
	r.s.records[key] = rec
	return nil
}

func (r *registrationsRepo) PutIfAbsent(ctx context.Context, key string, rec domain.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.records[key]; ok {
		return store.ErrAlreadyExists
	}
	r.s.order = append(r.s.order, key)
	r.s.records[key] = rec
	return nil
}

func (r *registrationsRepo) GetAll(ctx context.Context) ([]store.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]store.Entry, 0, len(r.s.order))
	for _, key := range r.s.order {
		out = append(out, store.Entry{Key: key, Record: r.s.records[key]})
	}
	return out, nil
}
