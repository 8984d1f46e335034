// Package storetest holds the behavioural contract every store driver must
// satisfy. Driver tests call Run with a constructor for a fresh, empty store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Factory returns an empty, migrated store. Cleanup is the factory's job.
type Factory func(t *testing.T) store.Store

var epoch = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func record(email, name string) domain.Registration {
	return domain.NewRegistration(email, "secret-"+email, name, epoch)
}

// Run executes the full contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("empty store", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()

		ok, err := regs.Exists(ctx, "a@x.com")
		require.NoError(t, err)
		require.False(t, ok)

		_, err = regs.Get(ctx, "a@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		all, err := regs.GetAll(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("put if absent then read back", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()
		rec := record("a@x.com", "Alice")

		require.NoError(t, regs.PutIfAbsent(ctx, "user:a@x.com", rec))

		ok, err := regs.Exists(ctx, "user:a@x.com")
		require.NoError(t, err)
		require.True(t, ok)

		got, err := regs.Get(ctx, "user:a@x.com")
		require.NoError(t, err)
		require.Equal(t, rec, got)
	})

	t.Run("duplicate insert leaves the first record alone", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()
		first := record("a@x.com", "Alice")

		require.NoError(t, regs.PutIfAbsent(ctx, "a@x.com", first))

		for i := range 3 {
			second := domain.NewRegistration("a@x.com", "other", fmt.Sprintf("Mallory %d", i), epoch.Add(time.Hour))
			err := regs.PutIfAbsent(ctx, "a@x.com", second)
			require.ErrorIs(t, err, store.ErrAlreadyExists)
		}

		got, err := regs.Get(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, first, got)

		all, err := regs.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("put replaces", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()

		require.NoError(t, regs.Put(ctx, "a@x.com", record("a@x.com", "Alice")))
		updated := record("a@x.com", "Alice Liddell")
		require.NoError(t, regs.Put(ctx, "a@x.com", updated))

		got, err := regs.Get(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("namespaced keys do not collide", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()

		require.NoError(t, regs.PutIfAbsent(ctx, store.NamespaceLanding.Key("b@x.com"), record("b@x.com", "")))
		require.NoError(t, regs.PutIfAbsent(ctx, store.NamespaceMembers.Key("b@x.com"), record("b@x.com", "Bob")))

		all, err := regs.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("get all returns every entry", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()

		const n = 12
		want := make([]store.Entry, 0, n)
		for i := range n {
			email := fmt.Sprintf("member%02d@x.com", i)
			rec := record(email, fmt.Sprintf("Member %d", i))
			key := store.NamespaceMembers.Key(email)
			require.NoError(t, regs.PutIfAbsent(ctx, key, rec))
			want = append(want, store.Entry{Key: key, Record: rec})
		}

		all, err := regs.GetAll(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, want, all)
	})

	t.Run("concurrent inserts have one winner", func(t *testing.T) {
		regs := newStore(t).Registrations()
		ctx := t.Context()

		const writers = 16
		var wins, dupes atomic.Int32
		var g errgroup.Group
		for i := range writers {
			g.Go(func() error {
				err := regs.PutIfAbsent(ctx, "race@x.com", record("race@x.com", fmt.Sprintf("writer %d", i)))
				switch {
				case err == nil:
					wins.Add(1)
				case errors.Is(err, store.ErrAlreadyExists):
					dupes.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		require.EqualValues(t, 1, wins.Load())
		require.EqualValues(t, writers-1, dupes.Load())

		all, err := regs.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Ping(context.Background()))
		require.NotEmpty(t, s.Backend())
	})
}
