package memory_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.NewStore()
	})
}

func TestGetAllKeepsInsertionOrder(t *testing.T) {
	regs := memory.NewStore().Registrations()
	ctx := t.Context()

	for _, key := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		require.NoError(t, regs.PutIfAbsent(ctx, key, domain.Registration{Email: key}))
	}
	// Overwriting must not move a key to the back.
	require.NoError(t, regs.Put(ctx, "c@x.com", domain.Registration{Email: "c@x.com", Name: "Carol"}))

	all, err := regs.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "c@x.com", all[0].Key)
	require.Equal(t, "Carol", all[0].Record.Name)
	require.Equal(t, "a@x.com", all[1].Key)
	require.Equal(t, "b@x.com", all[2].Key)
}

func TestCancelledContext(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, s.Ping(ctx), context.Canceled)
	require.ErrorIs(t, s.Registrations().PutIfAbsent(ctx, "a@x.com", domain.Registration{}), context.Canceled)
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := memory.NewStore(), memory.NewStore()
	require.NoError(t, a.Registrations().PutIfAbsent(t.Context(), "a@x.com", domain.Registration{Email: "a@x.com"}))

	ok, err := b.Registrations().Exists(t.Context(), "a@x.com")
	require.NoError(t, err)
	require.False(t, ok)
}
