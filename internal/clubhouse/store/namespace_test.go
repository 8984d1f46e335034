package store_test

import (
	"testing"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/stretchr/testify/require"
)

func TestNamespaceKey(t *testing.T) {
	require.Equal(t, "b@x.com", store.NamespaceLanding.Key("b@x.com"))
	require.Equal(t, "user:b@x.com", store.NamespaceMembers.Key("b@x.com"))
}

func TestNamespaceEmail(t *testing.T) {
	email, ok := store.NamespaceMembers.Email("user:a@x.com")
	require.True(t, ok)
	require.Equal(t, "a@x.com", email)

	_, ok = store.NamespaceMembers.Email("a@x.com")
	require.False(t, ok)

	email, ok = store.NamespaceLanding.Email("a@x.com")
	require.True(t, ok)
	require.Equal(t, "a@x.com", email)

	_, ok = store.NamespaceLanding.Email("user:a@x.com")
	require.False(t, ok)
}

func TestNamespaceAccepts(t *testing.T) {
	require.True(t, store.NamespaceLanding.Accepts("b@x.com"))
	require.False(t, store.NamespaceLanding.Accepts("user:b@x.com"))
	require.True(t, store.NamespaceMembers.Accepts("b@x.com"))
	require.True(t, store.NamespaceMembers.Accepts("user:b@x.com"))
}

func TestNamespaceFilter(t *testing.T) {
	entries := []store.Entry{
		{Key: "user:c@x.com"},
		{Key: "b@x.com"},
		{Key: "user:a@x.com"},
	}

	members := store.NamespaceMembers.Filter(entries)
	require.Len(t, members, 2)
	require.Equal(t, "user:c@x.com", members[0].Key)
	require.Equal(t, "user:a@x.com", members[1].Key)

	landing := store.NamespaceLanding.Filter(entries)
	require.Len(t, landing, 1)
	require.Equal(t, "b@x.com", landing[0].Key)
}
