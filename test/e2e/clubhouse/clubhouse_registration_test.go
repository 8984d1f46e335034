package clubhouse_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestJoinFlow(t *testing.T) {
	client := setupClubhouseContainer(t, nil)
	ctx := t.Context()

	joined, err := client.Join(ctx, clubsdk.JoinRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	require.True(t, joined.Success)
	require.Equal(t, "a@x.com", joined.Data.Email)
	require.Empty(t, joined.Data.Name)

	_, err = client.Join(ctx, clubsdk.JoinRequest{Email: "a@x.com", Password: "p"})
	require.ErrorIs(t, err, clubsdk.ErrEmailRegistered)

	reqs, err := client.ListJoinRequests(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reqs.Total)
	require.Equal(t, "active", reqs.Requests[0].Status)
}

func TestLandingRegistrationIsSeparateFromMembers(t *testing.T) {
	client := setupClubhouseContainer(t, nil)
	ctx := t.Context()

	_, err := client.Register(ctx, clubsdk.RegisterRequest{})
	require.ErrorIs(t, err, clubsdk.ErrMissingCredentials)

	_, err = client.Register(ctx, clubsdk.RegisterRequest{Email: "b@x.com", Password: "p"})
	require.NoError(t, err)

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, users.Total)

	_, err = client.Join(ctx, clubsdk.JoinRequest{Email: "b@x.com"})
	require.NoError(t, err)
}

func TestConcurrentJoinsOverHTTP(t *testing.T) {
	client := setupClubhouseContainer(t, nil)
	ctx := t.Context()

	const writers = 20
	var wins atomic.Int32
	var g errgroup.Group
	for i := range writers {
		g.Go(func() error {
			_, err := client.Join(ctx, clubsdk.JoinRequest{Email: "race@x.com", Name: fmt.Sprintf("w%d", i)})
			if err == nil {
				wins.Add(1)
				return nil
			}
			if errors.Is(err, clubsdk.ErrEmailRegistered) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 1, wins.Load())
}
