package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/goodreadme/goodreadme/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	profiles map[string]readme.ProfileRecord
	search   map[string][]readme.ProfileRecord
	err      error
	fetches  []string
	searches []string
	mu       sync.Mutex
}

func (f *fakeFetcher) Fetch(_ context.Context, handle string) (*readme.ProfileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches = append(f.fetches, handle)
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.profiles[handle]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (f *fakeFetcher) Search(_ context.Context, term string) ([]readme.ProfileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, term)
	return f.search[term], nil
}

func TestResolverLookup(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	fetcher := &fakeFetcher{profiles: map[string]readme.ProfileRecord{
		"octocat": {Name: "octocat", AvatarURL: "https://a/1"},
	}}
	resolver := NewResolver(fetcher, nil, 0)

	rec := resolver.Lookup(ctx, " octocat ")
	require.NotNil(t, rec)
	assert.Equal(t, "octocat", rec.Name)

	again := resolver.Lookup(ctx, "octocat")
	require.NotNil(t, again)
	assert.Len(t, fetcher.fetches, 1, "second lookup should be memoized")
}

func TestResolverLookup_EmptyHandle(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	fetcher := &fakeFetcher{}
	assert.Nil(t, NewResolver(fetcher, nil, 0).Lookup(ctx, "   "))
	assert.Empty(t, fetcher.fetches)
}

func TestResolverLookup_FailureIsAbsent(t *testing.T) {
	t.Parallel()
	ctx, getLogs := testutil.NewTestContext(t)

	resolver := NewResolver(&fakeFetcher{err: errors.New("network down")}, nil, 0)

	assert.Nil(t, resolver.Lookup(ctx, "octocat"))
	assert.Contains(t, getLogs(), "profile lookup failed")
	assert.Contains(t, getLogs(), "network down")
}

func TestResolverLookup_PersistentCache(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)
	store := newTestStore(t)

	fetcher := &fakeFetcher{profiles: map[string]readme.ProfileRecord{
		"octocat": {Name: "octocat"},
	}}
	require.NotNil(t, NewResolver(fetcher, store, time.Hour).Lookup(ctx, "octocat"))

	// A fresh resolver has an empty memo and must be served by the store.
	offline := &fakeFetcher{err: errors.New("offline")}
	rec := NewResolver(offline, store, time.Hour).Lookup(ctx, "OCTOCAT")
	require.NotNil(t, rec)
	assert.Equal(t, "octocat", rec.Name)
	assert.Empty(t, offline.fetches)
}

func TestResolverLookup_ZeroTTLSkipsStore(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)
	store := newTestStore(t)

	fetcher := &fakeFetcher{profiles: map[string]readme.ProfileRecord{"octocat": {Name: "octocat"}}}
	require.NotNil(t, NewResolver(fetcher, store, 0).Lookup(ctx, "octocat"))

	_, ok, err := store.Get(ctx, "octocat")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverEnrichTeam(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	fetcher := &fakeFetcher{
		profiles: map[string]readme.ProfileRecord{
			"alice": {Name: "alice"},
		},
		search: map[string][]readme.ProfileRecord{
			"bobby": {{Name: "bob"}, {Name: "bobby-tables"}},
		},
	}

	team := NewResolver(fetcher, nil, 0).EnrichTeam(ctx, []string{"alice", "bobby", "", "ghost"})

	assert.Equal(t, []readme.ProfileRecord{{Name: "alice"}, {Name: "bob"}}, team)
	assert.Equal(t, []string{"bobby", "ghost"}, fetcher.searches)
}

func TestResolverPrune(t *testing.T) {
	t.Parallel()
	ctx, _ := testutil.NewTestContext(t)

	// No store configured: nothing to do, must not panic.
	NewResolver(&fakeFetcher{}, nil, 0).Prune(ctx)

	store := newTestStore(t)
	require.NoError(t, store.Put(ctx, "old", readme.ProfileRecord{Name: "old"}, -time.Minute))
	NewResolver(&fakeFetcher{}, store, time.Hour).Prune(ctx)

	var count int
	require.NoError(t, store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile_cache").Scan(&count))
	assert.Equal(t, 0, count)
}
