package profile

import (
	"context"
	"strings"
	"time"

	"github.com/goodreadme/goodreadme/internal/logging"
	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/hashicorp/golang-lru/v2"
)

const memoSize = 128

// Fetcher is the remote side of a lookup.
type Fetcher interface {
	Fetch(ctx context.Context, handle string) (*readme.ProfileRecord, error)
	Search(ctx context.Context, term string) ([]readme.ProfileRecord, error)
}

// Resolver turns handles into profiles, consulting an in-process memo and
// an optional persistent store before the network. It never reports
// failures: anything that goes wrong yields an absent profile.
type Resolver struct {
	fetcher Fetcher
	store   *Store
	memo    *lru.Cache[string, readme.ProfileRecord]
	ttl     time.Duration
}

// NewResolver creates a Resolver. store may be nil to disable persistent
// caching; a zero ttl also disables writes to it.
func NewResolver(fetcher Fetcher, store *Store, ttl time.Duration) *Resolver {
	memo, _ := lru.New[string, readme.ProfileRecord](memoSize)
	return &Resolver{
		fetcher: fetcher,
		store:   store,
		memo:    memo,
		ttl:     ttl,
	}
}

// Lookup returns the profile for handle, or nil when the handle is empty or
// the profile could not be resolved.
func (r *Resolver) Lookup(ctx context.Context, handle string) *readme.ProfileRecord {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil
	}
	logger := logging.Get(ctx).With().Str("handle", handle).Logger()
	key := cacheKey(handle)

	if rec, ok := r.memo.Get(key); ok {
		return &rec
	}

	if r.store != nil {
		rec, ok, err := r.store.Get(ctx, handle)
		if err != nil {
			logger.Warn().Err(err).Msg("profile cache read failed")
		}
		if ok {
			logger.Debug().Msg("profile served from cache")
			r.memo.Add(key, *rec)
			return rec
		}
	}

	rec, err := r.fetcher.Fetch(ctx, handle)
	if err != nil {
		logger.Warn().Err(err).Msg("profile lookup failed")
		return nil
	}

	r.memo.Add(key, *rec)
	if r.store != nil && r.ttl > 0 {
		if err := r.store.Put(ctx, handle, *rec, r.ttl); err != nil {
			logger.Warn().Err(err).Msg("profile cache write failed")
		}
	}
	logger.Debug().Msg("profile resolved")
	return rec
}

// EnrichTeam resolves each contributor handle into a profile. Handles that
// do not resolve directly fall back to the best search match; handles with
// no match are skipped. The document does not use this yet.
func (r *Resolver) EnrichTeam(ctx context.Context, handles []string) []readme.ProfileRecord {
	team := make([]readme.ProfileRecord, 0, len(handles))
	for _, handle := range handles {
		if rec := r.Lookup(ctx, handle); rec != nil {
			team = append(team, *rec)
			continue
		}

		if strings.TrimSpace(handle) == "" {
			continue
		}
		matches, err := r.fetcher.Search(ctx, handle)
		if err != nil {
			logging.Get(ctx).Warn().Err(err).Str("handle", handle).Msg("team member search failed")
			continue
		}
		if len(matches) > 0 {
			team = append(team, matches[0])
		}
	}
	return team
}

// Prune removes expired persistent cache entries, if a store is configured.
func (r *Resolver) Prune(ctx context.Context) {
	if r.store == nil {
		return
	}
	n, err := r.store.Prune(ctx)
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("profile cache prune failed")
		return
	}
	if n > 0 {
		logging.Get(ctx).Debug().Int64("removed", n).Msg("profile cache pruned")
	}
}
