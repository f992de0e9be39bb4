package search

import (
	"context"
	"time"

	"fete/internal/cachemanager"
	"fete/internal/party"
)

// DefaultCacheTTL is how long provider results stay warm.
const DefaultCacheTTL = 10 * time.Minute

// CachedProvider decorates a provider with a read-through TTL cache
// keyed by category, query text, and result limit. Provider failures
// are never cached.
type CachedProvider struct {
	category party.Category
	ttl      time.Duration
	rtc      *cachemanager.ReadThroughCache[string, []*party.Item, Query]
}

// NewCachedProvider wraps inner with the cache. A zero ttl uses
// DefaultCacheTTL.
func NewCachedProvider(
	category party.Category,
	inner party.Provider,
	cache cachemanager.CacheManager[string, []*party.Item],
	ttl time.Duration,
) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	loader := func(ctx context.Context, q Query) ([]*party.Item, error) {
		return inner.Search(ctx, q.Text, q.MaxResults)
	}
	return &CachedProvider{
		category: category,
		ttl:      ttl,
		rtc:      cachemanager.NewReadThroughCache[string, []*party.Item, Query](cache, loader, false),
	}
}

// Search serves repeated queries from the cache.
func (p *CachedProvider) Search(ctx context.Context, query string, maxResults int) ([]*party.Item, error) {
	q := Query{Text: query, MaxResults: maxResults}
	return p.rtc.Get(ctx, q.Key(p.category), q, p.ttl)
}
