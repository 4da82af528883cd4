package tokenmeta

import (
	"context"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/logging"
	"github.com/ledgerlens/ledgerlens/internal/money"
)

const (
	// DefaultTTL is how long a remotely-resolved entry stays cached.
	DefaultTTL = 5 * time.Minute
	// DefaultCooldown is how long a mint is skipped after a failed fetch.
	DefaultCooldown = 30 * time.Second
	// DefaultFetchDeadline bounds a single remote fetch attempt.
	DefaultFetchDeadline = 10 * time.Second
)

// RemoteFetcher is the collaborator that resolves a mint's metadata
// from chain/off-chain token lists. Supplied by the caller; this
// package never talks to the network itself (§1 scope).
type RemoteFetcher interface {
	FetchTokenMetadata(ctx context.Context, mint string) (money.TokenInfo, error)
}

// Fetcher implements the resolution fallback chain: static registry,
// then local cache, then remote fetch, then placeholder. Devnet never
// reaches the remote fetcher, since devnet mints are not expected to
// resolve against a mainnet token list.
type Fetcher struct {
	network   string
	overrides map[string]money.TokenInfo
	cache     *Cache
	cooldown  *cooldownTracker
	remote    RemoteFetcher

	ttl            time.Duration
	cooldownPeriod time.Duration
	fetchDeadline  time.Duration
}

// NewFetcher builds a Fetcher for one network. cache may be nil, which
// disables the local-cache tier (every miss falls through to remote).
func NewFetcher(network string, overrides map[string]money.TokenInfo, cache *Cache, remote RemoteFetcher) *Fetcher {
	return &Fetcher{
		network:        network,
		overrides:      overrides,
		cache:          cache,
		cooldown:       newCooldownTracker(),
		remote:         remote,
		ttl:            DefaultTTL,
		cooldownPeriod: DefaultCooldown,
		fetchDeadline:  DefaultFetchDeadline,
	}
}

// Resolve returns the best-known TokenInfo for mint, walking the
// fallback chain and never returning an error: an unresolvable mint
// resolves to a deterministic placeholder.
func (f *Fetcher) Resolve(ctx context.Context, mint string) money.TokenInfo {
	if info, ok := money.LookupStatic(f.network, mint, f.overrides); ok {
		return info
	}

	if f.cache != nil {
		if info, ok := f.cache.Get(mint); ok {
			return info
		}
	}

	if f.network == "devnet" || f.remote == nil {
		return money.Placeholder(mint)
	}

	if f.cooldown.active(mint) {
		return money.Placeholder(mint)
	}

	info, err := f.fetchRemote(ctx, mint)
	if err != nil {
		logging.GetLogger().Warnw("remote token metadata fetch failed", "mint", mint, "error", err)
		f.cooldown.markFailed(mint, f.cooldownPeriod)
		return money.Placeholder(mint)
	}

	if f.cache != nil {
		if err := f.cache.Set(mint, info, f.ttl); err != nil {
			logging.GetLogger().Warnw("failed to cache token metadata", "mint", mint, "error", err)
		}
	}
	return info
}

func (f *Fetcher) fetchRemote(ctx context.Context, mint string) (money.TokenInfo, error) {
	deadlineCtx, cancel := context.WithTimeout(ctx, f.fetchDeadline)
	defer cancel()
	return f.remote.FetchTokenMetadata(deadlineCtx, mint)
}
