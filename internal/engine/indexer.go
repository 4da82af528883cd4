package engine

import (
	"context"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/fetch"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/logging"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/spam"
	"github.com/ledgerlens/ledgerlens/internal/tokenmeta"
	"github.com/ledgerlens/ledgerlens/internal/tx"
	"github.com/ledgerlens/ledgerlens/internal/xerrors"
)

// Options configures one Indexer. SignatureSource and TransactionSource
// are required; BalanceSource and RemoteTokenFetcher are optional — a
// nil BalanceSource makes GetBalance return a Configuration error, and
// a nil RemoteTokenFetcher means unknown mints resolve to placeholders
// rather than a remote lookup.
type Options struct {
	Network            string
	TokenOverrides     map[string]money.TokenInfo
	SignatureSource    fetch.SignatureSource
	TransactionSource  fetch.TransactionSource
	BalanceSource      BalanceSource
	RemoteTokenFetcher tokenmeta.RemoteFetcher
}

// Indexer is the engine's top-level handle: construct one with New,
// call Start before use, Stop when done.
type Indexer struct {
	network   string
	overrides map[string]money.TokenInfo

	sigSource     fetch.SignatureSource
	txSource      fetch.TransactionSource
	balanceSource BalanceSource
	remote        tokenmeta.RemoteFetcher

	cache   *tokenmeta.Cache
	fetcher *tokenmeta.Fetcher
}

// New constructs an Indexer. Call Start before issuing any requests.
func New(opts Options) *Indexer {
	return &Indexer{
		network:       opts.Network,
		overrides:     opts.TokenOverrides,
		sigSource:     opts.SignatureSource,
		txSource:      opts.TransactionSource,
		balanceSource: opts.BalanceSource,
		remote:        opts.RemoteTokenFetcher,
	}
}

// Start opens the token metadata cache. Mirrors the open/close
// lifecycle of the engine's persistence substrate.
func (idx *Indexer) Start() error {
	cache, err := tokenmeta.NewCache(idx.network)
	if err != nil {
		logging.GetLogger().Warnw("token metadata cache unavailable, continuing without it", "error", err)
		cache = nil
	}
	idx.cache = cache
	idx.fetcher = tokenmeta.NewFetcher(idx.network, idx.overrides, cache, idx.remote)
	return nil
}

// Stop closes the token metadata cache.
func (idx *Indexer) Stop() {
	if idx.cache != nil {
		if err := idx.cache.Close(); err != nil {
			logging.GetLogger().Warnw("failed to close token metadata cache", "error", err)
		}
	}
}

// GetTransactionsOptions mirrors the per-call fetch configuration §6
// recognizes; zero values fall back to internal/config's defaults.
type GetTransactionsOptions struct {
	Limit               int
	Before              string
	Until               string
	FilterSpam          *bool
	SpamConfig          *spam.Config
	MaxIterations       int
	OverfetchMultiplier int
	MinPageSize         int
}

// GetTransactions returns up to opts.Limit classified transactions for
// walletAddress, newest first, filtering spam/dust unless disabled.
func (idx *Indexer) GetTransactions(ctx context.Context, walletAddress string, opts GetTransactionsOptions) ([]classify.ClassifiedTransaction, error) {
	if idx.sigSource == nil || idx.txSource == nil {
		return nil, xerrors.Configuration("engine: signature/transaction source not configured")
	}
	cfg := config.GetConfig()

	limit := opts.Limit
	if limit <= 0 {
		limit = cfg.Fetch.Limit
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = cfg.Fetch.MaxIterations
	}
	overfetch := opts.OverfetchMultiplier
	if overfetch <= 0 {
		overfetch = cfg.Fetch.OverfetchMultiplier
	}
	minPage := opts.MinPageSize
	if minPage <= 0 {
		minPage = cfg.Fetch.MinPageSize
	}
	filterSpam := true
	if opts.FilterSpam != nil {
		filterSpam = *opts.FilterSpam
	}
	spamCfg := spam.DefaultConfig()
	spamCfg.DustFloorNative = cfg.Spam.DustFloorNative
	spamCfg.DustFloorStablecoin = cfg.Spam.DustFloorStablecoin
	spamCfg.ConfidenceFloor = cfg.Spam.ConfidenceFloor
	spamCfg.AllowFailed = cfg.Spam.AllowFailed
	if opts.SpamConfig != nil {
		spamCfg = *opts.SpamConfig
	}

	return fetch.Accumulate(ctx, idx.sigSource, idx.txSource, walletAddress, fetch.Options{
		Limit:               limit,
		Before:              opts.Before,
		Until:               opts.Until,
		FilterSpam:          filterSpam,
		SpamConfig:          spamCfg,
		MaxIterations:       maxIter,
		OverfetchMultiplier: overfetch,
		MinPageSize:         minPage,
		Network:             idx.network,
		TokenOverrides:      idx.overrides,
	})
}

// GetTransaction resolves and classifies a single signature from
// walletAddress's viewpoint, nil if the signature doesn't exist.
func (idx *Indexer) GetTransaction(ctx context.Context, signature string, walletAddress string) (*classify.ClassifiedTransaction, error) {
	if signature == "" {
		return nil, xerrors.InvalidInput("engine: signature must not be empty")
	}
	raw, err := idx.GetRawTransaction(ctx, signature)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	legList, diag := legs.Build(raw, idx.network, idx.overrides)
	classification := classify.Dispatch(legList, raw, walletAddress)
	return &classify.ClassifiedTransaction{
		Tx:             raw,
		Legs:           legList,
		Classification: classification,
		Diagnostics:    diag,
	}, nil
}

// GetRawTransaction returns the unclassified transaction for a single
// signature, nil if it doesn't exist.
func (idx *Indexer) GetRawTransaction(ctx context.Context, signature string) (*tx.RawTransaction, error) {
	if idx.txSource == nil {
		return nil, xerrors.Configuration("engine: transaction source not configured")
	}
	if signature == "" {
		return nil, xerrors.InvalidInput("engine: signature must not be empty")
	}
	raws, err := idx.txSource.FetchTransactions(ctx, []string{signature})
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}
	return raws[0], nil
}

// TokenAmount is one resolved token holding within a WalletBalance.
type TokenAmount struct {
	Mint   string
	Amount money.MoneyAmount
}

// WalletBalance is a wallet's current native and token holdings, with
// token metadata resolved through the static registry/remote fetcher
// fallback chain.
type WalletBalance struct {
	Native money.MoneyAmount
	Tokens []TokenAmount
}

// GetBalance returns walletAddress's current native and token
// balances. mints, if non-empty, restricts which token accounts are
// resolved.
func (idx *Indexer) GetBalance(ctx context.Context, walletAddress string, mints []string) (WalletBalance, error) {
	if idx.balanceSource == nil {
		return WalletBalance{}, xerrors.Configuration("engine: balance source not configured")
	}
	if walletAddress == "" {
		return WalletBalance{}, xerrors.InvalidInput("engine: walletAddress must not be empty")
	}

	raw, err := idx.balanceSource.FetchBalance(ctx, walletAddress, mints)
	if err != nil {
		return WalletBalance{}, err
	}

	nativeToken := money.Lookup(idx.network, money.NativeMint, idx.overrides)
	balance := WalletBalance{
		Native: money.NewMoneyAmount(nativeToken, raw.NativeRawUnits),
		Tokens: make([]TokenAmount, 0, len(raw.Tokens)),
	}

	for _, t := range raw.Tokens {
		var token money.TokenInfo
		if idx.fetcher != nil {
			token = idx.fetcher.Resolve(ctx, t.Mint)
		} else {
			token = money.Lookup(idx.network, t.Mint, idx.overrides)
		}
		if t.Decimals != 0 {
			token.Decimals = t.Decimals
		}
		balance.Tokens = append(balance.Tokens, TokenAmount{
			Mint:   t.Mint,
			Amount: money.NewMoneyAmount(token, t.RawAmount),
		})
	}
	return balance, nil
}
