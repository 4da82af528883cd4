package tokenmeta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/tokenmeta"
)

type fakeRemote struct {
	calls int
	info  money.TokenInfo
	fail  bool
}

func (f *fakeRemote) FetchTokenMetadata(ctx context.Context, mint string) (money.TokenInfo, error) {
	f.calls++
	if f.fail {
		return money.TokenInfo{}, errors.New("not found")
	}
	return f.info, nil
}

func TestResolveReturnsStaticWithoutCallingRemote(t *testing.T) {
	remote := &fakeRemote{info: money.TokenInfo{Mint: "x", Symbol: "SHOULD_NOT_APPEAR"}}
	f := tokenmeta.NewFetcher("mainnet", nil, nil, remote)

	got := f.Resolve(context.Background(), money.NativeMint)
	if got.Symbol != "SOL" {
		t.Fatalf("Symbol = %q, want SOL (static registry hit)", got.Symbol)
	}
	if remote.calls != 0 {
		t.Errorf("remote fetcher should not be called for a statically-known mint, got %d calls", remote.calls)
	}
}

func TestResolveFallsBackToRemoteThenCaches(t *testing.T) {
	cfg := config.GetConfig()
	cfg.Storage.Directory = t.TempDir()

	cache, err := tokenmeta.NewCache("mainnet")
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	defer cache.Close()

	mint := "UnknownMint1111111111111111111111111111111"
	remote := &fakeRemote{info: money.TokenInfo{Mint: mint, Symbol: "NEW", Name: "New Token", Decimals: 6}}
	f := tokenmeta.NewFetcher("mainnet", nil, cache, remote)

	got := f.Resolve(context.Background(), mint)
	if got.Symbol != "NEW" {
		t.Fatalf("Symbol = %q, want NEW", got.Symbol)
	}
	if remote.calls != 1 {
		t.Fatalf("expected exactly one remote call, got %d", remote.calls)
	}

	got2 := f.Resolve(context.Background(), mint)
	if got2.Symbol != "NEW" {
		t.Fatalf("second resolve Symbol = %q, want NEW", got2.Symbol)
	}
	if remote.calls != 1 {
		t.Errorf("expected cache hit on second resolve, remote called %d times", remote.calls)
	}
}

func TestResolveFailureEntersCooldown(t *testing.T) {
	mint := "AlwaysFailsMint11111111111111111111111111111"
	remote := &fakeRemote{fail: true}
	f := tokenmeta.NewFetcher("mainnet", nil, nil, remote)

	first := f.Resolve(context.Background(), mint)
	if first.Name != "Unknown Token" {
		t.Fatalf("expected placeholder on first failed resolve, got %+v", first)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote call, got %d", remote.calls)
	}

	second := f.Resolve(context.Background(), mint)
	if second.Name != "Unknown Token" {
		t.Fatalf("expected placeholder on second resolve, got %+v", second)
	}
	if remote.calls != 1 {
		t.Errorf("expected cooldown to suppress a second remote call, remote called %d times", remote.calls)
	}
}

func TestResolveDevnetNeverCallsRemote(t *testing.T) {
	remote := &fakeRemote{info: money.TokenInfo{Mint: "x", Symbol: "SHOULD_NOT_APPEAR"}}
	f := tokenmeta.NewFetcher("devnet", nil, nil, remote)

	got := f.Resolve(context.Background(), "SomeUnknownDevnetMint11111111111111111111111")
	if got.Name != "Unknown Token" {
		t.Fatalf("expected placeholder on devnet for unknown mint, got %+v", got)
	}
	if remote.calls != 0 {
		t.Errorf("devnet must never call the remote fetcher, got %d calls", remote.calls)
	}
}

func TestResolveOverridesWinOverStatic(t *testing.T) {
	remote := &fakeRemote{}
	overrides := map[string]money.TokenInfo{
		money.NativeMint: {Mint: money.NativeMint, Symbol: "CUSTOM", Decimals: 9},
	}
	f := tokenmeta.NewFetcher("mainnet", overrides, nil, remote)

	got := f.Resolve(context.Background(), money.NativeMint)
	if got.Symbol != "CUSTOM" {
		t.Fatalf("Symbol = %q, want CUSTOM (override)", got.Symbol)
	}
}
