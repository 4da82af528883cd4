package money_test

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/money"
)

func TestLookupStaticRegistry(t *testing.T) {
	info := money.Lookup("mainnet", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", nil)
	if info.Symbol != "USDC" {
		t.Errorf("Symbol = %q, want USDC", info.Symbol)
	}
}

func TestLookupWrappedSolNormalizesToSol(t *testing.T) {
	info := money.Lookup("mainnet", money.WrappedSolMint, nil)
	if info.Symbol != "SOL" {
		t.Errorf("Symbol = %q, want SOL", info.Symbol)
	}
	native := money.Lookup("mainnet", money.NativeMint, nil)
	if native.Symbol != "SOL" {
		t.Errorf("native Symbol = %q, want SOL", native.Symbol)
	}
	if info.Mint == native.Mint {
		t.Errorf("wrapped and native mints must not be merged: both %q", info.Mint)
	}
}

func TestLookupUnknownMintFallsBackToPlaceholder(t *testing.T) {
	info := money.Lookup("mainnet", "unknownmintaddress12345", nil)
	if info.Symbol != "unknownm" {
		t.Errorf("Symbol = %q, want placeholder", info.Symbol)
	}
}

func TestLookupOverrideWins(t *testing.T) {
	overrides := map[string]money.TokenInfo{
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {
			Mint:     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			Symbol:   "CUSTOM",
			Decimals: 6,
		},
	}
	info := money.Lookup("mainnet", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", overrides)
	if info.Symbol != "CUSTOM" {
		t.Errorf("Symbol = %q, want override CUSTOM", info.Symbol)
	}
}

func TestLookupDevnetDistinctFromMainnet(t *testing.T) {
	info := money.Lookup("devnet", "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU", nil)
	if info.Symbol != "USDC" {
		t.Errorf("Symbol = %q, want USDC", info.Symbol)
	}
	mainnetInfo := money.Lookup("mainnet", "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU", nil)
	if mainnetInfo.Symbol == "USDC" {
		t.Errorf("devnet mint should not resolve on mainnet registry")
	}
}
