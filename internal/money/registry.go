package money

import "github.com/ledgerlens/ledgerlens/internal/config"

// NativeMint is the sentinel mint identifier used for native SOL
// balances (pre/post native balances are not associated with a real
// mint address on-chain).
const NativeMint = "native"

// WrappedSolMint is the canonical wrapped-SOL SPL mint. Legs
// denominated in wrapped SOL are reported under the same "SOL" symbol
// as native lamports for classifier purposes, without merging their
// underlying account ids.
const WrappedSolMint = "So11111111111111111111111111111111111111112"

var nativeSol = TokenInfo{
	Mint:     NativeMint,
	Symbol:   "SOL",
	Name:     "Solana",
	Decimals: 9,
}

// mainnetRegistry is the static mint -> TokenInfo table for mainnet.
var mainnetRegistry = map[string]TokenInfo{
	NativeMint: nativeSol,
	WrappedSolMint: {
		Mint:     WrappedSolMint,
		Symbol:   "SOL",
		Name:     "Wrapped SOL",
		Decimals: 9,
	},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {
		Mint:     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Symbol:   "USDC",
		Name:     "USD Coin",
		Decimals: 6,
	},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {
		Mint:     "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
		Symbol:   "USDT",
		Name:     "Tether USD",
		Decimals: 6,
	},
	"mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So": {
		Mint:     "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So",
		Symbol:   "mSOL",
		Name:     "Marinade staked SOL",
		Decimals: 9,
	},
	"7dHbWXmci3dT8UFYWYZweBLXgycu7Y3iL6trKn1Y7ARj": {
		Mint:     "7dHbWXmci3dT8UFYWYZweBLXgycu7Y3iL6trKn1Y7ARj",
		Symbol:   "stSOL",
		Name:     "Lido Staked SOL",
		Decimals: 9,
	},
}

// devnetRegistry is the static mint -> TokenInfo table for devnet.
// Devnet mints are distinct addresses from mainnet; only a small
// faucet-token set is seeded since devnet never hits the network for
// metadata (§4.J).
var devnetRegistry = map[string]TokenInfo{
	NativeMint: nativeSol,
	"So11111111111111111111111111111111111111112": {
		Mint:     "So11111111111111111111111111111111111111112",
		Symbol:   "SOL",
		Name:     "Wrapped SOL",
		Decimals: 9,
	},
	"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU": {
		Mint:     "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		Symbol:   "USDC",
		Name:     "USD Coin (devnet)",
		Decimals: 6,
	},
}

// registryFor returns the static registry for a network name,
// defaulting to mainnet for any unrecognized value.
func registryFor(network string) map[string]TokenInfo {
	if network == "devnet" {
		return devnetRegistry
	}
	return mainnetRegistry
}

// Lookup resolves a TokenInfo for a mint on a network. overrides (if
// non-nil) are consulted first and win over the static registry;
// unresolved mints fall back to a deterministic placeholder.
func Lookup(network, mint string, overrides map[string]TokenInfo) TokenInfo {
	if info, ok := LookupStatic(network, mint, overrides); ok {
		return info
	}
	return Placeholder(mint)
}

// LookupStatic is Lookup without the placeholder fallback: ok is false
// when neither overrides nor the static registry know the mint, which
// callers use to decide whether to continue to a remote metadata fetch.
func LookupStatic(network, mint string, overrides map[string]TokenInfo) (TokenInfo, bool) {
	if overrides != nil {
		if info, ok := overrides[mint]; ok {
			return info, true
		}
	}
	info, ok := registryFor(network)[mint]
	return info, ok
}

// OverridesFromConfig adapts the config package's TokenOverride shape
// into the TokenInfo map Lookup expects.
func OverridesFromConfig(raw map[string]config.TokenOverride) map[string]TokenInfo {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]TokenInfo, len(raw))
	for mint, o := range raw {
		out[mint] = TokenInfo{
			Mint:     o.Mint,
			Symbol:   o.Symbol,
			Name:     o.Name,
			Decimals: o.Decimals,
		}
	}
	return out
}
