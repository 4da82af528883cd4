// Package engine wires the money, protocol, account, legs, classify,
// spam, fetch, and tokenmeta packages into the single surface a caller
// constructs and calls: an Indexer.
package engine

import "context"

// RawTokenBalance is one token account's current balance, as reported
// by the balance source collaborator.
type RawTokenBalance struct {
	Mint      string
	RawAmount string
	Decimals  uint8
}

// RawBalance is a wallet's current native and token balances, prior to
// token metadata enrichment.
type RawBalance struct {
	NativeRawUnits string
	Tokens         []RawTokenBalance
}

// BalanceSource is the collaborator that reports a wallet's current
// balances. mints, if non-empty, restricts the token accounts queried;
// empty means all. Not part of spec.md's two named collaborators, but
// required to serve getBalance (§6) under the same out-of-scope-RPC
// boundary (§1): the engine never queries the chain itself.
type BalanceSource interface {
	FetchBalance(ctx context.Context, address string, mints []string) (RawBalance, error)
}
