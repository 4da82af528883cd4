// Package tx defines the raw transaction shape the engine operates
// on: the wire-adjacent view fed to the leg builder, as handed back
// by the signature/transaction source collaborators.
package tx

import "github.com/ledgerlens/ledgerlens/internal/protocol"

// TokenBalance is one token account's balance at a point in time
// (pre or post execution), as reported by the RPC collaborator.
type TokenBalance struct {
	AccountIndex int
	Mint         string
	Owner        string
	RawAmount    string
	Decimals     uint8
}

// RawTransaction is the normalized input to the leg builder. The
// engine never constructs these itself (§1 scope) — they arrive from
// a caller-supplied transaction source collaborator (§6).
type RawTransaction struct {
	Signature  string
	Slot       uint64
	BlockTime  *int64
	Err        string
	ProgramIds []string
	Protocol   *protocol.Info
	// AccountKeys is the ordered list of accounts referenced by the
	// transaction message; position 0 is always the fee payer.
	AccountKeys []string
	Memo        string
	FeeRawUnits string

	PreNativeBalances  map[string]string // address -> raw lamports
	PostNativeBalances map[string]string

	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance

	// RewardCandidates lists addresses the upstream collaborator has
	// identified (via instruction-level parsing outside this engine's
	// scope) as recipients of a staking reward distribution in this
	// transaction. Used by the leg builder's reward retagging step.
	RewardCandidates []string
}

// FeePayer returns the transaction's fee-paying account, accountKeys[0].
func (t *RawTransaction) FeePayer() string {
	if len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0]
}

// Failed reports whether the transaction's err field is populated.
func (t *RawTransaction) Failed() bool {
	return t.Err != ""
}

// HasMemoProgram reports whether the transaction references the SPL
// memo program, used by the Solana-Pay classifier's trigger check.
func (t *RawTransaction) HasMemoProgram() bool {
	for _, id := range t.ProgramIds {
		if id == MemoProgramId {
			return true
		}
	}
	return false
}

// MemoProgramId is the well-known SPL memo program address.
const MemoProgramId = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"
