// Package legs builds and validates the balanced double-entry leg
// list that all classifiers operate on. Legs are the authoritative,
// normalized view of a transaction; classifiers never touch raw
// pre/post balances directly.
package legs

import "github.com/ledgerlens/ledgerlens/internal/money"

// Side is which side of a double-entry pair a leg sits on.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Role further tags what kind of movement a leg represents.
type Role string

const (
	RoleSent             Role = "sent"
	RoleReceived         Role = "received"
	RoleFee              Role = "fee"
	RoleReward           Role = "reward"
	RoleProtocolDeposit  Role = "protocol_deposit"
	RoleProtocolWithdraw Role = "protocol_withdraw"
)

// TxLeg is one half of a double-entry pair: a single balance movement
// on one account for one token.
type TxLeg struct {
	AccountId string
	Side      Side
	Role      Role
	Amount    money.MoneyAmount
}

// Diagnostics carries non-error signals attached to a built leg set.
// BalanceMismatch is never surfaced as an error (§7, InvariantViolation
// is diagnostic-only) — the leg set is still returned.
type Diagnostics struct {
	BalanceMismatch bool
}

// BalanceEpsilon is the tolerance for the per-token debit/credit
// invariant, expressed in ui units.
const BalanceEpsilon = 1e-6
