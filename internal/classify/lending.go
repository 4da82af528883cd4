package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyLending(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if rawTx.Protocol == nil || !protocol.IsLending(rawTx.Protocol.Id) {
		return nil
	}

	who := initiator(rawTx)
	if who == "" {
		return nil
	}

	var debits, credits []legs.TxLeg
	for _, l := range legsForAddress(legList, who) {
		switch {
		case l.Side == legs.SideDebit && (l.Role == legs.RoleSent || l.Role == legs.RoleProtocolDeposit):
			debits = append(debits, l)
		case l.Side == legs.SideCredit && (l.Role == legs.RoleReceived || l.Role == legs.RoleProtocolWithdraw):
			credits = append(credits, l)
		}
	}
	if len(debits) == 0 && len(credits) == 0 {
		return nil
	}

	var primaryType PrimaryType
	var candidates []legs.TxLeg
	switch {
	case len(debits) > 0 && len(credits) == 0:
		primaryType = TypeTokenDeposit
		candidates = debits
	case len(credits) > 0 && len(debits) == 0:
		primaryType = TypeTokenWithdraw
		candidates = credits
	default:
		if sumUi(debits) >= sumUi(credits) {
			primaryType = TypeTokenDeposit
			candidates = debits
		} else {
			primaryType = TypeTokenWithdraw
			candidates = credits
		}
	}

	primary := preferNonNative(candidates)
	amount := primary.Amount
	return &Classification{
		PrimaryType:   primaryType,
		PrimaryAmount: &amount,
		Sender:        who,
		Confidence:    0.9,
		IsRelevant:    true,
		Metadata:      map[string]any{},
	}
}

// preferNonNative picks the largest non-native leg if one exists,
// else falls back to the largest overall. Native/wrapped movements in
// a lending flow are usually rent and noise, not the economic primary.
func preferNonNative(candidates []legs.TxLeg) legs.TxLeg {
	var nonNative []legs.TxLeg
	for _, l := range candidates {
		if l.Amount.Token.Mint != money.NativeMint {
			nonNative = append(nonNative, l)
		}
	}
	if len(nonNative) > 0 {
		best, _ := largestByUi(nonNative)
		return best
	}
	best, _ := largestByUi(candidates)
	return best
}
