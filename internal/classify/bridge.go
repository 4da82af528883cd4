package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyBridge(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if rawTx.Protocol == nil || !protocol.IsBridge(rawTx.Protocol.Id) {
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

	// Mixed or credit-only: bridge_in takes precedence.
	var primaryType PrimaryType
	var candidates []legs.TxLeg
	if len(credits) > 0 {
		primaryType = TypeBridgeIn
		candidates = credits
	} else {
		primaryType = TypeBridgeOut
		candidates = debits
	}

	primary, ok := largestByUi(candidates)
	if !ok {
		return nil
	}

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
