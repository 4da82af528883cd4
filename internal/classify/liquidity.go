package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyLiquidity(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if rawTx.Protocol == nil || !protocol.IsDex(rawTx.Protocol.Id) {
		return nil
	}

	who := initiator(rawTx)
	if who == "" {
		return nil
	}

	var out, in []legs.TxLeg
	for _, l := range legsForAddress(legList, who) {
		switch {
		case l.Side == legs.SideDebit && (l.Role == legs.RoleSent || l.Role == legs.RoleProtocolDeposit):
			out = append(out, l)
		case l.Side == legs.SideCredit && (l.Role == legs.RoleReceived || l.Role == legs.RoleProtocolWithdraw):
			in = append(in, l)
		}
	}

	outSymbols := distinctSymbols(out)
	inSymbols := distinctSymbols(in)

	var primaryType PrimaryType
	var composite []legs.TxLeg
	switch {
	case len(outSymbols) >= 2 && len(inSymbols) == 1:
		primaryType = TypeLiquidityAdd
		composite = out
	case len(outSymbols) == 1 && len(inSymbols) >= 2:
		primaryType = TypeLiquidityRemove
		composite = in
	default:
		return nil
	}

	primaryLeg, ok := largestByUi(composite)
	if !ok {
		return nil
	}

	amount := primaryLeg.Amount
	return &Classification{
		PrimaryType:   primaryType,
		PrimaryAmount: &amount,
		Sender:        who,
		Confidence:    0.85,
		IsRelevant:    true,
		Metadata:      map[string]any{},
	}
}
