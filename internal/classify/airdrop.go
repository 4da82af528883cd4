package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyAirdrop(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	var protocolLegs []legs.TxLeg
	var nonNativeCredits []legs.TxLeg
	var nonNativeDebits []legs.TxLeg

	for _, l := range legList {
		parsed := account.Parse(l.AccountId)
		if parsed.Kind == account.KindProtocol {
			protocolLegs = append(protocolLegs, l)
			continue
		}
		if parsed.Kind != account.KindExternal || l.Amount.Token.Mint == money.NativeMint {
			continue
		}
		switch {
		case l.Side == legs.SideCredit && l.Role == legs.RoleReceived:
			nonNativeCredits = append(nonNativeCredits, l)
		case l.Side == legs.SideDebit && l.Role == legs.RoleSent:
			nonNativeDebits = append(nonNativeDebits, l)
		}
	}

	if len(protocolLegs) == 0 || len(nonNativeCredits) == 0 || len(nonNativeDebits) != 0 {
		return nil
	}

	primary := nonNativeCredits[0].Amount
	receiver := account.Parse(nonNativeCredits[0].AccountId).Address

	var sender string
	for _, l := range protocolLegs {
		if l.Side == legs.SideDebit {
			sender = account.Parse(l.AccountId).Address
			break
		}
	}

	return &Classification{
		PrimaryType:   TypeAirdrop,
		PrimaryAmount: &primary,
		Sender:        sender,
		Receiver:      receiver,
		Confidence:    0.85,
		IsRelevant:    true,
		Metadata:      map[string]any{},
	}
}
