package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyNftMint(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if rawTx.Protocol == nil || !protocol.IsNftMint(rawTx.Protocol.Id) {
		return nil
	}

	var nftLegs []legs.TxLeg
	for _, l := range legList {
		if l.Side != legs.SideCredit {
			continue
		}
		if l.Role != legs.RoleReceived && l.Role != legs.RoleProtocolWithdraw {
			continue
		}
		if l.Amount.Token.Decimals != 0 || l.Amount.UiUnits < 1 {
			continue
		}
		nftLegs = append(nftLegs, l)
	}
	if len(nftLegs) == 0 {
		return nil
	}

	primary := nftLegs[0].Amount
	quantity := sumUi(nftLegs)

	var mintPrice *money.MoneyAmount
	for _, l := range legList {
		if l.Side == legs.SideDebit && l.Role == legs.RoleSent && l.Amount.Token.Mint == money.NativeMint {
			amt := l.Amount
			mintPrice = &amt
			break
		}
	}

	receiver := account.Parse(nftLegs[0].AccountId).Address
	metadata := map[string]any{"quantity": quantity}
	if mintPrice != nil {
		metadata["mint_price"] = mintPrice.UiUnits
	}

	return &Classification{
		PrimaryType:     TypeNftMint,
		PrimaryAmount:   &primary,
		SecondaryAmount: mintPrice,
		Receiver:        receiver,
		Confidence:      0.9,
		IsRelevant:      true,
		Metadata:        metadata,
	}
}
