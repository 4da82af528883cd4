package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyFeeOnly(legList []legs.TxLeg, _ *tx.RawTransaction, _ string) *Classification {
	var feeDebit legs.TxLeg
	var sawFeeDebit bool
	for _, l := range legList {
		if account.Parse(l.AccountId).Kind != account.KindExternal {
			continue
		}
		if l.Role != legs.RoleFee {
			return nil
		}
		if l.Side == legs.SideDebit && l.Amount.Token.Mint == money.NativeMint {
			feeDebit = l
			sawFeeDebit = true
		}
	}
	if !sawFeeDebit {
		return nil
	}

	amount := feeDebit.Amount
	return &Classification{
		PrimaryType:   TypeFeeOnly,
		PrimaryAmount: &amount,
		Confidence:    0.95,
		IsRelevant:    false,
		Metadata:      map[string]any{},
	}
}
