package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func isStakeProtocol(rawTx *tx.RawTransaction) bool {
	return rawTx.Protocol != nil && protocol.IsStake(rawTx.Protocol.Id)
}

func classifyStakeDeposit(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if !isStakeProtocol(rawTx) {
		return nil
	}

	var candidates []legs.TxLeg
	for _, l := range legList {
		if l.Side != legs.SideDebit || l.Amount.Token.Mint != money.NativeMint {
			continue
		}
		if l.Role != legs.RoleSent && l.Role != legs.RoleProtocolDeposit {
			continue
		}
		candidates = append(candidates, l)
	}
	if len(candidates) != 1 {
		return nil
	}

	leg := candidates[0]
	amount := leg.Amount
	addr := account.Parse(leg.AccountId).Address
	return &Classification{
		PrimaryType:   TypeStakeDeposit,
		PrimaryAmount: &amount,
		Sender:        addr,
		Confidence:    0.9,
		IsRelevant:    true,
		Metadata:      map[string]any{},
	}
}

func classifyStakeWithdraw(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if !isStakeProtocol(rawTx) {
		return nil
	}

	var credits []legs.TxLeg
	for _, l := range legList {
		if l.Side != legs.SideCredit || l.Amount.Token.Mint != money.NativeMint {
			continue
		}
		if l.Role != legs.RoleReceived && l.Role != legs.RoleProtocolWithdraw {
			continue
		}
		credits = append(credits, l)
	}
	if len(credits) != 1 {
		return nil
	}

	addr := account.Parse(credits[0].AccountId).Address
	for _, l := range legList {
		if l.Side == legs.SideDebit && l.Amount.Token.Mint == money.NativeMint && l.Role == legs.RoleSent {
			if account.Parse(l.AccountId).Address == addr {
				// Matching native debit from the same user: re-stake
				// pattern, not a withdrawal.
				return nil
			}
		}
	}

	amount := credits[0].Amount
	return &Classification{
		PrimaryType:   TypeStakeWithdraw,
		PrimaryAmount: &amount,
		Receiver:      addr,
		Confidence:    0.9,
		IsRelevant:    true,
		Metadata:      map[string]any{},
	}
}
