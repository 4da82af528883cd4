package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifyReward(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if !isStakeProtocol(rawTx) {
		return nil
	}

	rewardLegs := externalLegsWhere(legList, legs.SideCredit, legs.RoleReward)
	if len(rewardLegs) == 0 {
		return nil
	}

	byUser := make(map[string]bool)
	for _, l := range rewardLegs {
		byUser[account.Parse(l.AccountId).Address] = true
	}
	for addr := range byUser {
		for _, l := range legsForAddress(legList, addr) {
			if l.Side == legs.SideDebit && l.Role != legs.RoleFee {
				// Same user has a non-fee debit: this is a stake
				// operation, not a pure reward.
				return nil
			}
		}
	}

	largest, ok := largestByUi(rewardLegs)
	if !ok {
		return nil
	}

	rewards := make([]map[string]any, 0, len(rewardLegs))
	for _, l := range rewardLegs {
		rewards = append(rewards, map[string]any{
			"token":  l.Amount.Token.Symbol,
			"amount": l.Amount.UiUnits,
		})
	}

	amount := largest.Amount
	receiver := account.Parse(largest.AccountId).Address
	return &Classification{
		PrimaryType:   TypeReward,
		PrimaryAmount: &amount,
		Receiver:      receiver,
		Confidence:    0.85,
		IsRelevant:    true,
		Metadata:      map[string]any{"rewards": rewards, "reward_type": "staking"},
	}
}
