package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classifySwap(legList []legs.TxLeg, rawTx *tx.RawTransaction, walletAddress string) *Classification {
	who := walletAddress
	if who == "" {
		who = initiator(rawTx)
	}
	if who == "" {
		return nil
	}

	pair, ok := bestSwapPair(legList, who)
	if !ok && walletAddress != "" {
		// Fall back to the initiator's own pair if the requested wallet
		// has none, per "classify from the viewpoint of X" being a view
		// on top of the same underlying transaction.
		pair, ok = bestSwapPair(legList, initiator(rawTx))
	}
	if !ok {
		return nil
	}

	confidence := 0.75
	if rawTx.Protocol != nil && protocol.IsDex(rawTx.Protocol.Id) {
		confidence = 0.95
	}

	out := pair.out
	in := pair.in
	return &Classification{
		PrimaryType:     TypeSwap,
		PrimaryAmount:   &out.Amount,
		SecondaryAmount: &in.Amount,
		Sender:          who,
		Confidence:      confidence,
		IsRelevant:      true,
		Metadata: map[string]any{
			"from_amount": out.Amount.UiUnits,
			"to_amount":   in.Amount.UiUnits,
		},
	}
}

type swapPair struct {
	out legs.TxLeg // token leaving the wallet
	in  legs.TxLeg // token arriving in the wallet
}

// bestSwapPair finds the (out, in) leg pair for addr maximizing
// max(out.ui, in.ui) among different-symbol debit/credit pairs.
func bestSwapPair(legList []legs.TxLeg, addr string) (swapPair, bool) {
	var debits, credits []legs.TxLeg
	for _, l := range legsForAddress(legList, addr) {
		switch {
		case l.Side == legs.SideDebit && (l.Role == legs.RoleSent || l.Role == legs.RoleProtocolDeposit):
			debits = append(debits, l)
		case l.Side == legs.SideCredit && (l.Role == legs.RoleReceived || l.Role == legs.RoleProtocolWithdraw):
			credits = append(credits, l)
		}
	}
	if len(debits) == 0 || len(credits) == 0 {
		return swapPair{}, false
	}

	var best swapPair
	var bestScore float64
	found := false
	for _, d := range debits {
		for _, c := range credits {
			if d.Amount.Token.Symbol == c.Amount.Token.Symbol {
				continue
			}
			score := d.Amount.UiUnits
			if c.Amount.UiUnits > score {
				score = c.Amount.UiUnits
			}
			if !found || score > bestScore {
				best = swapPair{out: d, in: c}
				bestScore = score
				found = true
			}
		}
	}
	return best, found
}
