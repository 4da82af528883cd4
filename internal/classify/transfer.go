package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// knownFacilitators are relayer/sponsor addresses whose presence
// annotates a transfer without changing its semantics (§1 glossary:
// Facilitator).
var knownFacilitators = map[string]bool{
	"faciLitatoR11111111111111111111111111111111": true,
}

// knownMerchants are addresses recognized as payment-accepting
// merchants even outside the Solana-Pay memo path.
var knownMerchants = map[string]bool{}

func classifyTransfer(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	pair, ok := bestTransferPair(legList)
	if !ok {
		return nil
	}
	return buildTransferClassification(TypeTransfer, 0.95, pair, legList, rawTx)
}

// transferPair is a matched sender-debit / receiver-credit leg pair.
type transferPair struct {
	sender   legs.TxLeg
	receiver legs.TxLeg
}

// bestTransferPair finds the largest sender debit leg that has a
// matching receiver credit leg of the same mint on a different
// external account.
func bestTransferPair(legList []legs.TxLeg) (transferPair, bool) {
	debits := externalLegsWhere(legList, legs.SideDebit, legs.RoleSent)
	credits := externalLegsWhere(legList, legs.SideCredit, legs.RoleReceived)

	sortedDebits := append([]legs.TxLeg(nil), debits...)
	for i := 0; i < len(sortedDebits); i++ {
		for j := i + 1; j < len(sortedDebits); j++ {
			if sortedDebits[j].Amount.UiUnits > sortedDebits[i].Amount.UiUnits {
				sortedDebits[i], sortedDebits[j] = sortedDebits[j], sortedDebits[i]
			}
		}
	}

	for _, d := range sortedDebits {
		dAddr := account.Parse(d.AccountId).Address
		for _, c := range credits {
			cAddr := account.Parse(c.AccountId).Address
			if cAddr == dAddr {
				continue
			}
			if c.Amount.Token.Mint != d.Amount.Token.Mint {
				continue
			}
			return transferPair{sender: d, receiver: c}, true
		}
	}
	return transferPair{}, false
}

// buildTransferClassification is shared by the plain transfer and
// Solana-Pay classifiers, which behave identically aside from trigger
// condition, primaryType, confidence, and memo annotation.
func buildTransferClassification(primaryType PrimaryType, confidence float64, pair transferPair, legList []legs.TxLeg, rawTx *tx.RawTransaction) *Classification {
	senderAddr := account.Parse(pair.sender.AccountId).Address
	receiverAddr := account.Parse(pair.receiver.AccountId).Address

	metadata := map[string]any{}
	counterpartyType := CounterpartyUnknown
	counterpartyName := shortName(receiverAddr)

	if knownMerchants[receiverAddr] {
		counterpartyType = CounterpartyMerchant
		metadata["merchant"] = receiverAddr
	}
	for _, key := range rawTx.AccountKeys {
		if knownFacilitators[key] {
			metadata["payment_type"] = "facilitated"
			break
		}
	}

	amount := pair.sender.Amount
	return &Classification{
		PrimaryType:   primaryType,
		PrimaryAmount: &amount,
		Sender:        senderAddr,
		Receiver:      receiverAddr,
		Counterparty: &Counterparty{
			Type:    counterpartyType,
			Address: receiverAddr,
			Name:    counterpartyName,
		},
		Confidence: confidence,
		IsRelevant: true,
		Metadata:   metadata,
	}
}
