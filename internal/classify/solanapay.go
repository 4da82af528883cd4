package classify

import (
	"encoding/json"

	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// solanaPayMemo is the subset of a Solana Pay transfer-request memo
// this classifier understands.
type solanaPayMemo struct {
	Merchant  string `json:"merchant"`
	Item      string `json:"item"`
	Reference string `json:"reference"`
	Label     string `json:"label"`
	Message   string `json:"message"`
}

func classifySolanaPay(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	if !rawTx.HasMemoProgram() || rawTx.Memo == "" {
		return nil
	}
	pair, ok := bestTransferPair(legList)
	if !ok {
		return nil
	}

	result := buildTransferClassification(TypeSolanaPay, 0.98, pair, legList, rawTx)

	if isMemoJSON(rawTx.Memo) {
		var memo solanaPayMemo
		if err := json.Unmarshal([]byte(rawTx.Memo), &memo); err == nil && memo.Merchant != "" {
			result.Counterparty = &Counterparty{
				Type:    CounterpartyMerchant,
				Address: result.Receiver,
				Name:    memo.Merchant,
			}
			result.Metadata["merchant"] = memo.Merchant
			if memo.Item != "" {
				result.Metadata["item"] = memo.Item
			}
			if memo.Reference != "" {
				result.Metadata["reference"] = memo.Reference
			}
			if memo.Label != "" {
				result.Metadata["label"] = memo.Label
			}
			if memo.Message != "" {
				result.Metadata["message"] = memo.Message
			}
			return result
		}
	}
	result.Metadata["memo"] = rawTx.Memo
	return result
}
