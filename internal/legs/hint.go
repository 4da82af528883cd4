package legs

import "github.com/ledgerlens/ledgerlens/internal/tx"

// irrelevantPrograms are program ids whose exclusive presence signals
// a transaction unlikely to carry a classifiable balance movement
// (vote transactions, bare compute-budget instructions). This is
// advisory only: QuickRelevanceHint returning false is a hint to skip
// full leg-building work, never a substitute for it.
var irrelevantPrograms = map[string]bool{
	"Vote111111111111111111111111111111111111111": true,
}

// QuickRelevanceHint is a cheap pre-check over program ids only (the
// RawTransaction model carries no log text) that flags transactions
// almost certainly irrelevant to classification, so a caller can skip
// the full leg-building pass. It never changes classification output
// when ignored.
func QuickRelevanceHint(t *tx.RawTransaction) bool {
	if len(t.ProgramIds) == 0 {
		return true
	}
	for _, id := range t.ProgramIds {
		if !irrelevantPrograms[id] {
			return true
		}
	}
	return false
}
