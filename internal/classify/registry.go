package classify

import (
	"sort"

	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// ClassifyFunc is a pure decision function over a transaction's legs
// and raw metadata. It returns nil when the classifier does not
// match; it never panics on malformed input.
type ClassifyFunc func(legList []legs.TxLeg, rawTx *tx.RawTransaction, walletAddress string) *Classification

// entry pairs a classifier with its dispatch priority.
type entry struct {
	name     string
	priority int
	classify ClassifyFunc
}

// registrations is the immutable ordered list of classifiers,
// populated once at package init. Priority-82 ties (stake-deposit,
// liquidity) are broken by registration order: stake-deposit first,
// since the two fire under mutually exclusive protocol categories and
// the ordering is never actually observed.
var registrations = []entry{
	{"solana-pay", 95, classifySolanaPay},
	{"bridge", 88, classifyBridge},
	{"privacy-cash", 86, classifyPrivacyCash},
	{"nft-mint", 85, classifyNftMint},
	{"lending", 83, classifyLending},
	{"stake-deposit", 82, classifyStakeDeposit},
	{"liquidity", 82, classifyLiquidity},
	{"stake-withdraw", 81, classifyStakeWithdraw},
	{"swap", 80, classifySwap},
	{"reward", 71, classifyReward},
	{"airdrop", 70, classifyAirdrop},
	{"fee-only", 60, classifyFeeOnly},
	{"transfer", 20, classifyTransfer},
}

// dispatchOrder is registrations sorted by descending priority, ties
// broken by original registration order (sort.SliceStable).
var dispatchOrder = sortedByPriority(registrations)

func sortedByPriority(in []entry) []entry {
	out := make([]entry, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].priority > out[j].priority
	})
	return out
}

// Dispatch runs the classifier registry against one transaction's
// legs, returning the first matching classification by descending
// priority. If none match, returns Unclassified().
func Dispatch(legList []legs.TxLeg, rawTx *tx.RawTransaction, walletAddress string) Classification {
	for _, e := range dispatchOrder {
		if result := e.classify(legList, rawTx, walletAddress); result != nil {
			return *result
		}
	}
	return Unclassified()
}
