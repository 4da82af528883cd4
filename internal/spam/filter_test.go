package spam_test

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/spam"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func classified(amount float64, confidence float64, relevant bool, failed bool) classify.ClassifiedTransaction {
	sol := money.TokenInfo{Mint: money.NativeMint, Symbol: "SOL", Decimals: 9}
	ma := money.NewMoneyAmountFromUi(sol, amount)
	errStr := ""
	if failed {
		errStr = "InstructionError"
	}
	return classify.ClassifiedTransaction{
		Tx: &tx.RawTransaction{Err: errStr},
		Classification: classify.Classification{
			PrimaryType:   classify.TypeTransfer,
			PrimaryAmount: &ma,
			Confidence:    confidence,
			IsRelevant:    relevant,
		},
	}
}

func TestIsSpamDust(t *testing.T) {
	cfg := spam.DefaultConfig()
	ct := classified(0.0001, 0.95, true, false)
	if !spam.IsSpam(ct, cfg) {
		t.Errorf("expected dust amount to be spam")
	}
}

func TestIsSpamLowConfidence(t *testing.T) {
	cfg := spam.DefaultConfig()
	ct := classified(1.0, 0.2, true, false)
	if !spam.IsSpam(ct, cfg) {
		t.Errorf("expected low confidence to be spam")
	}
}

func TestIsSpamNotRelevant(t *testing.T) {
	cfg := spam.DefaultConfig()
	ct := classified(1.0, 0.95, false, false)
	if !spam.IsSpam(ct, cfg) {
		t.Errorf("expected isRelevant=false to be spam")
	}
}

func TestIsSpamFailed(t *testing.T) {
	cfg := spam.DefaultConfig()
	ct := classified(1.0, 0.95, true, true)
	if !spam.IsSpam(ct, cfg) {
		t.Errorf("expected failed tx to be spam by default")
	}

	cfg.AllowFailed = true
	if spam.IsSpam(ct, cfg) {
		t.Errorf("expected failed tx to not be spam when AllowFailed=true")
	}
}

func TestIsSpamLegitTransaction(t *testing.T) {
	cfg := spam.DefaultConfig()
	ct := classified(1.5, 0.95, true, false)
	if spam.IsSpam(ct, cfg) {
		t.Errorf("expected legitimate transaction to not be spam")
	}
}

func TestFilterIdempotent(t *testing.T) {
	cfg := spam.DefaultConfig()
	input := []classify.ClassifiedTransaction{
		classified(1.5, 0.95, true, false),
		classified(0.0001, 0.95, true, false),
		classified(2.0, 0.6, true, false),
	}
	first := spam.Filter(input, cfg)
	second := spam.Filter(first, cfg)
	if len(first) != len(second) {
		t.Fatalf("Filter not idempotent: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Classification.PrimaryAmount.UiUnits != second[i].Classification.PrimaryAmount.UiUnits {
			t.Errorf("element %d differs between passes", i)
		}
	}
}
