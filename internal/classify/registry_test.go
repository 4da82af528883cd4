package classify_test

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

func TestDispatchReturnsUnclassifiedWhenNoneMatch(t *testing.T) {
	got := classify.Dispatch(nil, &tx.RawTransaction{}, "")
	if got.PrimaryType != classify.TypeUnclassified {
		t.Errorf("PrimaryType = %v, want unclassified", got.PrimaryType)
	}
	if got.Confidence != 0 || got.IsRelevant {
		t.Errorf("Unclassified should have confidence 0 and isRelevant false, got %+v", got)
	}
}

func TestDispatchNeverPanicsOnEmptyInput(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Dispatch panicked: %v", r)
		}
	}()
	classify.Dispatch([]legs.TxLeg{}, &tx.RawTransaction{}, "")
}
