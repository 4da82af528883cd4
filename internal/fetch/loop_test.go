package fetch_test

import (
	"context"
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/fetch"
	"github.com/ledgerlens/ledgerlens/internal/spam"
	"github.com/ledgerlens/ledgerlens/internal/tx"
	"github.com/ledgerlens/ledgerlens/internal/xerrors"
)

// fakeSigSource serves fixed pages keyed by the before-cursor seen so
// far, simulating an address with a bounded history.
type fakeSigSource struct {
	pages [][]fetch.SignatureInfo
	calls int
	err   error
}

func (f *fakeSigSource) FetchSignatures(ctx context.Context, address string, opts fetch.SignatureOptions) ([]fetch.SignatureInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls >= len(f.pages) {
		f.calls++
		return nil, nil
	}
	p := f.pages[f.calls]
	f.calls++
	return p, nil
}

type fakeTxSource struct {
	failed map[string]bool
}

func (f *fakeTxSource) FetchTransactions(ctx context.Context, signatures []string) ([]*tx.RawTransaction, error) {
	out := make([]*tx.RawTransaction, len(signatures))
	for i, sig := range signatures {
		errStr := ""
		if f.failed[sig] {
			errStr = "InstructionError"
		}
		out[i] = &tx.RawTransaction{
			Signature:   sig,
			AccountKeys: []string{"wallet", "external"},
			Err:         errStr,
			PreNativeBalances: map[string]string{
				"wallet":   "2000000000",
				"external": "0",
			},
			PostNativeBalances: map[string]string{
				"wallet":   "1000000000",
				"external": "1000000000",
			},
		}
	}
	return out, nil
}

func TestAccumulateSinglePageNoFilter(t *testing.T) {
	sigs := &fakeSigSource{pages: [][]fetch.SignatureInfo{
		{{Signature: "s1"}, {Signature: "s2"}, {Signature: "s3"}},
	}}
	txs := &fakeTxSource{}

	got, err := fetch.Accumulate(context.Background(), sigs, txs, "wallet", fetch.Options{
		Limit:   3,
		Network: "mainnet",
	})
	if err != nil {
		t.Fatalf("Accumulate error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if sigs.calls != 1 {
		t.Errorf("expected exactly one signature page fetch, got %d", sigs.calls)
	}
}

func TestAccumulateStopsWhenExhausted(t *testing.T) {
	sigs := &fakeSigSource{pages: [][]fetch.SignatureInfo{
		{{Signature: "s1"}},
	}}
	txs := &fakeTxSource{}

	got, err := fetch.Accumulate(context.Background(), sigs, txs, "wallet", fetch.Options{
		Limit:               10,
		FilterSpam:          true,
		SpamConfig:          spam.DefaultConfig(),
		MaxIterations:       5,
		OverfetchMultiplier: 2,
		MinPageSize:         2,
		Network:             "mainnet",
	})
	if err != nil {
		t.Fatalf("Accumulate error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1 (exhausted source)", len(got))
	}
	if sigs.calls < 2 {
		t.Errorf("expected loop to notice exhaustion after an empty page, got %d calls", sigs.calls)
	}
}

func TestAccumulateNeverExceedsMaxIterations(t *testing.T) {
	pages := make([][]fetch.SignatureInfo, 0, 20)
	for i := 0; i < 20; i++ {
		pages = append(pages, []fetch.SignatureInfo{{Signature: "s"}})
	}
	sigs := &fakeSigSource{pages: pages}
	txs := &fakeTxSource{failed: map[string]bool{"s": true}}

	got, err := fetch.Accumulate(context.Background(), sigs, txs, "wallet", fetch.Options{
		Limit:               5,
		FilterSpam:          true,
		SpamConfig:          spam.DefaultConfig(),
		MaxIterations:       4,
		OverfetchMultiplier: 2,
		MinPageSize:         2,
		Network:             "mainnet",
	})
	if err != nil {
		t.Fatalf("Accumulate error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d results, want 0 (every tx filtered as failed)", len(got))
	}
	if sigs.calls != 4 {
		t.Errorf("expected exactly MaxIterations=4 page fetches, got %d", sigs.calls)
	}
}

func TestAccumulatePropagatesErrorWithNoPriorResults(t *testing.T) {
	sigs := &fakeSigSource{err: xerrors.Network("rpc unreachable")}
	txs := &fakeTxSource{}

	_, err := fetch.Accumulate(context.Background(), sigs, txs, "wallet", fetch.Options{
		Limit:         5,
		MaxIterations: 3,
		Network:       "mainnet",
	})
	if err == nil {
		t.Fatal("expected error propagation when nothing has been accumulated yet")
	}
}

func TestAccumulateRejectsNonPositiveLimit(t *testing.T) {
	sigs := &fakeSigSource{}
	txs := &fakeTxSource{}
	_, err := fetch.Accumulate(context.Background(), sigs, txs, "wallet", fetch.Options{Limit: 0})
	if err == nil {
		t.Fatal("expected error for non-positive Limit")
	}
}

func TestAccumulateCancelledContext(t *testing.T) {
	sigs := &fakeSigSource{pages: [][]fetch.SignatureInfo{
		{{Signature: "s1"}},
		{{Signature: "s2"}},
	}}
	txs := &fakeTxSource{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetch.Accumulate(ctx, sigs, txs, "wallet", fetch.Options{
		Limit:         10,
		FilterSpam:    true,
		SpamConfig:    spam.DefaultConfig(),
		MaxIterations: 5,
		MinPageSize:   2,
		Network:       "mainnet",
	})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
