// Package spam implements the dust/spam predicate and batch filter
// applied after classification.
package spam

import (
	"math"

	"github.com/ledgerlens/ledgerlens/internal/classify"
)

// Config holds the spam filter's thresholds. Zero-value Config is not
// valid; use DefaultConfig or a config loaded via internal/config.
type Config struct {
	DustFloorNative     float64
	DustFloorStablecoin float64
	ConfidenceFloor     float64
	AllowFailed         bool
}

// DefaultConfig mirrors the thresholds documented for the spam filter.
func DefaultConfig() Config {
	return Config{
		DustFloorNative:     0.001,
		DustFloorStablecoin: 0.01,
		ConfidenceFloor:     0.5,
		AllowFailed:         false,
	}
}

var stablecoinSymbols = map[string]bool{
	"USDC": true,
	"USDT": true,
}

// IsSpam evaluates the spam predicate for one classified transaction.
func IsSpam(ct classify.ClassifiedTransaction, cfg Config) bool {
	if ct.Tx.Failed() && !cfg.AllowFailed {
		return true
	}
	if ct.Classification.Confidence < cfg.ConfidenceFloor {
		return true
	}
	if !ct.Classification.IsRelevant {
		return true
	}
	if ct.Classification.PrimaryAmount != nil {
		floor := cfg.DustFloorNative
		if stablecoinSymbols[ct.Classification.PrimaryAmount.Token.Symbol] {
			floor = cfg.DustFloorStablecoin
		}
		if math.Abs(ct.Classification.PrimaryAmount.UiUnits) < floor {
			return true
		}
	}
	return false
}

// Filter returns the subset of txs for which IsSpam is false,
// preserving input order. Idempotent: filtering an already-filtered
// slice returns the same slice contents.
func Filter(txs []classify.ClassifiedTransaction, cfg Config) []classify.ClassifiedTransaction {
	out := make([]classify.ClassifiedTransaction, 0, len(txs))
	for _, ct := range txs {
		if !IsSpam(ct, cfg) {
			out = append(out, ct)
		}
	}
	return out
}
