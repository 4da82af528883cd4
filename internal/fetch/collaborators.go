// Package fetch implements the paged fetch/accumulation loop: given a
// desired count N, returns up to N non-spam classified transactions
// for a wallet while strictly bounding work (§4.I).
package fetch

import (
	"context"

	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// SignatureInfo is one entry from the signature source collaborator.
type SignatureInfo struct {
	Signature string
	Slot      uint64
	BlockTime *int64
	Err       string
	Memo      string
}

// SignatureOptions bounds a single signature-source page request.
type SignatureOptions struct {
	Limit  int
	Before string
	Until  string
}

// SignatureSource is the collaborator that lists a wallet's
// transaction signatures, newest first. The engine never implements
// this itself (§1 scope) — it is supplied by the caller.
type SignatureSource interface {
	FetchSignatures(ctx context.Context, address string, opts SignatureOptions) ([]SignatureInfo, error)
}

// TransactionSource is the collaborator that resolves signatures to
// full raw transactions, in the same order; a missing transaction is
// returned as a nil entry in-place.
type TransactionSource interface {
	FetchTransactions(ctx context.Context, signatures []string) ([]*tx.RawTransaction, error)
}
