package fetch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/logging"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/spam"
	"github.com/ledgerlens/ledgerlens/internal/xerrors"
)

// Options configures one Accumulate call.
type Options struct {
	Limit               int
	Before              string
	Until               string
	FilterSpam          bool
	SpamConfig          spam.Config
	MaxIterations       int
	OverfetchMultiplier int
	MinPageSize         int
	Network             string
	TokenOverrides      map[string]money.TokenInfo
}

// Accumulate returns up to opts.Limit classified transactions for
// walletAddress, newest first. When opts.FilterSpam is false it issues
// a single page request and classifies it without overfetching. When
// true, it repeatedly widens the page size to compensate for entries
// the spam filter drops, bounded by opts.MaxIterations.
func Accumulate(ctx context.Context, sigs SignatureSource, txs TransactionSource, walletAddress string, opts Options) ([]classify.ClassifiedTransaction, error) {
	runID := uuid.New().String()
	log := logging.GetLogger().With("run_id", runID, "wallet", walletAddress)

	if opts.Limit <= 0 {
		return nil, xerrors.InvalidInput("fetch: limit must be positive")
	}
	if !opts.FilterSpam {
		return fetchPage(ctx, sigs, txs, walletAddress, opts, opts.Limit, opts.Before)
	}

	accumulated := make([]classify.ClassifiedTransaction, 0, opts.Limit)
	cursor := opts.Before
	pageSize := opts.Limit

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = 1
	}

	for iter := 0; iter < maxIter; iter++ {
		select {
		case <-ctx.Done():
			log.Debugw("accumulation cancelled", "iteration", iter)
			return nil, ctx.Err()
		default:
		}

		page, err := fetchPage(ctx, sigs, txs, walletAddress, opts, pageSize, cursor)
		if err != nil {
			if xerrors.Retryable(err) && len(accumulated) > 0 {
				log.Warnw("stopping accumulation early after transient error", "error", err, "accumulated", len(accumulated))
				break
			}
			return nil, err
		}

		filtered := spam.Filter(page, opts.SpamConfig)
		accumulated = append(accumulated, filtered...)

		if len(page) == 0 {
			break
		}
		if len(accumulated) >= opts.Limit {
			break
		}

		cursor = page[len(page)-1].Tx.Signature
		if opts.Until != "" && cursor == opts.Until {
			break
		}

		mult := opts.OverfetchMultiplier
		if mult <= 0 {
			mult = 1
		}
		pageSize = opts.Limit * mult
		if pageSize < opts.MinPageSize {
			pageSize = opts.MinPageSize
		}
	}

	if len(accumulated) > opts.Limit {
		accumulated = accumulated[:opts.Limit]
	}
	return accumulated, nil
}

func fetchPage(ctx context.Context, sigs SignatureSource, txSrc TransactionSource, walletAddress string, opts Options, pageSize int, before string) ([]classify.ClassifiedTransaction, error) {
	sigInfos, err := sigs.FetchSignatures(ctx, walletAddress, SignatureOptions{
		Limit:  pageSize,
		Before: before,
		Until:  opts.Until,
	})
	if err != nil {
		return nil, err
	}
	if len(sigInfos) == 0 {
		return nil, nil
	}

	signatures := make([]string, len(sigInfos))
	for i, s := range sigInfos {
		signatures[i] = s.Signature
	}

	rawTxs, err := txSrc.FetchTransactions(ctx, signatures)
	if err != nil {
		return nil, err
	}

	out := make([]classify.ClassifiedTransaction, 0, len(rawTxs))
	for _, raw := range rawTxs {
		if raw == nil {
			continue
		}
		legList, diag := legs.Build(raw, opts.Network, opts.TokenOverrides)
		classification := classify.Dispatch(legList, raw, walletAddress)
		out = append(out, classify.ClassifiedTransaction{
			Tx:             raw,
			Legs:           legList,
			Classification: classification,
			Diagnostics:    diag,
		})
	}
	return out, nil
}
