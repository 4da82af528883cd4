package xerrors_test

import (
	"errors"
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/xerrors"
)

func TestWrappingPreservesSentinel(t *testing.T) {
	err := xerrors.Network("fetch signatures for %s failed", "abc123")
	if !errors.Is(err, xerrors.ErrNetwork) {
		t.Errorf("expected wrapped error to match ErrNetwork")
	}
	if errors.Is(err, xerrors.ErrUpstream) {
		t.Errorf("did not expect wrapped error to match ErrUpstream")
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{xerrors.Network("timeout"), true},
		{xerrors.RateLimit("throttled"), true},
		{xerrors.InvalidInput("bad address"), false},
		{xerrors.Configuration("missing api key"), false},
		{xerrors.Upstream("malformed response"), false},
	}
	for _, c := range cases {
		if got := xerrors.Retryable(c.err); got != c.want {
			t.Errorf("Retryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
