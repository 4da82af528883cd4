package account_test

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/account"
)

func TestWalletRoundTrip(t *testing.T) {
	id := account.Wallet("addr1")
	got := account.Parse(id)
	if got.Kind != account.KindWallet || got.Address != "addr1" {
		t.Errorf("Parse(%q) = %+v", id, got)
	}
}

func TestExternalRoundTrip(t *testing.T) {
	id := account.External("addr2")
	got := account.Parse(id)
	if got.Kind != account.KindExternal || got.Address != "addr2" {
		t.Errorf("Parse(%q) = %+v", id, got)
	}
}

func TestProtocolRoundTripNoToken(t *testing.T) {
	id := account.Protocol("jupiter", "", "pooladdr")
	got := account.Parse(id)
	if got.Kind != account.KindProtocol || got.ProtocolId != "jupiter" || got.Address != "pooladdr" || got.Token != "" {
		t.Errorf("Parse(%q) = %+v", id, got)
	}
}

func TestProtocolRoundTripWithToken(t *testing.T) {
	id := account.Protocol("raydium", "USDC", "pooladdr")
	got := account.Parse(id)
	if got.Kind != account.KindProtocol || got.ProtocolId != "raydium" || got.Token != "USDC" || got.Address != "pooladdr" {
		t.Errorf("Parse(%q) = %+v", id, got)
	}
}

func TestFeeSingleton(t *testing.T) {
	id := account.Fee()
	if id != "fee:network" {
		t.Errorf("Fee() = %q", id)
	}
	got := account.Parse(id)
	if got.Kind != account.KindFee {
		t.Errorf("Parse(%q).Kind = %v, want KindFee", id, got.Kind)
	}
}

func TestParseUnrecognizedShape(t *testing.T) {
	got := account.Parse("garbage-no-colon")
	if got.Kind != account.KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", got.Kind)
	}
}

func TestStripExternal(t *testing.T) {
	if got := account.StripExternal("external:abc"); got != "abc" {
		t.Errorf("StripExternal() = %q, want abc", got)
	}
	if got := account.StripExternal("wallet:abc"); got != "wallet:abc" {
		t.Errorf("StripExternal() on non-external = %q, want unchanged", got)
	}
}
