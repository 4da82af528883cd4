package classify

import (
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// externalLegsWhere returns legs whose account is external:<addr> and
// which match side/role, in leg order.
func externalLegsWhere(legList []legs.TxLeg, side legs.Side, roles ...legs.Role) []legs.TxLeg {
	wantRole := make(map[legs.Role]bool, len(roles))
	for _, r := range roles {
		wantRole[r] = true
	}
	var out []legs.TxLeg
	for _, l := range legList {
		if l.Side != side || !wantRole[l.Role] {
			continue
		}
		if account.Parse(l.AccountId).Kind != account.KindExternal {
			continue
		}
		out = append(out, l)
	}
	return out
}

// legsForAddress returns legs whose external address equals addr.
func legsForAddress(legList []legs.TxLeg, addr string) []legs.TxLeg {
	var out []legs.TxLeg
	for _, l := range legList {
		parsed := account.Parse(l.AccountId)
		if parsed.Kind == account.KindExternal && parsed.Address == addr {
			out = append(out, l)
		}
	}
	return out
}

// largestByUi returns the leg with the largest absolute ui amount, or
// the zero value and false if legList is empty.
func largestByUi(legList []legs.TxLeg) (legs.TxLeg, bool) {
	if len(legList) == 0 {
		return legs.TxLeg{}, false
	}
	best := legList[0]
	for _, l := range legList[1:] {
		if l.Amount.UiUnits > best.Amount.UiUnits {
			best = l
		}
	}
	return best, true
}

// initiator returns tx.AccountKeys[0], the fee payer, per the
// "initiator = accountKeys[0]" rule used by classifiers that are
// pinned to that definition rather than the fee-debit-leg definition.
func initiator(t *tx.RawTransaction) string {
	if len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0]
}

// shortName renders the first 8 characters of addr followed by an
// ellipsis, used for default counterparty display names.
func shortName(addr string) string {
	if len(addr) <= 8 {
		return addr + "…"
	}
	return addr[:8] + "…"
}

// sumUi sums the ui amounts of a leg slice.
func sumUi(legList []legs.TxLeg) float64 {
	var total float64
	for _, l := range legList {
		total += l.Amount.UiUnits
	}
	return total
}

// distinctSymbols returns the set of distinct token symbols among legs.
func distinctSymbols(legList []legs.TxLeg) map[string]bool {
	out := make(map[string]bool)
	for _, l := range legList {
		out[l.Amount.Token.Symbol] = true
	}
	return out
}

// isMemoJSON reports whether s looks like a JSON object, a cheap
// guard before attempting a full JSON parse.
func isMemoJSON(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}
