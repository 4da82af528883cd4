package legs

// TokenBalanceCheck is the per-symbol result of ValidateBalance.
type TokenBalanceCheck struct {
	Debits  float64
	Credits float64
	Diff    float64
}

// ValidateBalance checks the double-entry invariant for every token
// symbol present in legs: total debit ui units must equal total
// credit ui units within BalanceEpsilon.
func ValidateBalance(legList []TxLeg) (bool, map[string]TokenBalanceCheck) {
	perToken := make(map[string]TokenBalanceCheck)
	for _, l := range legList {
		check := perToken[l.Amount.Token.Symbol]
		switch l.Side {
		case SideDebit:
			check.Debits += l.Amount.UiUnits
		case SideCredit:
			check.Credits += l.Amount.UiUnits
		}
		perToken[l.Amount.Token.Symbol] = check
	}

	balanced := true
	for symbol, check := range perToken {
		diff := check.Debits - check.Credits
		if diff < 0 {
			diff = -diff
		}
		check.Diff = diff
		perToken[symbol] = check
		if diff >= BalanceEpsilon {
			balanced = false
		}
	}
	return balanced, perToken
}

// validateInternal is the builder's own call into ValidateBalance,
// kept separate so the public API returns the full per-token map
// while the builder only needs the boolean for its diagnostic flag.
func validateInternal(legList []TxLeg) bool {
	balanced, _ := ValidateBalance(legList)
	return balanced
}

// GroupByAccount partitions legs by AccountId, preserving order
// within each group.
func GroupByAccount(legList []TxLeg) map[string][]TxLeg {
	out := make(map[string][]TxLeg)
	for _, l := range legList {
		out[l.AccountId] = append(out[l.AccountId], l)
	}
	return out
}

// GroupByToken partitions legs by token symbol, preserving order
// within each group.
func GroupByToken(legList []TxLeg) map[string][]TxLeg {
	out := make(map[string][]TxLeg)
	for _, l := range legList {
		out[l.Amount.Token.Symbol] = append(out[l.Amount.Token.Symbol], l)
	}
	return out
}

// FeePayer returns the account id of the leg with role=fee and
// side=debit (the account that paid the network fee), or "" if none.
func FeePayer(legList []TxLeg) string {
	for _, l := range legList {
		if l.Side == SideDebit && l.Role == RoleFee {
			return l.AccountId
		}
	}
	return ""
}
