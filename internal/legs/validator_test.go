package legs_test

import (
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
)

func sol(ui float64) money.MoneyAmount {
	token := money.TokenInfo{Mint: money.NativeMint, Symbol: "SOL", Decimals: 9}
	return money.NewMoneyAmountFromUi(token, ui)
}

func TestValidateBalanceBalanced(t *testing.T) {
	input := []legs.TxLeg{
		{AccountId: "external:a", Side: legs.SideDebit, Role: legs.RoleSent, Amount: sol(1.5)},
		{AccountId: "external:b", Side: legs.SideCredit, Role: legs.RoleReceived, Amount: sol(1.5)},
	}
	balanced, perToken := legs.ValidateBalance(input)
	if !balanced {
		t.Errorf("expected balanced, got %+v", perToken)
	}
}

func TestValidateBalanceMismatch(t *testing.T) {
	input := []legs.TxLeg{
		{AccountId: "external:a", Side: legs.SideDebit, Role: legs.RoleSent, Amount: sol(2.0)},
		{AccountId: "external:b", Side: legs.SideCredit, Role: legs.RoleReceived, Amount: sol(1.5)},
	}
	balanced, _ := legs.ValidateBalance(input)
	if balanced {
		t.Errorf("expected imbalance to be detected")
	}
}

func TestGroupByAccountAndToken(t *testing.T) {
	input := []legs.TxLeg{
		{AccountId: "external:a", Side: legs.SideDebit, Role: legs.RoleSent, Amount: sol(1)},
		{AccountId: "external:a", Side: legs.SideDebit, Role: legs.RoleFee, Amount: sol(0.000005)},
		{AccountId: "external:b", Side: legs.SideCredit, Role: legs.RoleReceived, Amount: sol(1)},
	}
	byAccount := legs.GroupByAccount(input)
	if len(byAccount["external:a"]) != 2 {
		t.Errorf("expected 2 legs for external:a, got %d", len(byAccount["external:a"]))
	}
	byToken := legs.GroupByToken(input)
	if len(byToken["SOL"]) != 3 {
		t.Errorf("expected 3 legs for SOL, got %d", len(byToken["SOL"]))
	}
}

func TestFeePayer(t *testing.T) {
	input := []legs.TxLeg{
		{AccountId: "fee:network", Side: legs.SideCredit, Role: legs.RoleFee, Amount: sol(0.000005)},
		{AccountId: "external:payer", Side: legs.SideDebit, Role: legs.RoleFee, Amount: sol(0.000005)},
	}
	if got := legs.FeePayer(input); got != "external:payer" {
		t.Errorf("FeePayer() = %q, want external:payer", got)
	}
}
