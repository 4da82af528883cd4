package legs

import (
	"math/big"

	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// Build produces a balanced list of TxLeg from one RawTransaction,
// following the deterministic six-step algorithm: fee legs, per-token
// balance deltas, per-owner native balance deltas, protocol-account
// reattribution, and reward retagging. network selects which static
// token registry resolves mints; overrides (if non-nil) win over it.
func Build(t *tx.RawTransaction, network string, overrides map[string]money.TokenInfo) ([]TxLeg, Diagnostics) {
	var out []TxLeg

	nativeToken := money.Lookup(network, money.NativeMint, overrides)

	// Steps 1-2: fee legs.
	feePayer := t.FeePayer()
	if t.FeeRawUnits != "" && feePayer != "" {
		feeAmount := money.NewMoneyAmount(nativeToken, t.FeeRawUnits)
		out = append(out, TxLeg{
			AccountId: account.Fee(),
			Side:      SideCredit,
			Role:      RoleFee,
			Amount:    feeAmount,
		})
		out = append(out, TxLeg{
			AccountId: account.External(feePayer),
			Side:      SideDebit,
			Role:      RoleFee,
			Amount:    feeAmount,
		})
	}

	// Step 3: per-owner, per-mint token balance deltas.
	out = append(out, tokenBalanceLegs(t, network, overrides)...)

	// Step 4: per-owner native balance deltas, fee-adjusted.
	out = append(out, nativeBalanceLegs(t, feePayer, nativeToken)...)

	// Step 5: protocol-account reattribution.
	if t.Protocol != nil {
		reattributeProtocolLegs(out, t.Protocol.Id)
	}

	// Step 6: reward retagging.
	retagRewards(out, t)

	diag := Diagnostics{BalanceMismatch: !validateInternal(out)}
	return out, diag
}

// tokenBalanceLegs implements step 3: one leg per owner+mint whose
// raw balance changed between pre and post snapshots.
func tokenBalanceLegs(t *tx.RawTransaction, network string, overrides map[string]money.TokenInfo) []TxLeg {
	type key struct {
		accountIndex int
		mint         string
	}
	pre := make(map[key]tx.TokenBalance, len(t.PreTokenBalances))
	for _, b := range t.PreTokenBalances {
		pre[key{b.AccountIndex, b.Mint}] = b
	}
	post := make(map[key]tx.TokenBalance, len(t.PostTokenBalances))
	for _, b := range t.PostTokenBalances {
		post[key{b.AccountIndex, b.Mint}] = b
	}

	seen := make(map[key]bool)
	var legs []TxLeg
	visit := func(k key) {
		if seen[k] {
			return
		}
		seen[k] = true

		preBal, hasPre := pre[k]
		postBal, hasPost := post[k]

		preRaw := "0"
		if hasPre {
			preRaw = preBal.RawAmount
		}
		postRaw := "0"
		if hasPost {
			postRaw = postBal.RawAmount
		}

		delta := subtractRaw(postRaw, preRaw)
		if delta.Sign() == 0 {
			return
		}

		owner := preBal.Owner
		decimals := preBal.Decimals
		if hasPost {
			owner = postBal.Owner
			decimals = postBal.Decimals
		}
		if owner == "" {
			return
		}

		token := money.Lookup(network, k.mint, overrides)
		token.Decimals = decimals

		abs := new(big.Int).Abs(delta)
		amount := money.NewMoneyAmount(token, abs.String())

		if delta.Sign() > 0 {
			legs = append(legs, TxLeg{
				AccountId: account.External(owner),
				Side:      SideCredit,
				Role:      RoleReceived,
				Amount:    amount,
			})
		} else {
			legs = append(legs, TxLeg{
				AccountId: account.External(owner),
				Side:      SideDebit,
				Role:      RoleSent,
				Amount:    amount,
			})
		}
	}

	for k := range pre {
		visit(k)
	}
	for k := range post {
		visit(k)
	}
	return legs
}

// nativeBalanceLegs implements step 4: per-address native balance
// deltas, with the fee payer's delta adjusted to exclude the fee that
// was already accounted for in steps 1-2.
func nativeBalanceLegs(t *tx.RawTransaction, feePayer string, nativeToken money.TokenInfo) []TxLeg {
	addrs := make(map[string]bool)
	for addr := range t.PreNativeBalances {
		addrs[addr] = true
	}
	for addr := range t.PostNativeBalances {
		addrs[addr] = true
	}

	var legs []TxLeg
	for addr := range addrs {
		preRaw, ok := t.PreNativeBalances[addr]
		if !ok {
			preRaw = "0"
		}
		postRaw, ok := t.PostNativeBalances[addr]
		if !ok {
			postRaw = "0"
		}
		delta := subtractRaw(postRaw, preRaw)
		if addr == feePayer && t.FeeRawUnits != "" {
			fee := new(big.Int)
			fee.SetString(t.FeeRawUnits, 10)
			delta.Add(delta, fee)
		}
		if delta.Sign() == 0 {
			continue
		}

		abs := new(big.Int).Abs(delta)
		amount := money.NewMoneyAmount(nativeToken, abs.String())

		if delta.Sign() > 0 {
			legs = append(legs, TxLeg{
				AccountId: account.External(addr),
				Side:      SideCredit,
				Role:      RoleReceived,
				Amount:    amount,
			})
		} else {
			legs = append(legs, TxLeg{
				AccountId: account.External(addr),
				Side:      SideDebit,
				Role:      RoleSent,
				Amount:    amount,
			})
		}
	}
	return legs
}

// reattributeProtocolLegs implements step 5: legs whose external
// address is a known pool/vault account of the detected protocol are
// rewritten in place to the protocol: shape and retagged.
func reattributeProtocolLegs(legList []TxLeg, protocolId string) {
	for i := range legList {
		leg := &legList[i]
		parsed := account.Parse(leg.AccountId)
		if parsed.Kind != account.KindExternal {
			continue
		}
		if !protocol.IsPoolAccount(protocolId, parsed.Address) {
			continue
		}
		leg.AccountId = account.Protocol(protocolId, "", parsed.Address)
		if leg.Side == SideCredit {
			leg.Role = RoleProtocolDeposit
		} else {
			leg.Role = RoleProtocolWithdraw
		}
	}
}

// retagRewards implements step 6: a native credit with no matching
// debit from the same owner, under a staking-category protocol, and
// hinted by the collaborator as a reward distribution, is retagged
// role=reward instead of role=received.
func retagRewards(legList []TxLeg, t *tx.RawTransaction) {
	if t.Protocol == nil || !protocol.IsStake(t.Protocol.Id) {
		return
	}
	hinted := make(map[string]bool, len(t.RewardCandidates))
	for _, addr := range t.RewardCandidates {
		hinted[addr] = true
	}
	if len(hinted) == 0 {
		return
	}

	debited := make(map[string]bool)
	for _, l := range legList {
		if l.Side == SideDebit && l.Role == RoleSent {
			debited[account.Parse(l.AccountId).Address] = true
		}
	}

	for i := range legList {
		leg := &legList[i]
		if leg.Side != SideCredit || leg.Role != RoleReceived {
			continue
		}
		parsed := account.Parse(leg.AccountId)
		if parsed.Kind != account.KindExternal {
			continue
		}
		if hinted[parsed.Address] && !debited[parsed.Address] {
			leg.Role = RoleReward
		}
	}
}

// subtractRaw computes a-b for two nonnegative decimal integer
// strings, returning the signed result.
func subtractRaw(a, b string) *big.Int {
	ai := new(big.Int)
	ai.SetString(a, 10)
	bi := new(big.Int)
	bi.SetString(b, 10)
	return ai.Sub(ai, bi)
}
