// Package classify holds the classifier registry and the 13 pure
// per-classifier decision rules that turn a transaction's legs into a
// single TransactionClassification.
package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

// PrimaryType is one of the 18 classification variants.
type PrimaryType string

const (
	TypeTransfer        PrimaryType = "transfer"
	TypeSwap            PrimaryType = "swap"
	TypeNftMint         PrimaryType = "nft_mint"
	TypeStakeDeposit    PrimaryType = "stake_deposit"
	TypeStakeWithdraw   PrimaryType = "stake_withdraw"
	TypeReward          PrimaryType = "reward"
	TypeAirdrop         PrimaryType = "airdrop"
	TypeLiquidityAdd    PrimaryType = "liquidity_add"
	TypeLiquidityRemove PrimaryType = "liquidity_remove"
	TypeTokenDeposit    PrimaryType = "token_deposit"
	TypeTokenWithdraw   PrimaryType = "token_withdraw"
	TypeBridgeIn        PrimaryType = "bridge_in"
	TypeBridgeOut       PrimaryType = "bridge_out"
	TypePrivacyDeposit  PrimaryType = "privacy_deposit"
	TypePrivacyWithdraw PrimaryType = "privacy_withdraw"
	TypeSolanaPay       PrimaryType = "solana_pay"
	TypeFeeOnly         PrimaryType = "fee_only"
	TypeUnclassified    PrimaryType = "unclassified"
)

// CounterpartyType tags what kind of entity a classification's
// counterparty is believed to be.
type CounterpartyType string

const (
	CounterpartyWallet   CounterpartyType = "wallet"
	CounterpartyProtocol CounterpartyType = "protocol"
	CounterpartyMerchant CounterpartyType = "merchant"
	CounterpartyUnknown  CounterpartyType = "unknown"
)

// Counterparty describes the other side of a classified transaction.
type Counterparty struct {
	Type    CounterpartyType
	Address string
	Name    string
}

// Classification is the single high-level verdict a classifier
// produces for a transaction.
type Classification struct {
	PrimaryType     PrimaryType
	PrimaryAmount   *money.MoneyAmount
	SecondaryAmount *money.MoneyAmount
	Sender          string
	Receiver        string
	Counterparty    *Counterparty
	Confidence      float64
	IsRelevant      bool
	Metadata        map[string]any
}

// ClassifiedTransaction is the engine's final output: the raw
// transaction, its legs, and the classification, immutable thereafter.
type ClassifiedTransaction struct {
	Tx             *tx.RawTransaction
	Legs           []legs.TxLeg
	Classification Classification
	Diagnostics    legs.Diagnostics
}

// Unclassified is the zero-confidence, not-relevant result returned
// when no classifier matches.
func Unclassified() Classification {
	return Classification{
		PrimaryType: TypeUnclassified,
		Confidence:  0,
		IsRelevant:  false,
		Metadata:    map[string]any{},
	}
}
