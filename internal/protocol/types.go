// Package protocol maps Solana program identifiers to known protocols
// and resolves the single protocol a transaction is attributed to.
package protocol

// Category is a data-driven classification tag on a ProtocolInfo.
// Membership is data, never a Go type switch, so new protocols can be
// seeded without touching classifier code.
type Category string

const (
	CategoryDex            Category = "dex"
	CategoryStake          Category = "stake"
	CategoryStakePool      Category = "stake-pool"
	CategoryLending        Category = "lending"
	CategoryNftMint        Category = "nft-mint"
	CategoryBridge         Category = "bridge"
	CategoryPrivacy        Category = "privacy"
	CategoryToken          Category = "token"
	CategorySystem         Category = "system"
	CategoryComputeBudget  Category = "compute-budget"
)

// Info describes a recognized protocol: a stable slug id and a
// display name. Category membership lives in the registry, not here,
// so the same id can be queried against multiple predicates cheaply.
type Info struct {
	Id   string
	Name string
}
