package protocol

// Known mainnet program ids. These seed the static registry; devnet
// transactions carry their own devnet-deployed ids and simply will
// not match any entry here, which is fine — Detect returns none
// rather than guessing.
const (
	ProgramJupiterV6       = "JUP6LkbZbjS1jKKwapdHNy74zcVw6SHqKQDMW44gdPsQ"
	ProgramJupiterV4       = "JUP4Fb2cqiRUcaTHdrPC8h2gNsA2ETXiPDD33WcGuJB"
	ProgramRaydiumAmm      = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	ProgramOrcaWhirlpool   = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"
	ProgramMetaplexTM      = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"
	ProgramBubblegum       = "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY"
	ProgramStake           = "Stake11111111111111111111111111111111111111"
	ProgramMarinadeStake   = "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
	ProgramSolendLending   = "So1endDq2YkqhipRh3WViPa8hdiSpxWy6z3Z6tMCpAo"
	ProgramWormholeBridge  = "worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth"
	ProgramPrivacyCash     = "privCashZZ1111111111111111111111111111111"
	ProgramAssociatedToken = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	ProgramSplToken        = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	ProgramComputeBudget   = "ComputeBudget111111111111111111111111111111"
	ProgramSystem          = "11111111111111111111111111111111111111111"
)

// registry is the static program-id -> Info map.
var registry = map[string]Info{
	ProgramJupiterV6:       {Id: "jupiter", Name: "Jupiter Aggregator v6"},
	ProgramJupiterV4:       {Id: "jupiter-v4", Name: "Jupiter Aggregator v4"},
	ProgramRaydiumAmm:      {Id: "raydium", Name: "Raydium AMM"},
	ProgramOrcaWhirlpool:   {Id: "orca-whirlpool", Name: "Orca Whirlpool"},
	ProgramMetaplexTM:      {Id: "metaplex", Name: "Metaplex Token Metadata"},
	ProgramBubblegum:       {Id: "bubblegum", Name: "Metaplex Bubblegum"},
	ProgramStake:           {Id: "stake", Name: "Native Stake Program"},
	ProgramMarinadeStake:   {Id: "marinade", Name: "Marinade Stake Pool"},
	ProgramSolendLending:   {Id: "solend", Name: "Solend"},
	ProgramWormholeBridge:  {Id: "wormhole", Name: "Wormhole Bridge"},
	ProgramPrivacyCash:     {Id: "privacy-cash", Name: "Privacy Cash"},
	ProgramAssociatedToken: {Id: "associated-token", Name: "Associated Token Account"},
	ProgramSplToken:        {Id: "spl-token", Name: "SPL Token Program"},
	ProgramComputeBudget:   {Id: "compute-budget", Name: "Compute Budget"},
	ProgramSystem:          {Id: "system", Name: "System Program"},
}

// categories maps each protocol id to its category. A protocol may
// belong to exactly one category in this registry; the category
// predicates below are plain lookups against this map.
var categories = map[string]Category{
	"jupiter":           CategoryDex,
	"jupiter-v4":        CategoryDex,
	"raydium":           CategoryDex,
	"orca-whirlpool":    CategoryDex,
	"metaplex":          CategoryNftMint,
	"bubblegum":         CategoryNftMint,
	"stake":             CategoryStake,
	"marinade":          CategoryStakePool,
	"solend":            CategoryLending,
	"wormhole":          CategoryBridge,
	"privacy-cash":      CategoryPrivacy,
	"associated-token":  CategoryToken,
	"spl-token":         CategoryToken,
	"compute-budget":    CategoryComputeBudget,
	"system":            CategorySystem,
}

// priorityOrder lists protocol ids from highest to lowest priority for
// tie-breaking when a transaction's program ids match more than one
// registered protocol. Earlier entries win.
var priorityOrder = []string{
	"jupiter",
	"jupiter-v4",
	"raydium",
	"orca-whirlpool",
	"metaplex",
	"bubblegum",
	"stake",
	"marinade",
	"solend",
	"wormhole",
	"privacy-cash",
	"associated-token",
	"spl-token",
	"compute-budget",
	"system",
}

// PoolAccounts lists known vault/pool addresses owned by a protocol,
// keyed by protocol id. The leg builder rewrites legs on these
// addresses from external: to protocol: (§4.D step 5); the
// privacy-cash classifier also uses this set directly to catch
// relayer-submitted unshields that carry no program-id match.
var PoolAccounts = map[string][]string{
	"privacy-cash": {
		"privPoo1VauLt111111111111111111111111111111",
	},
}

// IsPoolAccount reports whether addr is a known pool/vault account of
// the named protocol.
func IsPoolAccount(protocolId, addr string) bool {
	for _, known := range PoolAccounts[protocolId] {
		if known == addr {
			return true
		}
	}
	return false
}

// CategoryOf returns the category for a protocol id, or "" if the id
// is not registered.
func CategoryOf(id string) Category {
	return categories[id]
}

func isCategory(id string, want Category) bool {
	return categories[id] == want
}

// IsDex reports whether the protocol id is a DEX.
func IsDex(id string) bool { return isCategory(id, CategoryDex) }

// IsStake reports whether the protocol id is a stake or stake-pool program.
func IsStake(id string) bool {
	return isCategory(id, CategoryStake) || isCategory(id, CategoryStakePool)
}

// IsNftMint reports whether the protocol id is an NFT-minting program.
func IsNftMint(id string) bool { return isCategory(id, CategoryNftMint) }

// IsBridge reports whether the protocol id is a bridge.
func IsBridge(id string) bool { return isCategory(id, CategoryBridge) }

// IsPrivacy reports whether the protocol id is a privacy-pool program.
func IsPrivacy(id string) bool { return isCategory(id, CategoryPrivacy) }

// IsLending reports whether the protocol id is a lending program.
func IsLending(id string) bool { return isCategory(id, CategoryLending) }
