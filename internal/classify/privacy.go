package classify

import (
	"github.com/ledgerlens/ledgerlens/internal/account"
	"github.com/ledgerlens/ledgerlens/internal/legs"
	"github.com/ledgerlens/ledgerlens/internal/money"
	"github.com/ledgerlens/ledgerlens/internal/protocol"
	"github.com/ledgerlens/ledgerlens/internal/tx"
)

const privacyCashId = "privacy-cash"

// isPrivacyPoolLeg reports whether a leg's account belongs to the
// Privacy-Cash pool, either via the protocol: tag (when the detector
// matched) or via the known pool-account set (relayer-submitted
// unshields that carry no program-id match).
func isPrivacyPoolLeg(l legs.TxLeg) bool {
	parsed := account.Parse(l.AccountId)
	if parsed.Kind == account.KindProtocol && parsed.ProtocolId == privacyCashId {
		return true
	}
	if parsed.Kind == account.KindExternal && protocol.IsPoolAccount(privacyCashId, parsed.Address) {
		return true
	}
	return false
}

func classifyPrivacyCash(legList []legs.TxLeg, rawTx *tx.RawTransaction, _ string) *Classification {
	triggeredByProtocol := rawTx.Protocol != nil && protocol.IsPrivacy(rawTx.Protocol.Id)
	triggeredByPoolAccount := false
	for _, l := range legList {
		if isPrivacyPoolLeg(l) {
			triggeredByPoolAccount = true
			break
		}
	}
	if !triggeredByProtocol && !triggeredByPoolAccount {
		return nil
	}

	var userDebits, userCredits []legs.TxLeg
	for _, l := range legList {
		if isPrivacyPoolLeg(l) {
			continue
		}
		if account.Parse(l.AccountId).Kind != account.KindExternal {
			continue
		}
		switch {
		case l.Side == legs.SideDebit && l.Role == legs.RoleSent:
			userDebits = append(userDebits, l)
		case l.Side == legs.SideCredit && l.Role == legs.RoleReceived:
			userCredits = append(userCredits, l)
		}
	}

	var primaryType PrimaryType
	var primary legs.TxLeg
	var ok bool
	switch {
	case len(userDebits) > 0 && len(userCredits) == 0:
		primaryType = TypePrivacyDeposit
		primary, ok = largestByUi(userDebits)
	case len(userCredits) > 0 && len(userDebits) == 0:
		primaryType = TypePrivacyWithdraw
		primary, ok = largestByUi(userCredits)
	case len(userDebits) > 0 && len(userCredits) > 0:
		if sumUi(userCredits) >= sumUi(userDebits) {
			primaryType = TypePrivacyWithdraw
			primary, ok = largestByUi(userCredits)
		} else {
			primaryType = TypePrivacyDeposit
			primary, ok = largestByUi(userDebits)
		}
	default:
		return nil
	}
	if !ok {
		return nil
	}

	confidence := 0.85
	if primary.Amount.Token.Name != "Unknown Token" {
		confidence = 0.95
	}

	tokenType := "SPL"
	if primary.Amount.Token.Symbol == "SOL" || primary.Amount.Token.Mint == money.NativeMint {
		tokenType = "SOL"
	}

	addr := account.Parse(primary.AccountId).Address
	amount := primary.Amount
	result := &Classification{
		PrimaryType:   primaryType,
		PrimaryAmount: &amount,
		Confidence:    confidence,
		IsRelevant:    true,
		Metadata:      map[string]any{"privacy_operation": privacyOperationLabel(primaryType), "token_type": tokenType},
	}
	if primaryType == TypePrivacyDeposit {
		result.Sender = addr
	} else {
		result.Receiver = addr
	}
	return result
}

func privacyOperationLabel(t PrimaryType) string {
	if t == TypePrivacyDeposit {
		return "shield"
	}
	return "unshield"
}
