// Package account implements the opaque AccountId codec: stable
// string identifiers in one of four shapes, with build and parse
// functions that invert each other for well-formed input.
package account

import "strings"

// Kind tags the shape of a parsed AccountId.
type Kind string

const (
	KindWallet   Kind = "wallet"
	KindExternal Kind = "external"
	KindProtocol Kind = "protocol"
	KindFee      Kind = "fee"
	KindUnknown  Kind = "unknown"
)

// Parsed is the tagged record returned by Parse. Fields not
// applicable to Kind are left at their zero value.
type Parsed struct {
	Kind       Kind
	Address    string
	ProtocolId string
	Token      string
}

// Wallet builds a `wallet:<addr>` AccountId.
func Wallet(addr string) string {
	return "wallet:" + addr
}

// External builds an `external:<addr>` AccountId.
func External(addr string) string {
	return "external:" + addr
}

// Protocol builds a `protocol:<id>:<addr>` AccountId, or
// `protocol:<id>:<token>:<addr>` when token is non-empty.
func Protocol(id, token, addr string) string {
	if token == "" {
		return "protocol:" + id + ":" + addr
	}
	return "protocol:" + id + ":" + token + ":" + addr
}

// Fee is the singleton `fee:network` AccountId.
func Fee() string {
	return "fee:network"
}

// Parse decodes an AccountId into its tagged shape. An unrecognized
// shape yields Kind == KindUnknown with Address set to the original
// string so callers can still inspect it.
func Parse(id string) Parsed {
	if id == "fee:network" {
		return Parsed{Kind: KindFee}
	}

	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return Parsed{Kind: KindUnknown, Address: id}
	}

	switch parts[0] {
	case "wallet":
		return Parsed{Kind: KindWallet, Address: parts[1]}
	case "external":
		return Parsed{Kind: KindExternal, Address: parts[1]}
	case "protocol":
		return parseProtocol(parts[1])
	default:
		return Parsed{Kind: KindUnknown, Address: id}
	}
}

// parseProtocol decodes the remainder after the leading "protocol:"
// tag, which is either "<id>:<addr>" or "<id>:<token>:<addr>".
func parseProtocol(rest string) Parsed {
	segments := strings.Split(rest, ":")
	switch len(segments) {
	case 2:
		return Parsed{Kind: KindProtocol, ProtocolId: segments[0], Address: segments[1]}
	case 3:
		return Parsed{Kind: KindProtocol, ProtocolId: segments[0], Token: segments[1], Address: segments[2]}
	default:
		return Parsed{Kind: KindUnknown, Address: "protocol:" + rest}
	}
}

// StripExternal returns the raw address from an `external:<addr>`
// AccountId, or the input unchanged if it does not carry that tag.
// This is the one sanctioned string manipulation classifiers may do
// directly, per the codec's ownership of account-id syntax.
func StripExternal(id string) string {
	return strings.TrimPrefix(id, "external:")
}
