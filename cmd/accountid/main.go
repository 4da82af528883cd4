package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ledgerlens/ledgerlens/internal/account"
)

var cmdlineFlags struct {
	kind       string
	address    string
	protocolId string
	token      string
	parse      string
}

func main() {
	flag.StringVar(&cmdlineFlags.kind, "kind", "", "wallet | external | protocol | fee")
	flag.StringVar(&cmdlineFlags.address, "address", "", "raw address to build an AccountId for")
	flag.StringVar(&cmdlineFlags.protocolId, "protocol", "", "protocol id (kind=protocol only)")
	flag.StringVar(&cmdlineFlags.token, "token", "", "optional token segment (kind=protocol only)")
	flag.StringVar(&cmdlineFlags.parse, "parse", "", "an existing AccountId to parse instead of building one")
	flag.Parse()

	if cmdlineFlags.parse != "" {
		parsed := account.Parse(cmdlineFlags.parse)
		fmt.Printf("kind:        %s\n", parsed.Kind)
		fmt.Printf("address:     %s\n", parsed.Address)
		if parsed.ProtocolId != "" {
			fmt.Printf("protocol id: %s\n", parsed.ProtocolId)
		}
		if parsed.Token != "" {
			fmt.Printf("token:       %s\n", parsed.Token)
		}
		return
	}

	if cmdlineFlags.kind == "" {
		fmt.Println("ERROR: you must specify -kind or -parse")
		os.Exit(1)
	}

	var id string
	switch cmdlineFlags.kind {
	case "wallet":
		id = account.Wallet(cmdlineFlags.address)
	case "external":
		id = account.External(cmdlineFlags.address)
	case "protocol":
		if cmdlineFlags.protocolId == "" {
			fmt.Println("ERROR: -protocol is required for kind=protocol")
			os.Exit(1)
		}
		id = account.Protocol(cmdlineFlags.protocolId, cmdlineFlags.token, cmdlineFlags.address)
	case "fee":
		id = account.Fee()
	default:
		fmt.Printf("ERROR: unknown kind: %s\n", cmdlineFlags.kind)
		os.Exit(1)
	}

	fmt.Println(id)
}
