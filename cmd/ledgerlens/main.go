package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/engine"
	"github.com/ledgerlens/ledgerlens/internal/logging"
	"github.com/ledgerlens/ledgerlens/internal/version"
)

const (
	programName = "ledgerlens"
)

var cmdlineFlags struct {
	configFile string
	version    bool
	wallet     string
	limit      int
	filterSpam bool
}

func main() {
	flag.StringVar(&cmdlineFlags.configFile, "config", "", "path to config file to load")
	flag.BoolVar(&cmdlineFlags.version, "version", false, "show version")
	flag.StringVar(&cmdlineFlags.wallet, "wallet", "", "wallet address to classify transactions for")
	flag.IntVar(&cmdlineFlags.limit, "limit", 10, "number of non-spam classified transactions to return")
	flag.BoolVar(&cmdlineFlags.filterSpam, "filter-spam", true, "drop dust/low-confidence/irrelevant transactions")
	flag.Parse()

	if cmdlineFlags.version {
		fmt.Printf("%s %s\n", programName, version.GetVersionString())
		os.Exit(0)
	}

	cfg, err := config.Load(cmdlineFlags.configFile)
	if err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}

	logging.Configure()
	logger := logging.GetLogger()
	defer func() {
		if err := logger.Sync(); err != nil {
			return
		}
	}()

	if cfg.Debug.ListenPort > 0 {
		logger.Infof("starting debug listener on %s:%d", cfg.Debug.ListenAddress, cfg.Debug.ListenPort)
		go func() {
			err := http.ListenAndServe(fmt.Sprintf("%s:%d", cfg.Debug.ListenAddress, cfg.Debug.ListenPort), nil)
			if err != nil {
				logger.Fatalf("failed to start debug listener: %s", err)
			}
		}()
	}

	if cmdlineFlags.wallet == "" {
		fmt.Println("usage: ledgerlens -wallet <address> [-limit N] [-filter-spam=false]")
		os.Exit(1)
	}

	// TODO: supply a real RPC-backed SignatureSource/TransactionSource
	// (and optionally a BalanceSource) here. The engine is a library
	// over those collaborators by design (see SPEC_FULL.md §1/§6) and
	// never dials the chain itself, so this binary has nothing to wire
	// them to yet.
	idx := engine.New(engine.Options{Network: cfg.Network})
	if err := idx.Start(); err != nil {
		logger.Fatalw("failed to start indexer", "error", err)
	}
	defer idx.Stop()

	filterSpam := cmdlineFlags.filterSpam
	results, err := idx.GetTransactions(context.Background(), cmdlineFlags.wallet, engine.GetTransactionsOptions{
		Limit:      cmdlineFlags.limit,
		FilterSpam: &filterSpam,
	})
	if err != nil {
		logger.Fatalw("failed to fetch transactions", "wallet", cmdlineFlags.wallet, "error", err)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Fatalw("failed to marshal results", "error", err)
	}
	fmt.Println(string(out))
}
