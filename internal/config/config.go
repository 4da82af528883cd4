package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
	Storage StorageConfig `yaml:"storage"`
	Rpc     RpcConfig     `yaml:"rpc"`
	Spam    SpamConfig    `yaml:"spam"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Network string        `yaml:"network" envconfig:"NETWORK"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port"    envconfig:"DEBUG_PORT"`
}

type StorageConfig struct {
	Directory string `yaml:"dir" envconfig:"STORAGE_DIR"`
}

// RpcConfig describes the collaborator RPC endpoint. The engine never
// dials these itself (see SPEC_FULL.md §1/§6) — it only threads the
// values through to a caller-supplied client, or a caller may instead
// construct the client directly and hand it in.
type RpcConfig struct {
	Url   string `yaml:"url"   envconfig:"RPC_URL"`
	WsUrl string `yaml:"wsUrl" envconfig:"RPC_WS_URL"`
}

// SpamConfig holds the default spam/dust filter thresholds (§4.H).
// Per-call overrides are accepted by the spam package and merged over
// these defaults; they are never mutated here.
type SpamConfig struct {
	DustFloorNative     float64 `yaml:"dustFloorNative"     envconfig:"SPAM_DUST_FLOOR_NATIVE"`
	DustFloorStablecoin float64 `yaml:"dustFloorStablecoin" envconfig:"SPAM_DUST_FLOOR_STABLECOIN"`
	ConfidenceFloor     float64 `yaml:"confidenceFloor"     envconfig:"SPAM_CONFIDENCE_FLOOR"`
	AllowFailed         bool    `yaml:"allowFailed"         envconfig:"SPAM_ALLOW_FAILED"`
}

// FetchConfig holds the default accumulation-loop parameters (§4.I).
type FetchConfig struct {
	Limit               int `yaml:"limit"               envconfig:"FETCH_LIMIT"`
	MaxIterations       int `yaml:"maxIterations"       envconfig:"FETCH_MAX_ITERATIONS"`
	OverfetchMultiplier int `yaml:"overfetchMultiplier" envconfig:"FETCH_OVERFETCH_MULTIPLIER"`
	MinPageSize         int `yaml:"minPageSize"         envconfig:"FETCH_MIN_PAGE_SIZE"`
}

// Singleton config instance with default values, mirroring the
// teacher's package-level defaulted globalConfig.
var globalConfig = &Config{
	Network: "mainnet",
	Logging: LoggingConfig{
		Level: "info",
	},
	Debug: DebugConfig{
		ListenAddress: "localhost",
		ListenPort:    0,
	},
	Storage: StorageConfig{
		Directory: "./.ledgerlens",
	},
	Spam: SpamConfig{
		DustFloorNative:     0.001,
		DustFloorStablecoin: 0.01,
		ConfidenceFloor:     0.5,
		AllowFailed:         false,
	},
	Fetch: FetchConfig{
		Limit:               10,
		MaxIterations:       10,
		OverfetchMultiplier: 2,
		MinPageSize:         0,
	},
}

// Load reads an optional YAML config file, then layers environment
// variable overrides on top, and validates the resulting network name.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %s", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %s", err)
		}
	}
	// We use "dummy" as the app name here to (mostly) prevent picking up
	// env vars that we hadn't explicitly specified in annotations above
	if err := envconfig.Process("dummy", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %s", err)
	}
	if globalConfig.Network != "mainnet" && globalConfig.Network != "devnet" {
		return nil, fmt.Errorf("unknown network name: %s", globalConfig.Network)
	}
	return globalConfig, nil
}

// GetConfig returns the global config instance.
func GetConfig() *Config {
	return globalConfig
}
