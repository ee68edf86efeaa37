package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerAddress = "http://localhost:8000"
	DefaultClientTimeout       = 10 * time.Second
)

// ClientConfig holds the settings of the command-line ledger client.
type ClientConfig struct {
	// ServerAddress is the base URL of the ledger server.
	// Env: LEDGER_ADDRESS
	ServerAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: LEDGER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Verbose enables debug logging to stderr.
	// Env: LEDGER_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"LEDGER_"`
}

// GetClientConfig builds the client configuration from defaults, environment
// variables and the global flags found at the start of args. It returns the
// remaining arguments (the subcommand and its arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, nil, err
	}

	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, nil, err
	}

	fromFlags := new(ClientConfig)
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fs.StringVar(&fromFlags.ServerAddress, "server", "", "Ledger server base URL")
	fs.DurationVar(&fromFlags.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.BoolVar(&fromFlags.Verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientTimeout,
	}
	for _, src := range []*ClientConfig{&fromEnv.Client, fromFlags} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
