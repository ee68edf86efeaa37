package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("go-ledger-client")
	level := "warn"
	if cfg.Verbose {
		level = "debug"
	}
	if err = logger.SetLevel(level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	client, err := adapter.NewHTTPLedgerClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := newCLI(client, os.Stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err = cli.run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
