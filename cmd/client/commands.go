package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/models"
)

const usage = `usage: ledger [-server URL] [-timeout D] [-v] <command> [args]

commands:
  info                         show the service banner
  health                       check server and database health
  list                         list all transactions
  get <id>                     show one transaction
  create -amount N -description S -category S [-date D]
                               record a transaction
  delete <id>                  delete a transaction
  version                      print build information
`

var errUsage = errors.New("invalid usage")

// dateLayouts are accepted by create -date, tried in order.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

type cli struct {
	client    adapter.LedgerClient
	out       io.Writer
	buildInfo models.AppBuildInfo
}

func newCLI(client adapter.LedgerClient, out io.Writer, buildInfo models.AppBuildInfo) *cli {
	return &cli{client: client, out: out, buildInfo: buildInfo}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		banner, err := c.client.Info(ctx)
		if err != nil {
			return err
		}
		return c.print(banner)
	case "health":
		status, err := c.client.Health(ctx)
		if err != nil {
			return err
		}
		return c.print(status)
	case "list":
		transactions, err := c.client.ListTransactions(ctx)
		if err != nil {
			return err
		}
		return c.print(transactions)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		transaction, err := c.client.GetTransaction(ctx, id)
		if err != nil {
			return err
		}
		return c.print(transaction)
	case "create":
		req, err := parseCreate(rest)
		if err != nil {
			return err
		}
		created, err := c.client.CreateTransaction(ctx, req)
		if err != nil {
			return err
		}
		return c.print(created)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = c.client.DeleteTransaction(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "transaction %d deleted\n", id)
		return nil
	case "version":
		fmt.Fprint(c.out, c.buildInfo)
		return nil
	case "help", "-h", "-help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one transaction id", errUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: transaction id must be an integer: %q", errUsage, args[0])
	}
	return id, nil
}

// parseCreate builds a request from create's flags. Flags that were not given
// stay nil so the server reports them as missing.
func parseCreate(args []string) (models.CreateTransactionRequest, error) {
	var (
		req                             models.CreateTransactionRequest
		amount                          float64
		description, category, rawDate string
	)

	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Float64Var(&amount, "amount", 0, "transaction amount")
	fs.StringVar(&description, "description", "", "transaction description")
	fs.StringVar(&category, "category", "", "transaction category")
	fs.StringVar(&rawDate, "date", "", "transaction date (RFC 3339 or YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return req, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return req, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	var dateErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "amount":
			req.Amount = &amount
		case "description":
			req.Description = &description
		case "category":
			req.Category = &category
		case "date":
			date, err := parseDate(rawDate)
			if err != nil {
				dateErr = err
				return
			}
			req.Date = &date
		}
	})

	return req, dateErr
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date %q", errUsage, raw)
}
