package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas"
)

// This file implements the subcommands that append records to the ledger
// file: buy, sell, dividend and declare.

// appendRecord appends one encoded line to the ledger file, creating it if
// it doesn't exist.
func appendRecord(path string, encode func(w io.Writer) error) subcommands.ExitStatus {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended to %s\n", path)
	return subcommands.ExitSuccess
}

// movementCmd is the shared implementation of the buy and sell subcommands.
type movementCmd struct {
	direction  finmas.Direction
	ledgerFile string
	date       string
	quantity   float64
	price      float64
}

func (c *movementCmd) Name() string { return string(c.direction) }
func (c *movementCmd) Synopsis() string {
	return fmt.Sprintf("record a %s movement in the ledger", c.direction)
}
func (c *movementCmd) Usage() string {
	return fmt.Sprintf(`ftx %s [-l <ledger_file>] [-d <date>] -q <quantity> -p <unit_price> <holding>

  Appends a %s movement to the ledger file.
`, c.direction, c.direction)
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to (JSONL format).")
	f.StringVar(&c.date, "d", finmas.Today().String(), "Date of the movement.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity traded.")
	f.Float64Var(&c.price, "p", 0, "Unit price in BRL.")
}

func (c *movementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one holding is expected")
		return subcommands.ExitUsageError
	}
	date, err := finmas.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	m := finmas.NewMovement(date, f.Arg(0), c.direction, finmas.Q(c.quantity), finmas.BRL(c.price))
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendRecord(c.ledgerFile, func(w io.Writer) error {
		return finmas.EncodeMovement(w, m)
	})
}

func newBuyCmd() *movementCmd  { return &movementCmd{direction: finmas.Buy} }
func newSellCmd() *movementCmd { return &movementCmd{direction: finmas.Sell} }

// dividendCmd records a received income distribution.
type dividendCmd struct {
	ledgerFile string
	date       string
	gross      float64
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a received income distribution" }
func (*dividendCmd) Usage() string {
	return `ftx dividend [-l <ledger_file>] [-d <date>] -g <gross> <holding>

  Appends an income distribution (dividend, fund income, interest on
  equity) to the ledger file. The amount is the gross received in BRL.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to (JSONL format).")
	f.StringVar(&c.date, "d", finmas.Today().String(), "Date of the distribution.")
	f.Float64Var(&c.gross, "g", 0, "Gross amount received in BRL.")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one holding is expected")
		return subcommands.ExitUsageError
	}
	date, err := finmas.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	d := finmas.NewDistribution(date, f.Arg(0), finmas.BRL(c.gross))
	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendRecord(c.ledgerFile, func(w io.Writer) error {
		return finmas.EncodeDistribution(w, d)
	})
}

// declareCmd attaches classification metadata to a holding.
type declareCmd struct {
	ledgerFile string
	typ        string
	indexer    string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare the type or indexer of a holding" }
func (*declareCmd) Usage() string {
	return `ftx declare [-l <ledger_file>] [-type <type>] [-indexer <indexer>] <holding>

  Attaches classification metadata to a holding, overriding the ticker
  heuristic. Types: stock, fii, bdr, etf, renda fixa, crypto.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to (JSONL format).")
	f.StringVar(&c.typ, "type", "", "Explicit type tag, e.g. \"fii\" or \"bdr\".")
	f.StringVar(&c.indexer, "indexer", "", "Interest rate indexer, e.g. \"CDI\" or \"IPCA\".")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one holding is expected")
		return subcommands.ExitUsageError
	}
	if c.typ == "" && c.indexer == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of -type or -indexer is expected")
		return subcommands.ExitUsageError
	}

	meta := finmas.HoldingMeta{Type: c.typ, Indexer: c.indexer}
	return appendRecord(c.ledgerFile, func(w io.Writer) error {
		return finmas.EncodeHoldingMeta(w, f.Arg(0), meta)
	})
}
