package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas/renderer"
)

// taxesCmd holds the flags for the 'taxes' subcommand.
type taxesCmd struct {
	ledgerFile string
}

func (*taxesCmd) Name() string     { return "taxes" }
func (*taxesCmd) Synopsis() string { return "tax treatment of every disposal in the ledger" }
func (*taxesCmd) Usage() string {
	return `ftx taxes [-l <ledger_file>]

  Evaluates every sale against its FIFO cost basis and displays the tax
  treatment: rate, amount due, and the exemption reason when none is due.
`
}

func (c *taxesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
}

func (c *taxesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := assess(ctx, c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TaxesMarkdown(a))
	return subcommands.ExitSuccess
}
