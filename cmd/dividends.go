package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas/renderer"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	ledgerFile string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "tax treatment of received income distributions" }
func (*dividendsCmd) Usage() string {
	return `ftx dividends [-l <ledger_file>]

  Displays the tax treatment of every distribution in the ledger: exempt
  classes at their gross amount, depositary receipts with the progressive
  withholding applied.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := assess(ctx, c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DividendsMarkdown(a.DistributionRecords))
	return subcommands.ExitSuccess
}
