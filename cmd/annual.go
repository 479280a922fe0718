package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas"
	"github.com/korgloriws/finmas/renderer"
)

// annualCmd holds the flags for the 'annual' subcommand.
type annualCmd struct {
	ledgerFile string
	year       int
}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "yearly tax summary, a filing aid" }
func (*annualCmd) Usage() string {
	return `ftx annual [-l <ledger_file>] [-year <year>]

  Rolls one calendar year of disposals and distributions into the figures
  needed for the annual filing. Defaults to the current year.
`
}

func (c *annualCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
	f.IntVar(&c.year, "year", finmas.Today().Year(), "Calendar year to summarize.")
}

func (c *annualCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := assess(ctx, c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnnualMarkdown(a.NewAnnualReport(c.year)))
	return subcommands.ExitSuccess
}
