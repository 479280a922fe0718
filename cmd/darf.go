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

// darfCmd holds the flags for the 'darf' subcommand.
type darfCmd struct {
	ledgerFile string
	date       string
}

func (*darfCmd) Name() string     { return "darf" }
func (*darfCmd) Synopsis() string { return "DARF payment schedule with due dates and statuses" }
func (*darfCmd) Usage() string {
	return `ftx darf [-l <ledger_file>] [-d <date>]

  Aggregates taxable disposals into monthly DARF obligations, due on the
  last business day of the month following each sale. Statuses (overdue,
  due-today, due-soon, pending) are derived against -d, default today.
`
}

func (c *darfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
	f.StringVar(&c.date, "d", finmas.Today().String(), "Reference date for obligation statuses.")
}

func (c *darfCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := finmas.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := assess(ctx, c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ObligationsMarkdown(a.Obligations, today))
	return subcommands.ExitSuccess
}
