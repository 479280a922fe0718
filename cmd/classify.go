package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas/renderer"
)

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	ledgerFile string
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show the resolved asset class of every holding" }
func (*classifyCmd) Usage() string {
	return `ftx classify [-l <ledger_file>]

  Shows the asset class each holding resolved to. When the heuristic
  guesses wrong, tag the holding explicitly with 'ftx declare'.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	classifier := newClassifier()
	classifier.Prefetch(ctx, ledger)

	printMarkdown(renderer.ClassesMarkdown(ledger, classifier))
	return subcommands.ExitSuccess
}
