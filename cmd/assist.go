package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas"
	"github.com/korgloriws/finmas/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	ledgerFile string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the tax assistant" }
func (*assistCmd) Usage() string {
	return `ftx assist [-l <ledger_file>] [question]

  Start an interactive session with the AI tax assistant. It answers
  grounded on reports computed from your own ledger.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to report on (JSONL format).")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(func(ctx context.Context) (*finmas.Assessment, error) {
		return assess(ctx, c.ledgerFile)
	})
	a := agent.New(os.Stdout, os.Stdin, advisor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
