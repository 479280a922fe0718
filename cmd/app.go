// Package cmd implements the CLI application to compute portfolio taxes.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/korgloriws/finmas"
	"github.com/korgloriws/finmas/brapi"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&taxesCmd{}, "reports")
	c.Register(&darfCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&annualCmd{}, "reports")
	c.Register(&classifyCmd{}, "reports")

	c.Register(newBuyCmd(), "ledger")
	c.Register(newSellCmd(), "ledger")
	c.Register(&dividendCmd{}, "ledger")
	c.Register(&declareCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

const defaultLedgerFile = "ledger.jsonl"

// DecodeLedger loads a ledger file. A missing file is an empty ledger.
func DecodeLedger(path string) (*finmas.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return finmas.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := finmas.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// newClassifier wires the quote-type lookup. The token is optional, brapi
// serves anonymous requests on the free tier.
func newClassifier() *finmas.Classifier {
	return finmas.NewClassifier(brapi.New(os.Getenv("BRAPI_TOKEN")))
}

// assess loads a ledger and runs the full evaluation pipeline.
func assess(ctx context.Context, path string) (*finmas.Assessment, error) {
	ledger, err := DecodeLedger(path)
	if err != nil {
		return nil, err
	}
	return finmas.Assess(ctx, ledger, newClassifier()), nil
}
