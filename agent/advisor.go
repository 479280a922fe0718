package agent

import (
	"context"

	"github.com/korgloriws/finmas"
	"github.com/korgloriws/finmas/docs"
	"github.com/korgloriws/finmas/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Func implements Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewAdvisor creates the tax advisor expert. It answers questions about the
// user's own liabilities, grounded on the assessment the tools render on
// demand. The assess callback recomputes from the current ledger so the
// advisor never answers from stale figures.
func NewAdvisor(assess func(ctx context.Context) (*finmas.Assessment, error)) *Expert {
	tools := []Function{
		reportFunc("TaxReport", "The per-disposal tax treatment of every sale in the ledger, as a markdown table with rates, amounts and exemption reasons.",
			func(ctx context.Context) (string, error) {
				a, err := assess(ctx)
				if err != nil {
					return "", err
				}
				return renderer.TaxesMarkdown(a), nil
			}),
		reportFunc("Obligations", "The DARF payment schedule: due dates, amounts and statuses relative to today.",
			func(ctx context.Context) (string, error) {
				a, err := assess(ctx)
				if err != nil {
					return "", err
				}
				return renderer.ObligationsMarkdown(a.Obligations, finmas.Today()), nil
			}),
		reportFunc("Distributions", "The tax treatment of received dividends and other income distributions.",
			func(ctx context.Context) (string, error) {
				a, err := assess(ctx)
				if err != nil {
					return "", err
				}
				return renderer.DividendsMarkdown(a.DistributionRecords), nil
			}),
		reportFunc("Rules", "The documentation of the modeled tax rules: asset classes, rates, exemptions, deadlines and the ledger format.",
			func(ctx context.Context) (string, error) {
				return docs.GetTopic("*")
			}),
	}

	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a tax assistant for a Brazilian individual investor.

			Answer questions about the user's capital gains taxes, exemptions and
			DARF payment deadlines using the Tools: they render reports computed
			from the user's actual ledger, and the Rules tool documents the
			modeled regime. Ground every figure you state in a tool response,
			never estimate amounts yourself.

			The reports may flag skipped ledger items or sales without a cost
			basis. When they do, tell the user their totals are a lower bound and
			which records need fixing.

			You are not a substitute for a professional accountant, say so when
			the user asks about situations the reports do not cover.
		`}}},
		},
		Library: NewLibrary(tools),
	}
}

// reportFunc wraps a parameterless markdown report as a model tool.
func reportFunc(name, description string, render func(ctx context.Context) (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := render(ctx)
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: name,
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": out,
				},
			}
		},
	}
}
