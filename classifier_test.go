package finmas

import (
	"context"
	"errors"
	"testing"
)

// fakeLookup is an in-memory QuoteTypeLookup recording its calls.
type fakeLookup struct {
	types map[string]string
	calls []string
}

func (f *fakeLookup) QuoteType(_ context.Context, ticker string) (string, error) {
	f.calls = append(f.calls, ticker)
	qt, ok := f.types[ticker]
	if !ok {
		return "", errors.New("not found")
	}
	return qt, nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		holding string
		meta    HoldingMeta
		want    AssetClass
	}{
		{"explicit fii", "HGLG11", HoldingMeta{Type: "fii"}, RealEstateFund},
		{"explicit portuguese", "XPTO", HoldingMeta{Type: "Fundo Imobiliário"}, RealEstateFund},
		{"explicit bdr", "AAPL34", HoldingMeta{Type: "bdr"}, DepositaryReceipt},
		{"explicit etf", "IVVB11", HoldingMeta{Type: "etf"}, ExchangeTradedFund},
		{"explicit renda fixa", "CDB Banco X", HoldingMeta{Type: "Renda Fixa"}, FixedIncome},
		{"explicit crypto", "BTC", HoldingMeta{Type: "cripto"}, Crypto},
		{"indexer cdi", "CDB Banco X", HoldingMeta{Indexer: "110% CDI"}, FixedIncome},
		{"indexer ipca", "Tesouro 2035", HoldingMeta{Indexer: "IPCA+"}, FixedIncome},
		{"explicit type wins over indexer", "XPTO", HoldingMeta{Type: "acao", Indexer: "CDI"}, Stock},
		{"ticker shape stock", "PETR4", HoldingMeta{}, Stock},
		{"ticker shape stock", "VALE3", HoldingMeta{}, Stock},
		{"reserved fund suffix", "HGLG11", HoldingMeta{}, Unknown},
		{"reserved unit suffix", "TAEE11B", HoldingMeta{}, Unknown},
		{"no digits", "BTC", HoldingMeta{}, Unknown},
		{"empty", "", HoldingMeta{}, Unknown},
	}

	c := NewClassifier(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.holding, tt.meta); got != tt.want {
				t.Errorf("Classify(%q, %+v) = %s, want %s", tt.holding, tt.meta, got, tt.want)
			}
		})
	}
}

func TestClassifyWithLookup(t *testing.T) {
	lookup := &fakeLookup{types: map[string]string{
		"HGLG11": "MUTUALFUND",
		"BTC":    "CRYPTOCURRENCY",
		"IVVB11": "ETF",
	}}
	c := NewClassifier(lookup)

	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-01", "HGLG11", 10, 100),
		buy("2025-01-02", "BTC", 1, 300_000),
		buy("2025-01-03", "IVVB11", 10, 250),
		buy("2025-01-04", "PETR4", 10, 30),    // resolvable locally, no lookup
		buy("2025-01-05", "CDB Banco X", 1, 1_000), // tagged below, no lookup
	)
	ledger.SetMeta("CDB Banco X", HoldingMeta{Indexer: "CDI"})

	c.Prefetch(context.Background(), ledger)

	// PETR4 is still looked up: the ticker heuristic is a weaker source
	// than quote-type metadata, only tags suppress the lookup.
	if got := len(lookup.calls); got != 4 {
		t.Errorf("lookup calls = %d (%v), want 4", got, lookup.calls)
	}

	tests := []struct {
		holding string
		want    AssetClass
	}{
		{"HGLG11", RealEstateFund},
		{"BTC", Crypto},
		{"IVVB11", ExchangeTradedFund},
		{"PETR4", Stock},
		{"CDB Banco X", FixedIncome},
	}
	for _, tt := range tests {
		meta, _ := ledger.Meta(tt.holding)
		if got := c.Classify(tt.holding, meta); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.holding, got, tt.want)
		}
	}
}

func TestPrefetchCachesFailures(t *testing.T) {
	lookup := &fakeLookup{} // every call errors
	c := NewClassifier(lookup)

	ledger := NewLedger()
	ledger.Append(buy("2025-01-01", "HGLG11", 10, 100))

	c.Prefetch(context.Background(), ledger)
	c.Prefetch(context.Background(), ledger)

	if got := len(lookup.calls); got != 1 {
		t.Errorf("lookup calls = %d, want 1 (failures are cached)", got)
	}
	// Degrades to the heuristic, HGLG11 has a reserved suffix.
	if got := c.Classify("HGLG11", HoldingMeta{}); got != Unknown {
		t.Errorf("Classify() = %s, want unknown", got)
	}
}
