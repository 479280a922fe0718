package finmas

import (
	"testing"

	"github.com/shopspring/decimal"
)

// findRecord returns the n-th tax record of a holding.
func findRecord(t *testing.T, records []TaxRecord, holding string, n int) TaxRecord {
	t.Helper()
	seen := 0
	for _, r := range records {
		if r.Disposal.Holding == holding {
			if seen == n {
				return r
			}
			seen++
		}
	}
	t.Fatalf("no record %d for holding %q", n, holding)
	return TaxRecord{}
}

func TestStockMonthlyExemption(t *testing.T) {
	// Profit of exactly R$20.000 in the month stays exempt.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "PETR4", 1_000, 10),
		sell("2025-02-10", "PETR4", 1_000, 30),
	)

	r := findRecord(t, evaluate(ledger), "PETR4", 0)
	if !r.Exempt || r.Reason != ReasonMonthlyExemption {
		t.Errorf("record = %+v, want exempt with monthly exemption reason", r)
	}
	if !r.Tax.IsZero() {
		t.Errorf("Tax = %s, want zero", r.Tax)
	}
}

func TestStockExemptionCliff(t *testing.T) {
	// One cent over the threshold makes the whole month taxable, including
	// the sale that would have been exempt on its own.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "PETR4", 1_000, 10),
		sell("2025-02-10", "PETR4", 1_000, 25), // profit 15000.00
		buy("2025-01-06", "VALE3", 100, 10),
		sell("2025-02-20", "VALE3", 100, 60.0001), // profit 5000.01
	)

	records := evaluate(ledger)

	petr := findRecord(t, records, "PETR4", 0)
	if petr.Exempt {
		t.Error("PETR4 sale exempt, want taxable: the month crossed the threshold")
	}
	if want := BRL(2_250); !petr.Tax.Equal(want) {
		t.Errorf("PETR4 tax = %s, want %s", petr.Tax, want)
	}

	vale := findRecord(t, records, "VALE3", 0)
	if want := BRL(750); !vale.Tax.Equal(want) {
		t.Errorf("VALE3 tax = %s, want %s", vale.Tax, want)
	}
}

func TestStockExemptionOrderIndependent(t *testing.T) {
	// The big sale comes first in the month here, last in the cliff test
	// above; the treatment per sale is identical either way.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-06", "VALE3", 100, 10),
		sell("2025-02-01", "VALE3", 100, 60.0001), // profit 5000.01, first
		buy("2025-01-05", "PETR4", 1_000, 10),
		sell("2025-02-28", "PETR4", 1_000, 25), // profit 15000.00, last
	)

	records := evaluate(ledger)
	if r := findRecord(t, records, "VALE3", 0); !r.Tax.Equal(BRL(750)) {
		t.Errorf("VALE3 tax = %s, want %s", r.Tax, BRL(750))
	}
	if r := findRecord(t, records, "PETR4", 0); !r.Tax.Equal(BRL(2_250)) {
		t.Errorf("PETR4 tax = %s, want %s", r.Tax, BRL(2_250))
	}
}

func TestStockDayTrade(t *testing.T) {
	// Day-trades are taxed at 20% and never count toward the monthly
	// exemption threshold.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-02-10", "PETR4", 100, 30),
		sell("2025-02-10", "PETR4", 100, 40), // day-trade, profit 1000
		buy("2025-01-05", "VALE3", 1_000, 10),
		sell("2025-02-20", "VALE3", 1_000, 29.999), // ordinary, profit 19999
	)

	records := evaluate(ledger)

	petr := findRecord(t, records, "PETR4", 0)
	if petr.Exempt {
		t.Error("day-trade marked exempt")
	}
	if want := BRL(200); !petr.Tax.Equal(want) {
		t.Errorf("day-trade tax = %s, want %s", petr.Tax, want)
	}

	vale := findRecord(t, records, "VALE3", 0)
	if !vale.Exempt {
		t.Error("ordinary sale not exempt: the day-trade profit must not fill the bucket")
	}
}

func TestClassIsolation(t *testing.T) {
	// Real estate fund profit in the same month must not consume the stock
	// threshold, and is itself taxed flat.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "PETR4", 1_000, 10),
		sell("2025-02-10", "PETR4", 1_000, 29), // stock profit 19000
		buy("2025-01-06", "HGLG11", 100, 100),
		sell("2025-02-11", "HGLG11", 100, 200), // fii profit 10000
	)
	ledger.SetMeta("HGLG11", HoldingMeta{Type: "fii"})

	records := evaluate(ledger)

	if r := findRecord(t, records, "PETR4", 0); !r.Exempt {
		t.Error("stock sale not exempt: fii profit leaked into the stock bucket")
	}
	fii := findRecord(t, records, "HGLG11", 0)
	if fii.Exempt {
		t.Error("fii sale exempt, the class has no exemption")
	}
	if want := BRL(2_000); !fii.Tax.Equal(want) {
		t.Errorf("fii tax = %s, want %s", fii.Tax, want)
	}
}

func TestZeroProfitStockIsExempt(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "PETR4", 10, 30),
		sell("2025-02-10", "PETR4", 10, 30),
	)

	r := findRecord(t, evaluate(ledger), "PETR4", 0)
	if !r.Exempt || r.Reason != ReasonMonthlyExemption {
		t.Errorf("record = %+v, want exempt zero-profit sale", r)
	}
}

func TestEtfAndBdrRates(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "IVVB11", 100, 250),
		sell("2025-02-10", "IVVB11", 100, 260), // ordinary, profit 1000
		buy("2025-02-10", "AAPL34", 100, 50),
		sell("2025-02-10", "AAPL34", 100, 60), // day-trade, profit 1000
	)
	ledger.SetMeta("IVVB11", HoldingMeta{Type: "etf"})
	ledger.SetMeta("AAPL34", HoldingMeta{Type: "bdr"})

	records := evaluate(ledger)

	if r := findRecord(t, records, "IVVB11", 0); !r.Tax.Equal(BRL(150)) {
		t.Errorf("etf tax = %s, want %s", r.Tax, BRL(150))
	}
	if r := findRecord(t, records, "AAPL34", 0); !r.Tax.Equal(BRL(200)) {
		t.Errorf("bdr day-trade tax = %s, want %s", r.Tax, BRL(200))
	}
}

func TestFixedIncomeTiers(t *testing.T) {
	// Regressive by holding period since the first buy; profit 100 each.
	tests := []struct {
		holding string
		sellOn  string
		wantTax Money
	}{
		{"CDB-A", "2024-06-29", BRL(22.50)}, // 180 days, 22.5%
		{"CDB-B", "2024-06-30", BRL(20)},    // 181 days, 20%
		{"CDB-C", "2024-12-26", BRL(20)},    // 360 days, 20%
		{"CDB-D", "2024-12-27", BRL(17.50)}, // 361 days, 17.5%
		{"CDB-E", "2025-12-21", BRL(17.50)}, // 720 days, 17.5%
		{"CDB-F", "2025-12-22", BRL(15)},    // 721 days, 15%
	}

	ledger := NewLedger()
	for _, tt := range tests {
		ledger.Append(
			buy("2024-01-01", tt.holding, 1, 1_000),
			sell(tt.sellOn, tt.holding, 1, 1_100),
		)
		ledger.SetMeta(tt.holding, HoldingMeta{Indexer: "CDI"})
	}

	records := evaluate(ledger)
	for _, tt := range tests {
		r := findRecord(t, records, tt.holding, 0)
		if !r.Tax.Equal(tt.wantTax) {
			t.Errorf("%s sold %s: tax = %s, want %s", tt.holding, tt.sellOn, r.Tax, tt.wantTax)
		}
	}
}

func TestCryptoMonthlyExemption(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "BTC", 1, 10_000),
		sell("2025-02-10", "BTC", 1, 40_000), // profit 30000 <= 35000
	)
	ledger.SetMeta("BTC", HoldingMeta{Type: "crypto"})

	r := findRecord(t, evaluate(ledger), "BTC", 0)
	if !r.Exempt || r.Reason != ReasonMonthlyExemption {
		t.Errorf("record = %+v, want exempt", r)
	}
}

func TestCryptoProgressiveBrackets(t *testing.T) {
	// The month total (37000) crosses the threshold, so both sales are
	// taxed; the bracket is picked by each sale's own profit.
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "ETH", 10, 1_000),
		sell("2025-02-03", "ETH", 4, 2_000), // profit 4000, first in month
		buy("2025-01-06", "BTC", 1, 10_000),
		sell("2025-02-20", "BTC", 1, 43_000), // profit 33000
	)
	ledger.SetMeta("BTC", HoldingMeta{Type: "crypto"})
	ledger.SetMeta("ETH", HoldingMeta{Type: "crypto"})

	records := evaluate(ledger)

	// 4000 <= 5000: 15%
	if r := findRecord(t, records, "ETH", 0); !r.Tax.Equal(BRL(600)) {
		t.Errorf("ETH tax = %s, want %s", r.Tax, BRL(600))
	}
	// 33000 > 15000: 22.5%
	if r := findRecord(t, records, "BTC", 0); !r.Tax.Equal(BRL(7_425)) {
		t.Errorf("BTC tax = %s, want %s", r.Tax, BRL(7_425))
	}
}

func TestLossesAreNotBanked(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "HGLG11", 100, 100),
		sell("2025-01-20", "HGLG11", 50, 80),  // loss -1000
		sell("2025-02-20", "HGLG11", 50, 120), // gain 1000
	)
	ledger.SetMeta("HGLG11", HoldingMeta{Type: "fii"})

	records := evaluate(ledger)

	loss := findRecord(t, records, "HGLG11", 0)
	if loss.Reason != ReasonLoss || !loss.Tax.IsZero() {
		t.Errorf("loss record = %+v, want zero tax with loss reason", loss)
	}
	// The gain is taxed in full: no offset from January's loss.
	gain := findRecord(t, records, "HGLG11", 1)
	if want := BRL(200); !gain.Tax.Equal(want) {
		t.Errorf("gain tax = %s, want %s", gain.Tax, want)
	}
}

func TestUnknownBasisIsNotTaxed(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(sell("2025-02-10", "PETR4", 100, 30))

	r := findRecord(t, evaluate(ledger), "PETR4", 0)
	if r.Reason != ReasonBasisNotFound {
		t.Errorf("Reason = %q, want %q", r.Reason, ReasonBasisNotFound)
	}
	if !r.Tax.IsZero() {
		t.Errorf("Tax = %s, want zero: gross proceeds are never taxed", r.Tax)
	}
}

func TestUnknownClassRate(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("2025-01-05", "MYSTERY11", 100, 10),
		sell("2025-02-10", "MYSTERY11", 100, 20), // profit 1000
	)

	r := findRecord(t, evaluate(ledger), "MYSTERY11", 0)
	if r.Disposal.Class != Unknown {
		t.Fatalf("Class = %s, want unknown", r.Disposal.Class)
	}
	if want := BRL(150); !r.Tax.Equal(want) {
		t.Errorf("tax = %s, want %s", r.Tax, want)
	}
}

func TestFoldMonthlyBuckets(t *testing.T) {
	disposals := []DisposalResult{
		{Holding: "PETR4", Class: Stock, Date: day("2025-02-10"), Profit: BRL(100)},
		{Holding: "VALE3", Class: Stock, Date: day("2025-02-20"), Profit: BRL(50)},
		{Holding: "PETR4", Class: Stock, Date: day("2025-03-01"), Profit: BRL(70)},
		{Holding: "HGLG11", Class: RealEstateFund, Date: day("2025-02-11"), Profit: BRL(30)},
		{Holding: "PETR4", Class: Stock, Date: day("2025-02-21"), Profit: BRL(999), DayTrade: true},
		{Holding: "PETR4", Class: Stock, Date: day("2025-02-22"), Profit: BRL(-10)},
		{Holding: "GHOST", Class: Stock, Date: day("2025-02-23"), BasisSource: BasisUnknown},
	}

	buckets := FoldMonthlyBuckets(disposals)

	if got := buckets[BucketKey{Stock, 2025, 2}]; !got.Equal(BRL(150)) {
		t.Errorf("stock feb = %s, want %s", got, BRL(150))
	}
	if got := buckets[BucketKey{Stock, 2025, 3}]; !got.Equal(BRL(70)) {
		t.Errorf("stock mar = %s, want %s", got, BRL(70))
	}
	if got := buckets[BucketKey{RealEstateFund, 2025, 2}]; !got.Equal(BRL(30)) {
		t.Errorf("fii feb = %s, want %s", got, BRL(30))
	}
}

func TestRateFractions(t *testing.T) {
	// The published regime rates, as fractions.
	for _, tt := range []struct {
		rate decimal.Decimal
		want string
	}{
		{rate15, "0.15"},
		{rate175, "0.175"},
		{rate20, "0.2"},
		{rate225, "0.225"},
	} {
		if got := tt.rate.String(); got != tt.want {
			t.Errorf("rate = %s, want %s", got, tt.want)
		}
	}
}
