package finmas

// Shared fixtures for the package tests.

func day(s string) Date { return MustParseDate(s) }

func buy(on, holding string, quantity, unitPrice float64) Movement {
	return NewMovement(day(on), holding, Buy, Q(quantity), BRL(unitPrice))
}

func sell(on, holding string, quantity, unitPrice float64) Movement {
	return NewMovement(day(on), holding, Sell, Q(quantity), BRL(unitPrice))
}

// evaluate runs the full offline pipeline over the movements.
func evaluate(ledger *Ledger) []TaxRecord {
	classifier := NewClassifier(nil)
	disposals := EvaluateDisposals(ledger, classifier)
	buckets := FoldMonthlyBuckets(disposals)
	return ApplyTaxes(disposals, buckets, ledger)
}
