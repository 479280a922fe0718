package finmas

import "context"

// Assessment bundles every output of one evaluation pass over a ledger.
// It is deterministic with respect to its inputs: the same movement and
// distribution streams always produce identical records and obligations,
// as the results feed regulatory filings.
type Assessment struct {
	Records             []TaxRecord
	DistributionRecords []DistributionTaxRecord
	Buckets             MonthlyBuckets
	Obligations         []TaxObligation
	Skipped             []SkippedItem
}

// Assess runs the full pipeline: classification (external lookups resolved
// up front), disposal evaluation in stream order, the monthly bucket fold,
// the regime table, distribution taxes, and obligation aggregation.
func Assess(ctx context.Context, ledger *Ledger, classifier *Classifier) *Assessment {
	classifier.Prefetch(ctx, ledger)

	disposals := EvaluateDisposals(ledger, classifier)
	buckets := FoldMonthlyBuckets(disposals)
	records := ApplyTaxes(disposals, buckets, ledger)

	return &Assessment{
		Records:             records,
		DistributionRecords: ApplyDistributionTaxes(ledger, classifier),
		Buckets:             buckets,
		Obligations:         AggregateObligations(records),
		Skipped:             ledger.Skipped(),
	}
}
