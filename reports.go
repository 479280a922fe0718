package finmas

// AnnualReport is the yearly roll-up of an assessment.
type AnnualReport struct {
	Year              int
	DisposalTax       Money // total tax due on disposals
	DistributionTax   Money // total tax withheld or due on distributions
	TotalTax          Money
	ExemptProfit      Money // realized profit that stayed under exemption thresholds
	RealizedProfit    Money // total positive realized profit
	RealizedLoss      Money // total realized loss (negative)
	UnresolvedBases   int   // disposals whose cost basis could not be resolved
	SkippedItems      int
	DisposalCount     int
	DistributionCount int
}

// NewAnnualReport rolls up one calendar year of an assessment. Records with
// zero or exempt tax are excluded from obligations but retained here, so
// the report states totals as a lower bound when gaps exist.
func (a *Assessment) NewAnnualReport(year int) *AnnualReport {
	r := &AnnualReport{Year: year}

	for _, rec := range a.Records {
		if rec.Disposal.Date.Year() != year {
			continue
		}
		r.DisposalCount++
		r.DisposalTax = r.DisposalTax.Add(rec.Tax)
		if rec.Exempt {
			r.ExemptProfit = r.ExemptProfit.Add(rec.Disposal.Profit)
		}
		if rec.Disposal.BasisSource == BasisUnknown {
			r.UnresolvedBases++
			continue
		}
		if rec.Disposal.Profit.IsPositive() {
			r.RealizedProfit = r.RealizedProfit.Add(rec.Disposal.Profit)
		} else {
			r.RealizedLoss = r.RealizedLoss.Add(rec.Disposal.Profit)
		}
	}

	for _, rec := range a.DistributionRecords {
		if rec.Distribution.Date.Year() != year {
			continue
		}
		r.DistributionCount++
		r.DistributionTax = r.DistributionTax.Add(rec.Tax)
	}

	for _, s := range a.Skipped {
		if s.Date.Year() == year || s.Date.IsZero() {
			r.SkippedItems++
		}
	}

	r.TotalTax = r.DisposalTax.Add(r.DistributionTax)
	return r
}
