package finmas

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax rates of the modeled regime, as decimal fractions.
var (
	rate15  = decimal.NewFromFloat(0.15)
	rate175 = decimal.NewFromFloat(0.175)
	rate20  = decimal.NewFromFloat(0.20)
	rate225 = decimal.NewFromFloat(0.225)
)

// Monthly exemption thresholds, cumulative ordinary profit per class.
var (
	stockMonthlyExemption  = BRL(20_000)
	cryptoMonthlyExemption = BRL(35_000)
)

// Crypto progressive brackets, by this disposal's profit size.
var cryptoBrackets = []struct {
	upTo Money
	rate decimal.Decimal
}{
	{BRL(5_000), rate15},
	{BRL(10_000), rate175},
	{BRL(15_000), rate20},
}

// Exemption and non-taxability reasons surfaced inline in reports.
const (
	ReasonMonthlyExemption = "monthly exemption"
	ReasonLoss             = "loss"
	ReasonBasisNotFound    = "cost basis not found"
)

// TaxRecord is the tax treatment of one disposal. It is the source of truth
// for obligation aggregation.
type TaxRecord struct {
	Disposal DisposalResult
	Rate     decimal.Decimal
	Tax      Money
	Exempt   bool
	Reason   string // non-empty when exempt or otherwise non-taxable
}

// Taxable reports whether the record carries tax due.
func (r TaxRecord) Taxable() bool { return r.Tax.IsPositive() }

// BucketKey scopes a monthly profit bucket to one asset class and one
// calendar month. Disposals of other classes in the same month must not
// affect another class's threshold.
type BucketKey struct {
	Class AssetClass
	Year  int
	Month time.Month
}

// MonthlyBuckets is an immutable snapshot of cumulative ordinary profit per
// (asset class, calendar month). Only positive profit from non-day-trade
// disposals accumulates; losses and day-trade gains never do. There is no
// carry between months.
type MonthlyBuckets map[BucketKey]Money

// bucketKey returns the key of the bucket a disposal belongs to.
func bucketKey(d DisposalResult) BucketKey {
	return BucketKey{Class: d.Class, Year: d.Date.Year(), Month: d.Date.Month()}
}

// FoldMonthlyBuckets builds the bucket snapshot with a single explicit fold
// over the date-ordered disposals. The snapshot is computed once per
// assessment and never mutated across unrelated evaluation calls.
func FoldMonthlyBuckets(disposals []DisposalResult) MonthlyBuckets {
	buckets := make(MonthlyBuckets)
	for _, d := range disposals {
		if d.DayTrade || !d.Profit.IsPositive() || d.BasisSource == BasisUnknown {
			continue
		}
		key := bucketKey(d)
		buckets[key] = buckets[key].Add(d.Profit)
	}
	return buckets
}

// ApplyTaxes produces one TaxRecord per disposal by applying the per-class
// regime table against the monthly bucket snapshot. The rate decision is a
// pure function of (profit, monthly cumulative, class, day-trade flag,
// holding period), independent of evaluation order within a month: crossing
// an exemption threshold makes the entire month's ordinary gains for that
// class taxable, not just the excess.
func ApplyTaxes(disposals []DisposalResult, buckets MonthlyBuckets, ledger *Ledger) []TaxRecord {
	records := make([]TaxRecord, 0, len(disposals))
	for _, d := range disposals {
		records = append(records, applyTax(d, buckets, ledger))
	}
	return records
}

func applyTax(d DisposalResult, buckets MonthlyBuckets, ledger *Ledger) TaxRecord {
	r := TaxRecord{Disposal: d}

	if d.BasisSource == BasisUnknown {
		// Profit is not computable. Never silently assume zero cost, which
		// would overstate tax on the full proceeds.
		r.Reason = ReasonBasisNotFound
		return r
	}
	if d.Profit.IsNegative() {
		// Losses never generate negative tax and are not banked for
		// future offset.
		r.Reason = ReasonLoss
		return r
	}

	monthly := buckets[bucketKey(d)]

	switch d.Class {
	case Stock:
		if d.DayTrade {
			r.Rate = rate20
			break
		}
		if monthly.LessThanOrEqual(stockMonthlyExemption) {
			r.Exempt = true
			r.Reason = ReasonMonthlyExemption
			return r
		}
		r.Rate = rate15
	case RealEstateFund:
		r.Rate = rate20
	case ExchangeTradedFund, DepositaryReceipt:
		if d.DayTrade {
			r.Rate = rate20
		} else {
			r.Rate = rate15
		}
	case FixedIncome:
		r.Rate = fixedIncomeRate(d, ledger)
	case Crypto:
		if d.DayTrade {
			r.Rate = rate20
			break
		}
		if monthly.LessThanOrEqual(cryptoMonthlyExemption) {
			r.Exempt = true
			r.Reason = ReasonMonthlyExemption
			return r
		}
		r.Rate = cryptoRate(d.Profit)
	default:
		// Unknown holdings take the conservative stock disposal rate.
		r.Rate = rate15
	}

	r.Tax = d.Profit.MulRate(r.Rate).Round()
	return r
}

// fixedIncomeRate applies the regressive holding-period tiers, from the
// first buy of the title to this sale.
func fixedIncomeRate(d DisposalResult, ledger *Ledger) decimal.Decimal {
	first, ok := ledger.EarliestBuy(d.Holding, d.Date)
	if !ok {
		return rate15
	}
	days := d.Date.DaysSince(first.Date)
	switch {
	case days <= 180:
		return rate225
	case days <= 360:
		return rate20
	case days <= 720:
		return rate175
	default:
		return rate15
	}
}

// cryptoRate applies the progressive brackets by this disposal's profit size.
func cryptoRate(profit Money) decimal.Decimal {
	for _, b := range cryptoBrackets {
		if profit.LessThanOrEqual(b.upTo) {
			return b.rate
		}
	}
	return rate225
}
