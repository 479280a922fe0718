package finmas

import "github.com/shopspring/decimal"

// Progressive withholding table applied to a single depositary-receipt
// distribution, by gross amount.
var bdrDistributionBrackets = []struct {
	upTo Money
	rate decimal.Decimal
}{
	{BRL(22_847.76), decimal.NewFromFloat(0.075)},
	{BRL(33_919.80), rate15},
	{BRL(45_012.60), rate225},
}

var bdrDistributionTopRate = decimal.NewFromFloat(0.275)

// DistributionTaxRecord is the tax treatment of one income distribution.
type DistributionTaxRecord struct {
	Distribution Distribution
	Class        AssetClass
	Rate         decimal.Decimal
	Tax          Money
	Net          Money
	Exempt       bool
}

// ApplyDistributionTaxes applies the non-FIFO distribution regime table:
// stock, real-estate-fund and ETF income is exempt; depositary-receipt
// income is taxed progressively by the gross amount of the single
// distribution; fixed-income coupons are withheld at source and reported at
// zero; unclassified holdings default to exempt, the conservative choice.
func ApplyDistributionTaxes(ledger *Ledger, classifier *Classifier) []DistributionTaxRecord {
	var records []DistributionTaxRecord
	for _, d := range ledger.Distributions() {
		meta, _ := ledger.Meta(d.Holding)
		class := classifier.Classify(d.Holding, meta)
		records = append(records, applyDistributionTax(d, class))
	}
	return records
}

func applyDistributionTax(d Distribution, class AssetClass) DistributionTaxRecord {
	r := DistributionTaxRecord{Distribution: d, Class: class, Net: d.Gross}

	if class != DepositaryReceipt {
		r.Exempt = true
		return r
	}

	r.Rate = bdrDistributionTopRate
	for _, b := range bdrDistributionBrackets {
		if d.Gross.LessThanOrEqual(b.upTo) {
			r.Rate = b.rate
			break
		}
	}
	r.Tax = d.Gross.MulRate(r.Rate).Round()
	r.Net = d.Gross.Sub(r.Tax)
	return r
}
