package finmas

// BasisSource tells where a disposal's cost basis came from. When the FIFO
// queue cannot cover a sale the evaluator falls back tier by tier, mirroring
// the legally-required best effort when ledger history is incomplete.
type BasisSource int

const (
	// BasisFIFO is the normal case: the whole quantity matched lots.
	BasisFIFO BasisSource = iota
	// BasisAverage falls back to the holding's known average buy cost.
	BasisAverage
	// BasisEarliestBuy falls back to the unit price of the earliest buy.
	BasisEarliestBuy
	// BasisUnknown means no cost source exists: profit is not computable
	// and the disposal is treated as non-taxable with a stated reason,
	// never taxed on gross proceeds.
	BasisUnknown
)

func (s BasisSource) String() string {
	switch s {
	case BasisFIFO:
		return "fifo"
	case BasisAverage:
		return "average"
	case BasisEarliestBuy:
		return "earliest-buy"
	default:
		return "not-found"
	}
}

// DisposalResult is derived, once, from one sell movement. Re-evaluation
// creates a new result, it is never mutated.
type DisposalResult struct {
	Holding     string
	Class       AssetClass
	Date        Date
	Quantity    Quantity
	SalePrice   Money // unit price of the sale
	Proceeds    Money // quantity * sale price
	UnitCost    Money // resolved cost basis per unit
	CostBasis   Money // quantity-weighted total cost basis
	Profit      Money // proceeds - cost basis; zero when basis is unknown
	DayTrade    bool
	BasisSource BasisSource
	Consumed    []Lot // lot fragments consumed, for audit
}

// evaluateDisposal computes the DisposalResult for one sell movement.
// The lot ledger must have been fed every buy of the holding dated before
// this sale: within one holding disposals are evaluated in ascending date
// order because later evaluations depend on earlier consumption.
func evaluateDisposal(sale Movement, class AssetClass, lots *LotLedger, ledger *Ledger) DisposalResult {
	r := DisposalResult{
		Holding:   sale.Holding,
		Class:     class,
		Date:      sale.Date,
		Quantity:  sale.Quantity,
		SalePrice: sale.UnitPrice,
		Proceeds:  sale.Amount(),
		DayTrade:  ledger.HasBuyOn(sale.Holding, sale.Date),
	}

	c := lots.Consume(sale.Holding, sale.Quantity, sale.Date)
	r.Consumed = c.Fragments

	switch {
	case !c.Short():
		r.BasisSource = BasisFIFO
		r.UnitCost = c.UnitCost
	default:
		// Shortfall: fall back to alternate cost-basis sources.
		if avg, ok := ledger.AverageBuyCost(sale.Holding, sale.Date); ok {
			r.BasisSource = BasisAverage
			r.UnitCost = avg
		} else if first, ok := ledger.EarliestBuy(sale.Holding, sale.Date); ok {
			r.BasisSource = BasisEarliestBuy
			r.UnitCost = first.UnitPrice
		} else {
			// Cost basis unknown, not zero: profit is not computable.
			r.BasisSource = BasisUnknown
			return r
		}
	}

	r.CostBasis = r.UnitCost.Mul(r.Quantity)
	r.Profit = r.Proceeds.Sub(r.CostBasis)
	return r
}

// EvaluateDisposals replays the whole movement stream: buys feed the lot
// ledger, sells are evaluated against it. Holdings are independent, within
// one holding the stream order (ascending date) is preserved.
func EvaluateDisposals(ledger *Ledger, classifier *Classifier) []DisposalResult {
	lots := NewLotLedger()
	var results []DisposalResult

	classes := make(map[string]AssetClass)
	for holding := range ledger.Holdings() {
		meta, _ := ledger.Meta(holding)
		classes[holding] = classifier.Classify(holding, meta)
	}

	for _, m := range ledger.Movements() {
		switch m.Direction {
		case Buy:
			lots.Acquire(m.Holding, m.Quantity, m.UnitPrice, m.Date)
		case Sell:
			results = append(results, evaluateDisposal(m, classes[m.Holding], lots, ledger))
		}
	}
	return results
}
