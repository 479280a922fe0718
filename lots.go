package finmas

// Lot is a slice of acquired quantity still unsold. Lots are owned
// exclusively by the lot ledger of one holding, created by buy movements
// and shrunk or removed by sell movements. A lot quantity is never negative.
type Lot struct {
	Date     Date
	Quantity Quantity
	UnitCost Money
}

// Cost returns the total remaining cost of the lot.
func (l Lot) Cost() Money { return l.UnitCost.Mul(l.Quantity) }

// LotLedger maintains, per holding, an ordered queue of acquisition lots and
// consumes them first-in-first-out when a disposal occurs.
type LotLedger struct {
	lots map[string][]Lot // holding -> lots ordered by acquisition date
}

// NewLotLedger creates an empty lot ledger.
func NewLotLedger() *LotLedger {
	return &LotLedger{lots: make(map[string][]Lot)}
}

// Acquire appends a lot for the holding. Callers feed buys in date order,
// the queue stays ordered by acquisition date.
func (ll *LotLedger) Acquire(holding string, quantity Quantity, unitCost Money, on Date) {
	ll.lots[holding] = append(ll.lots[holding], Lot{Date: on, Quantity: quantity, UnitCost: unitCost})
}

// Position returns the total unsold quantity held for the holding.
func (ll *LotLedger) Position(holding string) Quantity {
	var total Quantity
	for _, lot := range ll.lots[holding] {
		total = total.Add(lot.Quantity)
	}
	return total
}

// Consumption is the result of a FIFO consume call.
type Consumption struct {
	Fragments []Lot    // the consumed lot fragments, for audit
	Matched   Quantity // total quantity matched against lots
	Shortfall Quantity // requested quantity that no lot could cover
	UnitCost  Money    // weighted-average unit cost of the matched quantity
}

// Short reports whether part of the requested quantity found no lot.
func (c Consumption) Short() bool { return !c.Shortfall.IsZero() }

// Consume removes quantity oldest-lot-first, considering only lots dated on
// or before asOf. When available lots are smaller than the requested
// quantity it returns whatever could be matched plus the shortfall, it
// never fails: shortfall is a reported condition, not an error, and callers
// fall back to alternate cost-basis sources.
func (ll *LotLedger) Consume(holding string, quantity Quantity, asOf Date) Consumption {
	var c Consumption
	remaining := quantity
	var totalCost Money

	queue := ll.lots[holding]
	kept := queue[:0]
	for _, lot := range queue {
		if remaining.IsZero() || lot.Date.After(asOf) {
			kept = append(kept, lot)
			continue
		}
		if lot.Quantity.GreaterThan(remaining) {
			// Partial consumption of this lot.
			fragment := Lot{Date: lot.Date, Quantity: remaining, UnitCost: lot.UnitCost}
			c.Fragments = append(c.Fragments, fragment)
			totalCost = totalCost.Add(fragment.Cost())
			c.Matched = c.Matched.Add(remaining)

			lot.Quantity = lot.Quantity.Sub(remaining)
			remaining = Q(0)
			kept = append(kept, lot)
		} else {
			// Full consumption of this lot.
			c.Fragments = append(c.Fragments, lot)
			totalCost = totalCost.Add(lot.Cost())
			c.Matched = c.Matched.Add(lot.Quantity)
			remaining = remaining.Sub(lot.Quantity)
		}
	}
	ll.lots[holding] = kept

	c.Shortfall = remaining
	if !c.Matched.IsZero() {
		c.UnitCost = totalCost.Div(c.Matched)
	}
	return c
}
