package finmas

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger holds the raw movement and distribution streams for a portfolio.
//
// In a Ledger movements are always in chronological order. Malformed
// records are diverted to the Skipped list and reported, they never abort
// a computation.
type Ledger struct {
	movements     []Movement
	distributions []Distribution
	meta          map[string]HoldingMeta // index holding metadata by holding identifier
	skipped       []SkippedItem
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		movements:     make([]Movement, 0),
		distributions: make([]Distribution, 0),
		meta:          make(map[string]HoldingMeta),
	}
}

// Append appends movements to this ledger and maintains the chronological
// order. Invalid movements are recorded as skipped.
func (l *Ledger) Append(ms ...Movement) {
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			l.skipped = append(l.skipped, SkippedItem{Holding: m.Holding, Date: m.Date, Reason: err.Error()})
			continue
		}
		l.movements = append(l.movements, m)
	}
	l.stableSort()
}

// AppendDistribution appends distributions to the ledger. Invalid
// distributions are recorded as skipped.
func (l *Ledger) AppendDistribution(ds ...Distribution) {
	for _, d := range ds {
		if err := d.Validate(); err != nil {
			l.skipped = append(l.skipped, SkippedItem{Holding: d.Holding, Date: d.Date, Reason: err.Error()})
			continue
		}
		l.distributions = append(l.distributions, d)
	}
	sort.SliceStable(l.distributions, func(i, j int) bool {
		return l.distributions[i].Date.Before(l.distributions[j].Date)
	})
}

// SetMeta records the holding metadata supplied by the portfolio collaborator.
func (l *Ledger) SetMeta(holding string, meta HoldingMeta) {
	l.meta[holding] = meta
}

// Meta returns the metadata for a holding, if any was supplied.
func (l *Ledger) Meta(holding string) (HoldingMeta, bool) {
	m, ok := l.meta[holding]
	return m, ok
}

// Skipped returns the inputs excluded from computation.
func (l *Ledger) Skipped() []SkippedItem { return l.skipped }

// stableSort sorts the ledger by movement date. The sort is stable, meaning
// movements on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.Before(l.movements[j].Date)
	})
}

// Movements returns an iterator over all movements in chronological order.
func (l *Ledger) Movements() iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
		for i, m := range l.movements {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Distributions returns an iterator over all distributions in chronological order.
func (l *Ledger) Distributions() iter.Seq2[int, Distribution] {
	return func(yield func(int, Distribution) bool) {
		for i, d := range l.distributions {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Holdings iterates over all holding identifiers seen in the ledger, in
// stable sorted order.
func (l *Ledger) Holdings() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, m := range l.movements {
			visited[m.Holding] = struct{}{}
		}
		for _, d := range l.distributions {
			visited[d.Holding] = struct{}{}
		}
		holdings := slices.Collect(maps.Keys(visited))
		slices.Sort(holdings)
		for _, h := range holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// HoldingMovements returns an iterator over movements of a specific holding
// up to and including a given date. The ledger is sorted by date.
func (l *Ledger) HoldingMovements(holding string, max Date) iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
		for i, m := range l.movements {
			if m.Date.After(max) {
				// The ledger is sorted by date, so it's safe to return.
				return
			}
			if m.Holding == holding {
				if !yield(i, m) {
					return
				}
			}
		}
	}
}

// HasBuyOn reports whether any buy movement for the holding exists on the
// given calendar date. This is the day-trade test.
func (l *Ledger) HasBuyOn(holding string, on Date) bool {
	for _, m := range l.HoldingMovements(holding, on) {
		if m.Direction == Buy && m.Date == on {
			return true
		}
	}
	return false
}

// EarliestBuy returns the first buy movement of the holding dated on or
// before max. It returns false if there is none.
func (l *Ledger) EarliestBuy(holding string, max Date) (Movement, bool) {
	for _, m := range l.HoldingMovements(holding, max) {
		if m.Direction == Buy {
			return m, true
		}
	}
	return Movement{}, false
}

// AverageBuyCost returns the quantity-weighted average unit cost of all buy
// movements of the holding dated on or before max. It returns false when
// there is no buy history at all.
func (l *Ledger) AverageBuyCost(holding string, max Date) (Money, bool) {
	var total Money
	var qty Quantity
	for _, m := range l.HoldingMovements(holding, max) {
		if m.Direction == Buy {
			total = total.Add(m.Amount())
			qty = qty.Add(m.Quantity)
		}
	}
	if qty.IsZero() {
		return Money{}, false
	}
	return total.Div(qty), true
}

// OldestMovementDate returns the date of the earliest movement in the ledger.
func (l *Ledger) OldestMovementDate() Date {
	if len(l.movements) == 0 {
		return Date{}
	}
	return l.movements[0].Date
}

// NewestMovementDate returns the date of the latest movement in the ledger.
func (l *Ledger) NewestMovementDate() Date {
	if len(l.movements) == 0 {
		return Date{}
	}
	return l.movements[len(l.movements)-1].Date
}
