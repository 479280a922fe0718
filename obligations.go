package finmas

import (
	"sort"
	"time"
)

// ObligationStatus is derived relative to a reference "today".
type ObligationStatus int

const (
	Pending ObligationStatus = iota
	DueSoon                  // due within the next 7 days
	DueToday
	Overdue
)

func (s ObligationStatus) String() string {
	switch s {
	case Overdue:
		return "overdue"
	case DueToday:
		return "due-today"
	case DueSoon:
		return "due-soon"
	default:
		return "pending"
	}
}

// TaxObligation aggregates the tax due for one payment month. The payment
// instrument is due on the last business day of the month following the
// taxable event.
type TaxObligation struct {
	Year    int
	Month   time.Month // due month
	DueDate Date       // last business day of the due month
	Total   Money
	Records []TaxRecord // constituent records, in disposal date order
}

// Status derives the obligation status relative to the given reference date.
func (o TaxObligation) Status(today Date) ObligationStatus {
	switch {
	case o.DueDate.Before(today):
		return Overdue
	case o.DueDate == today:
		return DueToday
	case !o.DueDate.After(today.Add(7)):
		return DueSoon
	default:
		return Pending
	}
}

// dueDate computes the payment due date for a disposal date: the last
// business day of the following month, December wrapping to January.
func dueDate(disposal Date) Date {
	firstOfDueMonth := NewDate(disposal.Year(), disposal.Month()+1, 1)
	return firstOfDueMonth.LastBusinessDay()
}

// AggregateObligations groups taxable records by due month and returns the
// obligations sorted by due date ascending. Records with zero or exempt tax
// are excluded from obligations but retained in reporting totals.
func AggregateObligations(records []TaxRecord) []TaxObligation {
	byDue := make(map[Date]*TaxObligation)
	for _, r := range records {
		if !r.Taxable() {
			continue
		}
		due := dueDate(r.Disposal.Date)
		o, ok := byDue[due]
		if !ok {
			o = &TaxObligation{Year: due.Year(), Month: due.Month(), DueDate: due}
			byDue[due] = o
		}
		o.Total = o.Total.Add(r.Tax)
		o.Records = append(o.Records, r)
	}

	obligations := make([]TaxObligation, 0, len(byDue))
	for _, o := range byDue {
		obligations = append(obligations, *o)
	}
	sort.Slice(obligations, func(i, j int) bool {
		return obligations[i].DueDate.Before(obligations[j].DueDate)
	})
	return obligations
}
