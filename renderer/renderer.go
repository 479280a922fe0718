// Package renderer turns assessments into markdown reports. It only
// formats: every number it prints was computed by the engine.
package renderer

import (
	"github.com/korgloriws/finmas"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// amount formats a non-negative money amount, zero renders as "-".
func amount(m finmas.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}

// percent formats a rate fraction for display, "0.175" becomes "17.5%".
// A zero rate renders as "-".
func percent(rate decimal.Decimal) string {
	if rate.IsZero() {
		return "-"
	}
	return rate.Mul(hundred).String() + "%"
}
