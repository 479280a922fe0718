package finmas

import (
	"errors"
	"fmt"
)

// Direction is a typed string for the side of an executed movement.
type Direction string

const (
	Buy  Direction = "buy"
	Sell Direction = "sell"
)

// Movement is an executed buy or sell of a holding. Movements are
// immutable once recorded and supplied externally, ordered by date.
type Movement struct {
	Holding   string    `json:"holding"`
	Direction Direction `json:"direction"`
	Quantity  Quantity  `json:"quantity"`
	UnitPrice Money     `json:"unitPrice"`
	Date      Date      `json:"date"`
}

// NewMovement creates a new Movement.
func NewMovement(day Date, holding string, direction Direction, quantity Quantity, unitPrice Money) Movement {
	return Movement{
		Holding:   holding,
		Direction: direction,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Date:      day,
	}
}

// Amount returns the total traded amount (quantity times unit price).
func (m Movement) Amount() Money { return m.UnitPrice.Mul(m.Quantity) }

// Validate checks the movement for correctness. A failing movement is
// excluded from computation, never aborting the batch.
func (m Movement) Validate() error {
	if m.Holding == "" {
		return errors.New("movement holding is missing")
	}
	if m.Direction != Buy && m.Direction != Sell {
		return fmt.Errorf("movement direction must be %q or %q, got %q", Buy, Sell, m.Direction)
	}
	if !m.Quantity.IsPositive() {
		return fmt.Errorf("movement quantity must be positive, got %s", m.Quantity)
	}
	if !m.UnitPrice.IsPositive() {
		return fmt.Errorf("movement unit price must be positive, got %v", m.UnitPrice)
	}
	if m.Date.IsZero() {
		return errors.New("movement date is missing")
	}
	return nil
}

// Distribution is an income distribution (dividend, interest on equity,
// fund income) received for a holding.
type Distribution struct {
	Holding string `json:"holding"`
	Date    Date   `json:"date"`
	Gross   Money  `json:"gross"`
}

// NewDistribution creates a new Distribution.
func NewDistribution(day Date, holding string, gross Money) Distribution {
	return Distribution{Holding: holding, Date: day, Gross: gross}
}

// Validate checks the distribution for correctness.
func (d Distribution) Validate() error {
	if d.Holding == "" {
		return errors.New("distribution holding is missing")
	}
	if !d.Gross.IsPositive() {
		return fmt.Errorf("distribution gross amount must be positive, got %v", d.Gross)
	}
	if d.Date.IsZero() {
		return errors.New("distribution date is missing")
	}
	return nil
}

// HoldingMeta is the optional per-holding metadata supplied by the
// portfolio collaborator. Either field may be absent.
type HoldingMeta struct {
	Type    string `json:"type,omitempty"`    // explicit type tag, e.g. "fii", "bdr"
	Indexer string `json:"indexer,omitempty"` // interest rate indexer, e.g. "CDI", "IPCA"
}

// SkippedItem records an input excluded from computation and why.
// Totals computed from a ledger with skipped items are a lower bound.
type SkippedItem struct {
	Holding string
	Date    Date
	Reason  string
}
