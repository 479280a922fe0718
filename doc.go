// Package finmas computes the tax liabilities of a multi-asset investment
// portfolio under the Brazilian individual-investor regime.
//
// Given a ledger of buy/sell movements and a stream of income
// distributions, it tracks cost basis per holding with first-in-first-out
// lot consumption, classifies each disposal as ordinary or same-day
// (day-trade), applies the per-asset-class tax regimes (flat rates,
// progressive brackets, monthly-exemption thresholds), and aggregates the
// resulting liabilities into DARF payment obligations due on the last
// business day of the following month.
//
// The engine is purely functional with respect to its inputs: the same
// ledger always produces identical records and obligations. Persistence,
// market data and rendering are collaborator concerns, see the brapi,
// renderer and cmd packages.
package finmas
