// Package expenses totals user-entered cost line items per category.
//
// Automatic acquisition costs (notaría, registro, ITP) are not line items:
// the profitability engine derives them from the escritura price.
package expenses

import (
	"inversure_flips/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals maps each expense category to the sum of its line items. Categories
// without items total zero.
type Totals map[entities.ExpenseCategory]decimal.Decimal

// Get returns the total for a category, zero when absent.
func (t Totals) Get(c entities.ExpenseCategory) decimal.Decimal {
	if v, ok := t[c]; ok {
		return v
	}
	return decimal.Zero
}

// AcquisitionSide sums every bucket that feeds the acquisition value, i.e.
// everything except sale costs.
func (t Totals) AcquisitionSide() decimal.Decimal {
	total := decimal.Zero
	for _, c := range entities.Categories() {
		if c == entities.CategoryVenta {
			continue
		}
		total = total.Add(t.Get(c))
	}
	return total
}

// Aggregate groups items by category and sums their amounts. Status
// (estimado/confirmado) does not filter: pending estimates count the same as
// confirmed actuals.
func Aggregate(items []entities.ExpenseItem) Totals {
	totals := Totals{}
	for _, item := range items {
		totals[item.Category] = totals[item.Category].Add(item.Amount)
	}
	return totals
}

// AggregateConfirmed sums only confirmed line items, for callers that report
// actuals separately from estimates.
func AggregateConfirmed(items []entities.ExpenseItem) Totals {
	totals := Totals{}
	for _, item := range items {
		if item.Status != entities.ExpenseConfirmado {
			continue
		}
		totals[item.Category] = totals[item.Category].Add(item.Amount)
	}
	return totals
}
