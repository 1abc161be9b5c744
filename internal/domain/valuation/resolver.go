// Package valuation turns independent market-value estimates into the
// representative sale price.
package valuation

import (
	"github.com/shopspring/decimal"
)

// Mean returns the arithmetic mean of the strictly-positive valuations, or
// zero when none is positive. Zero and negative amounts mean "not provided".
func Mean(valuations []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	count := int64(0)
	for _, v := range valuations {
		if v.IsPositive() {
			total = total.Add(v)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}

// ResolveSalePrice picks the sale price for a property.
//
// Market valuation beats the user override whenever at least one valuation is
// known; the override only applies to properties with no market comparables.
func ResolveSalePrice(valuations []decimal.Decimal, manualOverride decimal.Decimal) decimal.Decimal {
	if mean := Mean(valuations); mean.IsPositive() {
		return mean
	}
	if manualOverride.IsPositive() {
		return manualOverride
	}
	return decimal.Zero
}
