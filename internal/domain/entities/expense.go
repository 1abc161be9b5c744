package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the closed set of cost buckets a line item can belong to.
type ExpenseCategory string

const (
	CategoryAdquisicion ExpenseCategory = "adquisicion"
	CategoryReforma     ExpenseCategory = "reforma"
	CategorySeguridad   ExpenseCategory = "seguridad"
	CategoryOperativos  ExpenseCategory = "operativos"
	CategoryFinancieros ExpenseCategory = "financieros"
	CategoryLegales     ExpenseCategory = "legales"
	CategoryVenta       ExpenseCategory = "venta"
	CategoryOtros       ExpenseCategory = "otros"
)

// Categories lists every known category in display order.
func Categories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryAdquisicion, CategoryReforma, CategorySeguridad,
		CategoryOperativos, CategoryFinancieros, CategoryLegales,
		CategoryVenta, CategoryOtros,
	}
}

// ExpenseStatus distinguishes estimated figures from confirmed actuals.
// Informational: totals include both unless the caller filters explicitly.
type ExpenseStatus string

const (
	ExpenseEstimado   ExpenseStatus = "estimado"
	ExpenseConfirmado ExpenseStatus = "confirmado"
)

// ExpenseItem is one user-entered cost line. Every item belongs to exactly
// one category.
type ExpenseItem struct {
	Concepto string          `json:"concepto"`
	Category ExpenseCategory `json:"categoria"`
	Amount   decimal.Decimal `json:"importe"`
	Fecha    time.Time       `json:"fecha"`
	Status   ExpenseStatus   `json:"estado"`
}
