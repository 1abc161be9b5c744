package engine

import (
	"inversure_flips/internal/domain/entities"
	"inversure_flips/internal/domain/fields"

	"github.com/shopspring/decimal"
)

type fieldDecimal = fields.Field[decimal.Decimal]

// Inputs is the resolved field set the engine computes from. The web layer is
// responsible for the absent/empty/value three-way distinction; by the time a
// request reaches the engine, every override field is either Set (manual wins,
// the automatic rule is skipped) or not (the automatic rule applies).
type Inputs struct {
	// Escritura/contract price. Automatic costs derive from this figure only,
	// never from total spend.
	PrecioPropiedad decimal.Decimal

	// Manual overrides for the automatic acquisition costs.
	Notaria  fields.Field[decimal.Decimal]
	Registro fields.Field[decimal.Decimal]
	ITP      fields.Field[decimal.Decimal]

	// Manual override for the reforma bucket total; when Set it replaces the
	// sum of the reforma line items.
	Reforma fields.Field[decimal.Decimal]

	// Free-form cost line items, one category each.
	Items []entities.ExpenseItem

	// Market valuations and the manual sale-price override used when no
	// valuation is available.
	Valoraciones      []decimal.Decimal
	PrecioVentaManual decimal.Decimal

	// Sale-phase costs. Held at zero while the record is still in study.
	Plusvalia    decimal.Decimal
	Inmobiliaria decimal.Decimal

	// Management fee overrides and the last persisted fees. Persisted
	// non-zero fees are protected once the record leaves the study phase, so
	// a partial form re-submission never silently resets them to the default.
	GastosComercializacion     fields.Field[decimal.Decimal]
	GastosAdministracion       fields.Field[decimal.Decimal]
	PrevGastosComercializacion decimal.Decimal
	PrevGastosAdministracion   decimal.Decimal

	// Last persisted snapshot, returned unchanged for closed records.
	PreviousSnapshot *entities.EstudioEconomico
}
