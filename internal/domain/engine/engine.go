// Package engine computes the profitability figures of a flip operation.
//
// The engine is a pure synchronous computation: no I/O, no clock, no stored
// state. Computing a snapshot never mutates anything; persisting it is the
// caller's separate decision.
package engine

import (
	"inversure_flips/internal/domain/entities"
	"inversure_flips/internal/domain/expenses"
	"inversure_flips/internal/domain/money"
	"inversure_flips/internal/domain/valuation"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Compute runs the calculation steps in fixed order and returns a fresh
// snapshot.
//
// Lifecycle gating: for a closed status the steps do not execute at all; the
// previously persisted snapshot is returned unchanged (or a zero snapshot if
// none exists). Unknown statuses get no state-specific gating.
func Compute(in Inputs, status entities.EstudioStatus, pol Policy) entities.EstudioEconomico {
	if status.Closed() {
		if in.PreviousSnapshot != nil {
			return *in.PreviousSnapshot
		}
		return entities.EstudioEconomico{}
	}

	precio := in.PrecioPropiedad

	// 1. Automatic acquisition costs; an explicit override always wins,
	// anything else (unset or cleared) falls back to the formula.
	notaria := override(in.Notaria, autoFee(precio, pol.NotariaRate, pol.NotariaSuelo))
	registro := override(in.Registro, autoFee(precio, pol.RegistroRate, pol.RegistroSuelo))
	itp := override(in.ITP, precio.Mul(pol.ITPRate))

	// 2. Acquisition value: escritura price, acquisition costs, setup
	// investment, itemized obra and seguridad costs, recurring holding
	// costs. Sale costs are excluded.
	totals := expenses.Aggregate(in.Items)
	reformaTotal := override(in.Reforma, totals.Get(entities.CategoryReforma))
	itemTotal := totals.AcquisitionSide().
		Sub(totals.Get(entities.CategoryReforma)).
		Add(reformaTotal)
	valorAdquisicion := money.Sum(precio, notaria, registro, itp, itemTotal)

	// 3. Sale price from the market valuations.
	precioVenta := valuation.ResolveSalePrice(in.Valoraciones, in.PrecioVentaManual)

	// 4. Sale-phase costs are not contractually known during the study.
	gastosVenta := decimal.Zero
	if !status.StudyPhase() {
		gastosVenta = money.Sum(in.Plusvalia, in.Inmobiliaria, totals.Get(entities.CategoryVenta))
	}

	// 5-6. Net transmission value and base benefit.
	valorTransmision := precioVenta.Sub(gastosVenta)
	beneficioBruto := valorTransmision.Sub(valorAdquisicion)

	// 7. Management fees. No fee is charged on a loss.
	comercializacion := resolveFee(in.GastosComercializacion, in.PrevGastosComercializacion, beneficioBruto, status, pol)
	administracion := resolveFee(in.GastosAdministracion, in.PrevGastosAdministracion, beneficioBruto, status, pol)

	// 8-9. Net benefit and ROI.
	beneficioNeto := beneficioBruto.Sub(comercializacion).Sub(administracion)
	roi := money.Percent(beneficioNeto, valorAdquisicion)

	// 10. Viability, decided on the unrounded ROI.
	viable := roi.GreaterThanOrEqual(pol.ROIMinimo)
	if !viable && pol.ViabilidadDual {
		viable = beneficioNeto.GreaterThanOrEqual(pol.BeneficioSuelo)
	}

	// 11. Investor KPIs. The safety cushion is an explicit alias of margin.
	margen := money.Percent(beneficioNeto, precioVenta)
	ratio := money.Ratio(beneficioNeto, valorAdquisicion)
	precioMinimo := minimumSalePrice(valorAdquisicion, gastosVenta, pol)

	return entities.EstudioEconomico{
		Notaria:                money.RoundCurrency(notaria),
		Registro:               money.RoundCurrency(registro),
		ITP:                    money.RoundCurrency(itp),
		ValorAdquisicion:       money.RoundCurrency(valorAdquisicion),
		PrecioVenta:            money.RoundCurrency(precioVenta),
		GastosVenta:            money.RoundCurrency(gastosVenta),
		ValorTransmision:       money.RoundCurrency(valorTransmision),
		BeneficioBruto:         money.RoundCurrency(beneficioBruto),
		GastosComercializacion: money.RoundCurrency(comercializacion),
		GastosAdministracion:   money.RoundCurrency(administracion),
		BeneficioNeto:          money.RoundCurrency(beneficioNeto),
		ROI:                    money.RoundPercent(roi),
		Viable:                 viable,
		Margen:                 money.RoundPercent(margen),
		ColchonSeguridad:       money.RoundPercent(margen),
		RatioEuroBeneficio:     money.RoundRatio(ratio),
		PrecioMinimoVenta:      money.RoundCurrency(precioMinimo),
		PrecioBreakeven:        money.RoundCurrency(valorAdquisicion),
	}
}

// override resolves a manual-wins field against its automatic value.
func override(f fieldDecimal, auto decimal.Decimal) decimal.Decimal {
	if v, ok := f.Get(); ok {
		return v
	}
	return auto
}

// autoFee applies rate to the escritura price with a minimum floor. A record
// with no escritura price gets no automatic fee.
func autoFee(precio, rate, suelo decimal.Decimal) decimal.Decimal {
	if !precio.IsPositive() {
		return decimal.Zero
	}
	fee := precio.Mul(rate)
	if fee.LessThan(suelo) {
		return suelo
	}
	return fee
}

// resolveFee picks a management fee:
//   - base benefit <= 0 forces the fee to zero, overrides included
//   - an explicit override wins over everything else
//   - a non-zero persisted fee is protected outside the study phase
//   - otherwise the default rate of the base benefit applies
func resolveFee(f fieldDecimal, prev, base decimal.Decimal, status entities.EstudioStatus, pol Policy) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	if v, ok := f.Get(); ok {
		return v
	}
	if !status.StudyPhase() && prev.IsPositive() {
		return prev
	}
	return base.Mul(pol.GestionRate)
}

// minimumSalePrice is the price at which ROI hits exactly the viability bar.
// The report-path variant additionally floors it at adquisición + the
// absolute benefit threshold.
func minimumSalePrice(adquisicion, gastosVenta decimal.Decimal, pol Policy) decimal.Decimal {
	markup := adquisicion.Mul(pol.ROIMinimo.Div(hundred))
	if pol.PrecioMinimoConSueloAbsoluto {
		relative := adquisicion.Add(markup)
		absolute := adquisicion.Add(pol.BeneficioSuelo)
		if absolute.GreaterThan(relative) {
			return absolute
		}
		return relative
	}
	return money.Sum(adquisicion, gastosVenta, markup)
}
