package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// EstudioEconomico is the immutable result of one profitability calculation.
//
// Domain notes:
//   - Created fresh on every run and never mutated; whether it becomes the
//     record's current figures is the caller's decision (calculate != save).
//   - It is self-contained: reports render from the snapshot alone, never
//     from live recalculation.
//   - Currency fields are rounded to cents, percentages to 2 decimals and
//     RatioEuroBeneficio to 3 decimals. Threshold decisions (Viable) are taken
//     on unrounded values before rounding.
type EstudioEconomico struct {
	// Applied automatic acquisition costs (after override resolution).
	Notaria  decimal.Decimal `json:"notaria"`
	Registro decimal.Decimal `json:"registro"`
	ITP      decimal.Decimal `json:"itp"`

	ValorAdquisicion decimal.Decimal `json:"valor_adquisicion"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	GastosVenta      decimal.Decimal `json:"gastos_venta"`
	ValorTransmision decimal.Decimal `json:"valor_transmision"`

	BeneficioBruto decimal.Decimal `json:"beneficio_bruto"`

	GastosComercializacion decimal.Decimal `json:"gastos_comercializacion"`
	GastosAdministracion   decimal.Decimal `json:"gastos_administracion"`

	BeneficioNeto decimal.Decimal `json:"beneficio_neto"`
	ROI           decimal.Decimal `json:"roi"`
	Viable        bool            `json:"viable"`

	// Investor-facing KPIs.
	Margen             decimal.Decimal `json:"margen"`
	ColchonSeguridad   decimal.Decimal `json:"colchon_seguridad"`
	RatioEuroBeneficio decimal.Decimal `json:"ratio_euro_beneficio"`
	PrecioMinimoVenta  decimal.Decimal `json:"precio_minimo_venta"`
	PrecioBreakeven    decimal.Decimal `json:"precio_breakeven"`
}

// Fingerprint returns a content hash of the snapshot, used as the key of the
// content-addressed report cache. Equal snapshots hash equal.
func (s EstudioEconomico) Fingerprint() string {
	viable := "0"
	if s.Viable {
		viable = "1"
	}
	parts := []string{
		s.Notaria.String(), s.Registro.String(), s.ITP.String(),
		s.ValorAdquisicion.String(), s.PrecioVenta.String(),
		s.GastosVenta.String(), s.ValorTransmision.String(),
		s.BeneficioBruto.String(),
		s.GastosComercializacion.String(), s.GastosAdministracion.String(),
		s.BeneficioNeto.String(), s.ROI.String(), viable,
		s.Margen.String(), s.ColchonSeguridad.String(),
		s.RatioEuroBeneficio.String(), s.PrecioMinimoVenta.String(),
		s.PrecioBreakeven.String(),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
