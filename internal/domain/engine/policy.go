package engine

import "github.com/shopspring/decimal"

// Policy holds the rates and thresholds the engine applies. Defaults match
// the rules used project-wide; deployments override them via config.
type Policy struct {
	// Automatic acquisition costs, applied to the escritura price only.
	NotariaRate   decimal.Decimal
	NotariaSuelo  decimal.Decimal
	RegistroRate  decimal.Decimal
	RegistroSuelo decimal.Decimal
	ITPRate       decimal.Decimal

	// Management fee rate, charged on the base benefit when positive.
	GestionRate decimal.Decimal

	// Viability thresholds. ROIMinimo is the canonical criterion; the
	// absolute-benefit floor only participates when ViabilidadDual is on.
	ROIMinimo       decimal.Decimal
	BeneficioSuelo  decimal.Decimal
	ViabilidadDual  bool

	// PrecioMinimoConSueloAbsoluto switches the minimum viable sale price to
	// the report-path variant max(adquisición×(1+ROI), adquisición+suelo).
	PrecioMinimoConSueloAbsoluto bool
}

// DefaultPolicy returns the canonical rule set: 0.2% notaría/registro with a
// 500€ floor, 2% ITP, 5% management fees, 15% ROI bar and a 30.000€ benefit
// floor (dual criterion off).
func DefaultPolicy() Policy {
	return Policy{
		NotariaRate:    decimal.NewFromFloat(0.002),
		NotariaSuelo:   decimal.NewFromInt(500),
		RegistroRate:   decimal.NewFromFloat(0.002),
		RegistroSuelo:  decimal.NewFromInt(500),
		ITPRate:        decimal.NewFromFloat(0.02),
		GestionRate:    decimal.NewFromFloat(0.05),
		ROIMinimo:      decimal.NewFromInt(15),
		BeneficioSuelo: decimal.NewFromInt(30000),
	}
}
