package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstudioStatus represents the lifecycle of a flip operation (estudio/proyecto).
//
// Domain notes:
//   - A record starts as a simulation or feasibility study, becomes operational
//     after committee approval and reservation/purchase, and freezes once sold
//     or closed.
//   - Closed variants lock the economic figures: the engine returns the stored
//     snapshot untouched instead of recalculating.
type EstudioStatus string

const (
	StatusSimulacion      EstudioStatus = "simulacion"
	StatusEstudio         EstudioStatus = "estudio"
	StatusReservado       EstudioStatus = "reservado"
	StatusComprado        EstudioStatus = "comprado"
	StatusOperacion       EstudioStatus = "operacion"
	StatusVendido         EstudioStatus = "vendido"
	StatusCerrado         EstudioStatus = "cerrado"
	StatusCerradoPositivo EstudioStatus = "cerrado_positivo"
	StatusDescartado      EstudioStatus = "descartado"
)

// transitions is the allowed lifecycle graph. Missing key means terminal.
var transitions = map[EstudioStatus][]EstudioStatus{
	StatusSimulacion: {StatusEstudio, StatusDescartado},
	StatusEstudio:    {StatusReservado, StatusComprado, StatusDescartado},
	StatusReservado:  {StatusComprado, StatusOperacion, StatusDescartado},
	StatusComprado:   {StatusOperacion, StatusVendido, StatusDescartado},
	StatusOperacion:  {StatusVendido, StatusCerrado, StatusCerradoPositivo, StatusDescartado},
	StatusVendido:    {StatusCerrado, StatusCerradoPositivo},
}

// Known reports whether s belongs to the closed status set. Unknown statuses
// are never gated: schema validation upstream owns rejecting them.
func (s EstudioStatus) Known() bool {
	switch s {
	case StatusSimulacion, StatusEstudio, StatusReservado, StatusComprado,
		StatusOperacion, StatusVendido, StatusCerrado, StatusCerradoPositivo,
		StatusDescartado:
		return true
	}
	return false
}

// StudyPhase reports whether sale-phase costs are still contractually unknown.
func (s EstudioStatus) StudyPhase() bool {
	return s == StatusSimulacion || s == StatusEstudio
}

// Closed reports whether the record's economic figures are frozen.
func (s EstudioStatus) Closed() bool {
	switch s {
	case StatusVendido, StatusCerrado, StatusCerradoPositivo, StatusDescartado:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle graph allows s -> next.
func (s EstudioStatus) CanTransitionTo(next EstudioStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valoraciones holds up to five independently sourced market-value estimates.
// A zero or negative amount means "not provided" for that source.
type Valoraciones struct {
	Idealista     decimal.Decimal `json:"val_idealista"`
	Fotocasa      decimal.Decimal `json:"val_fotocasa"`
	Registradores decimal.Decimal `json:"val_registradores"`
	Casafari      decimal.Decimal `json:"val_casafari"`
	Tasacion      decimal.Decimal `json:"val_tasacion"`
}

// Slice returns the valuations in source order.
func (v Valoraciones) Slice() []decimal.Decimal {
	return []decimal.Decimal{v.Idealista, v.Fotocasa, v.Registradores, v.Casafari, v.Tasacion}
}

// Comite captures the committee recommendation block; informational only.
type Comite struct {
	Recomendacion string `json:"recomendacion"`
	Observaciones string `json:"observaciones"`
}

// Estudio is a flip operation record through its whole lifecycle: the same
// entity backs a feasibility study and, after approval, the operational
// project.
type Estudio struct {
	ID           string        `json:"id"`
	Nombre       string        `json:"nombre"`
	Direccion    string        `json:"direccion"`
	RefCatastral string        `json:"ref_catastral"`
	Status       EstudioStatus `json:"status"`

	// Property and acquisition figures as last persisted. These act as
	// fallback defaults when a calculation request leaves a field untouched.
	PrecioPropiedad     decimal.Decimal `json:"precio_propiedad"`
	ValorReferencia     decimal.Decimal `json:"valor_referencia"`
	PrecioVentaEstimado decimal.Decimal `json:"precio_venta_estimado"`
	Notaria             decimal.Decimal `json:"notaria"`
	Registro            decimal.Decimal `json:"registro"`
	ITP                 decimal.Decimal `json:"itp"`
	Plusvalia           decimal.Decimal `json:"plusvalia"`
	Inmobiliaria        decimal.Decimal `json:"inmobiliaria"`

	// Manual flags mark acquisition costs the user typed by hand. Without
	// the flag a persisted figure is just the last automatic result and a
	// price change recomputes it.
	NotariaManual  bool `json:"notaria_manual"`
	RegistroManual bool `json:"registro_manual"`
	ITPManual      bool `json:"itp_manual"`

	// Management fees; non-zero persisted values are protected against the
	// 5% default once the record leaves the study phase.
	GastosComercializacion decimal.Decimal `json:"gastos_comercializacion"`
	GastosAdministracion   decimal.Decimal `json:"gastos_administracion"`

	Items        []ExpenseItem `json:"items"`
	Valoraciones Valoraciones  `json:"valoraciones"`
	Comite       Comite        `json:"comite"`

	// Snapshot is the current economic figures, produced by the engine and
	// persisted explicitly by the caller (calculate != save).
	Snapshot   *EstudioEconomico `json:"snapshot,omitempty"`
	SnapshotAt time.Time         `json:"snapshot_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
