// Package schema normalizes the legacy free-form "datos" document into a
// typed, versioned record.
//
// Historically each estudio carried a JSON blob with dozens of optional keys
// whose naming drifted across versions. Normalization happens once at the
// boundary so the ambiguity never reaches the engine.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"inversure_flips/internal/domain/engine"
	"inversure_flips/internal/domain/entities"
	"inversure_flips/internal/domain/fields"
	"inversure_flips/internal/domain/money"

	"github.com/shopspring/decimal"
)

// CurrentVersion is the schema version Normalize migrates every document to.
const CurrentVersion = 2

// v1Aliases maps key spellings found in version-1 documents to their
// canonical names.
var v1Aliases = map[string]string{
	"precio_compra":       "precio_propiedad",
	"precio_venta":        "precio_venta_estimado",
	"otros_gastos_compra": "otros_adquisicion",
	"limpieza":            "limpieza_periodica",
	"comision_inversure":  "gastos_comercializacion",
	"gestoria":            "gestoria_compra",
}

// itemKeys maps canonical line-item keys to their expense category.
var itemKeys = map[string]entities.ExpenseCategory{
	"gestoria_compra":      entities.CategoryAdquisicion,
	"comisiones_captacion": entities.CategoryAdquisicion,
	"otros_adquisicion":    entities.CategoryAdquisicion,

	"obra_demoliciones":         entities.CategoryReforma,
	"obra_albanileria":          entities.CategoryReforma,
	"obra_fontaneria":           entities.CategoryReforma,
	"obra_electricidad":         entities.CategoryReforma,
	"obra_carpinteria_interior": entities.CategoryReforma,
	"obra_carpinteria_exterior": entities.CategoryReforma,
	"obra_cocina":               entities.CategoryReforma,
	"obra_banos":                entities.CategoryReforma,
	"obra_pintura":              entities.CategoryReforma,
	"obra_otros":                entities.CategoryReforma,

	"seguridad_cerrajero": entities.CategorySeguridad,
	"seguridad_alarma":    entities.CategorySeguridad,

	"comunidad":          entities.CategoryOperativos,
	"ibi":                entities.CategoryOperativos,
	"seguros":            entities.CategoryOperativos,
	"suministros":        entities.CategoryOperativos,
	"limpieza_periodica": entities.CategoryOperativos,
	"ocupas":             entities.CategoryOperativos,
	"otros_recurrentes":  entities.CategoryOperativos,

	"limpieza_inicial":    entities.CategoryOtros,
	"mobiliario":          entities.CategoryOtros,
	"otros_puesta_marcha": entities.CategoryOtros,

	"gestoria_venta":     entities.CategoryVenta,
	"otros_gastos_venta": entities.CategoryVenta,
}

// overrideKeys are the monetary keys that act as manual overrides of an
// automatic formula or default.
var overrideKeys = map[string]bool{
	"notaria":                 true,
	"registro":                true,
	"itp":                     true,
	"reforma":                 true,
	"gastos_comercializacion": true,
	"gastos_administracion":   true,
}

// valuationKeys feed the five valuation sources.
var valuationKeys = map[string]bool{
	"val_idealista":     true,
	"val_fotocasa":      true,
	"val_registradores": true,
	"val_casafari":      true,
	"val_tasacion":      true,
}

// scalarKeys are the remaining recognized monetary fields.
var scalarKeys = map[string]bool{
	"precio_propiedad":      true,
	"precio_venta_estimado": true,
	"valor_referencia":      true,
	"plusvalia":             true,
	"inmobiliaria":          true,
}

// Valuations carries the five valuation sources as three-state fields, so a
// submission can clear a stale source without touching the others.
type Valuations struct {
	Idealista     fields.Field[decimal.Decimal]
	Fotocasa      fields.Field[decimal.Decimal]
	Registradores fields.Field[decimal.Decimal]
	Casafari      fields.Field[decimal.Decimal]
	Tasacion      fields.Field[decimal.Decimal]
}

// Resolve flattens the fields into a plain valuation set; Unset and Clear
// both read as "not provided".
func (v Valuations) Resolve() entities.Valoraciones {
	return entities.Valoraciones{
		Idealista:     v.Idealista.Or(decimal.Zero),
		Fotocasa:      v.Fotocasa.Or(decimal.Zero),
		Registradores: v.Registradores.Or(decimal.Zero),
		Casafari:      v.Casafari.Or(decimal.Zero),
		Tasacion:      v.Tasacion.Or(decimal.Zero),
	}
}

// Document is the typed record a datos blob normalizes into. Every monetary
// field is three-state: absent keys stay Unset so a partial submission never
// touches persisted values, and present-but-blank keys become Clear.
type Document struct {
	Version int

	PrecioPropiedad     fields.Field[decimal.Decimal]
	PrecioVentaEstimado fields.Field[decimal.Decimal]
	ValorReferencia     fields.Field[decimal.Decimal]
	Plusvalia           fields.Field[decimal.Decimal]
	Inmobiliaria        fields.Field[decimal.Decimal]

	Notaria                fields.Field[decimal.Decimal]
	Registro               fields.Field[decimal.Decimal]
	ITP                    fields.Field[decimal.Decimal]
	Reforma                fields.Field[decimal.Decimal]
	GastosComercializacion fields.Field[decimal.Decimal]
	GastosAdministracion   fields.Field[decimal.Decimal]

	Valoraciones Valuations

	// Items holds the non-zero line items. ItemsSubmitted distinguishes a
	// submission that edits the item list (possibly emptying it) from one
	// that never mentions items.
	Items          []entities.ExpenseItem
	ItemsSubmitted bool
}

// Normalize migrates a raw datos document to the current schema version.
// Unrecognized keys and non-monetary values are reported as warnings, never
// as errors: the document stays usable whatever its vintage. A key that is
// present but blank normalizes to a Clear field, an absent key stays Unset.
func Normalize(raw map[string]any) (Document, []string) {
	doc := Document{Version: CurrentVersion}
	var warnings []string

	// Deterministic iteration keeps warnings and item order stable.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		canonical := key
		if alias, ok := v1Aliases[key]; ok {
			canonical = alias
		}

		switch {
		case canonical == "schema_version":
			continue
		case overrideKeys[canonical]:
			doc.setOverride(canonical, threeState(value))
		case valuationKeys[canonical]:
			doc.setValuation(canonical, threeState(value))
		case scalarKeys[canonical]:
			doc.setScalar(canonical, threeState(value))
		case itemKeys[canonical] != "":
			doc.ItemsSubmitted = true
			amount := money.ParseAny(value)
			if amount.IsZero() {
				continue
			}
			doc.Items = append(doc.Items, entities.ExpenseItem{
				Concepto: canonical,
				Category: itemKeys[canonical],
				Amount:   amount,
				Status:   entities.ExpenseEstimado,
			})
		default:
			warnings = append(warnings, fmt.Sprintf("datos: unknown key %q ignored", key))
		}
	}
	return doc, warnings
}

// threeState turns a submitted value into its field: blank is an explicit
// request to clear the persisted figure, anything else sets it.
func threeState(value any) fields.Field[decimal.Decimal] {
	if isBlank(value) {
		return fields.Cleared[decimal.Decimal]()
	}
	return fields.Value(money.ParseAny(value))
}

// EngineInputs maps the document onto the engine's input struct, resolving
// every three-state field against a blank record.
func (d Document) EngineInputs() engine.Inputs {
	return engine.Inputs{
		PrecioPropiedad:        d.PrecioPropiedad.Or(decimal.Zero),
		Notaria:                d.Notaria,
		Registro:               d.Registro,
		ITP:                    d.ITP,
		Reforma:                d.Reforma,
		Items:                  d.Items,
		Valoraciones:           d.Valoraciones.Resolve().Slice(),
		PrecioVentaManual:      d.PrecioVentaEstimado.Or(decimal.Zero),
		Plusvalia:              d.Plusvalia.Or(decimal.Zero),
		Inmobiliaria:           d.Inmobiliaria.Or(decimal.Zero),
		GastosComercializacion: d.GastosComercializacion,
		GastosAdministracion:   d.GastosAdministracion,
	}
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}

func (d *Document) setOverride(key string, f fields.Field[decimal.Decimal]) {
	switch key {
	case "notaria":
		d.Notaria = f
	case "registro":
		d.Registro = f
	case "itp":
		d.ITP = f
	case "reforma":
		d.Reforma = f
	case "gastos_comercializacion":
		d.GastosComercializacion = f
	case "gastos_administracion":
		d.GastosAdministracion = f
	}
}

func (d *Document) setValuation(key string, f fields.Field[decimal.Decimal]) {
	switch key {
	case "val_idealista":
		d.Valoraciones.Idealista = f
	case "val_fotocasa":
		d.Valoraciones.Fotocasa = f
	case "val_registradores":
		d.Valoraciones.Registradores = f
	case "val_casafari":
		d.Valoraciones.Casafari = f
	case "val_tasacion":
		d.Valoraciones.Tasacion = f
	}
}

func (d *Document) setScalar(key string, f fields.Field[decimal.Decimal]) {
	switch key {
	case "precio_propiedad":
		d.PrecioPropiedad = f
	case "precio_venta_estimado":
		d.PrecioVentaEstimado = f
	case "valor_referencia":
		d.ValorReferencia = f
	case "plusvalia":
		d.Plusvalia = f
	case "inmobiliaria":
		d.Inmobiliaria = f
	}
}
