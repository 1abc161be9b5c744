// Package forms adapts flat web-form submissions to the calculation boundary.
//
// The web layer owns the three-way field distinction: a key absent from the
// submission must not touch the persisted value, a key present but blank
// clears it, and a key with content sets it. A plain string map preserves
// exactly that, so the adapter forwards the raw strings and lets the schema
// package do the monetary parsing.
package forms

import (
	"fmt"

	"inversure_flips/internal/domain/money"

	"github.com/go-playground/validator/v10"
)

const estadoOneOf = "oneof=simulacion estudio reservado comprado operacion vendido cerrado cerrado_positivo descartado"

const categoriaOneOf = "oneof=adquisicion reforma seguridad operativos financieros legales venta otros"

var validate = validator.New()

// Submission is one form post against an estudio record.
type Submission struct {
	// Estado is the lifecycle tag the caller wants to act under; optional.
	Estado string `validate:"omitempty,oneof=simulacion estudio reservado comprado operacion vendido cerrado cerrado_positivo descartado"`

	// Fields holds every submitted key verbatim. Absent keys are simply not
	// in the map.
	Fields map[string]string
}

// Validate rejects tags outside the closed sets before the engine runs. The
// engine itself trusts its inputs; this is the validation layer the trust
// boundary assumes.
func (s Submission) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("form submission: %w", err)
	}
	return nil
}

// ValidCategory reports whether c belongs to the closed expense category set.
func ValidCategory(c string) bool {
	return validate.Var(c, categoriaOneOf) == nil
}

// ValidEstado reports whether e belongs to the closed lifecycle status set.
func ValidEstado(e string) bool {
	return validate.Var(e, estadoOneOf) == nil
}

// Datos converts the submission to the datos document the usecase consumes.
func (s Submission) Datos() map[string]any {
	datos := make(map[string]any, len(s.Fields))
	for k, v := range s.Fields {
		datos[k] = v
	}
	return datos
}

// Warnings lists the submitted fields whose non-blank value degraded to zero
// during monetary parsing. Degradation is not an error, but callers usually
// want it logged.
func (s Submission) Warnings() []string {
	var out []string
	for k, v := range s.Fields {
		if v == "" || !money.ParseAmount(v).IsZero() {
			continue
		}
		if looksNonZero(v) {
			out = append(out, fmt.Sprintf("field %q: value %q parsed as zero", k, v))
		}
	}
	return out
}

// looksNonZero reports whether a raw string that parsed to zero plausibly
// meant something else: it carries a non-zero digit, or no digit at all.
func looksNonZero(v string) bool {
	hasDigit := false
	for _, r := range v {
		if r >= '1' && r <= '9' {
			return true
		}
		if r == '0' {
			hasDigit = true
		}
	}
	return !hasDigit
}
