package forms

import (
	"strings"
	"testing"

	"inversure_flips/internal/domain/money"

	"github.com/shopspring/decimal"
)

func TestSubmissionValidate(t *testing.T) {
	t.Run("known estado", func(t *testing.T) {
		s := Submission{Estado: "estudio"}
		if err := s.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty estado allowed", func(t *testing.T) {
		if err := (Submission{}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown estado rejected", func(t *testing.T) {
		s := Submission{Estado: "en_tramite"}
		if err := s.Validate(); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestClosedSets(t *testing.T) {
	if !ValidEstado("cerrado_positivo") || ValidEstado("abierto") {
		t.Fatal("estado closed set broken")
	}
	if !ValidCategory("reforma") || ValidCategory("marketing") {
		t.Fatal("category closed set broken")
	}
}

func TestDatosPreservesThreeWayDistinction(t *testing.T) {
	s := Submission{Fields: map[string]string{
		"notaria": "",       // present but blank: clear
		"itp":     "2.000€", // present with value: set
		// registro absent: don't touch
	}}
	datos := s.Datos()
	if v, ok := datos["notaria"]; !ok || v != "" {
		t.Fatalf("blank field must survive as empty string, got %v/%v", v, ok)
	}
	if _, ok := datos["registro"]; ok {
		t.Fatal("absent field must stay absent")
	}
	if datos["itp"] != "2.000€" {
		t.Fatalf("itp = %v", datos["itp"])
	}
	if !money.ParseAmount("2.000€").Equal(decimal.NewFromInt(2000)) {
		t.Fatal("itp submission must read as two thousand euros")
	}
}

func TestWarnings(t *testing.T) {
	s := Submission{Fields: map[string]string{
		"notaria":   "quinientos", // degrades to zero: warn
		"registro":  "0,00",       // legitimate zero: silent
		"itp":       "",           // blank: silent
		"plusvalia": "1.200,50",   // parses fine: silent
	}}
	warnings := s.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "notaria") {
		t.Fatalf("warnings = %v", warnings)
	}
}
