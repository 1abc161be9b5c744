package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dd(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func TestMeanIgnoresNonPositive(t *testing.T) {
	// Zero and negative valuations count as "not provided".
	got := Mean(dd(200000, 0, 220000, -5, 210000))
	if !got.Equal(decimal.NewFromInt(210000)) {
		t.Fatalf("mean = %s, want 210000", got)
	}
}

func TestMeanEmpty(t *testing.T) {
	if got := Mean(nil); !got.IsZero() {
		t.Fatalf("mean of no valuations = %s, want 0", got)
	}
	if got := Mean(dd(0, 0, -1)); !got.IsZero() {
		t.Fatalf("mean of non-positive valuations = %s, want 0", got)
	}
}

func TestResolveSalePrice(t *testing.T) {
	t.Run("valuations beat the override", func(t *testing.T) {
		got := ResolveSalePrice(dd(200000, 220000, 210000), decimal.NewFromInt(999999))
		if !got.Equal(decimal.NewFromInt(210000)) {
			t.Fatalf("sale price = %s, want 210000", got)
		}
	})

	t.Run("override when no valuation", func(t *testing.T) {
		got := ResolveSalePrice(dd(0, 0, 0, 0, 0), decimal.NewFromInt(150000))
		if !got.Equal(decimal.NewFromInt(150000)) {
			t.Fatalf("sale price = %s, want 150000", got)
		}
	})

	t.Run("nothing known", func(t *testing.T) {
		if got := ResolveSalePrice(nil, decimal.Zero); !got.IsZero() {
			t.Fatalf("sale price = %s, want 0", got)
		}
	})

	t.Run("negative override ignored", func(t *testing.T) {
		if got := ResolveSalePrice(nil, decimal.NewFromInt(-5)); !got.IsZero() {
			t.Fatalf("sale price = %s, want 0", got)
		}
	})
}
