package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a raw monetary form value into a fixed-point decimal.
//
// Accepted inputs:
//   - Spanish format: "12.345,67 €" (dot thousands, comma decimal, optional
//     euro suffix, optional non-breaking spaces)
//   - Spanish without decimals: "2.000" is two thousand, "1.234.567" likewise
//   - machine format: "12345.67" (the dot reads as a decimal point only when
//     it is not followed by exactly three digits)
//   - empty / blank strings
//
// Normalization is total: any value that cannot be parsed yields exact zero.
// Forms routinely submit blank or partially-filled fields, so the engine must
// stay defined for every input.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	replacer := strings.NewReplacer("€", "", "EUR", "", " ", "", " ", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return decimal.Zero
	}

	if strings.Contains(s, ",") {
		// Spanish locale: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if strings.Count(s, ".") > 1 {
		// More than one dot and no comma: "1.234.567".
		s = strings.ReplaceAll(s, ".", "")
	} else if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 == 3 {
		// A lone dot with a three-digit group and no comma is a Spanish
		// thousands separator: "2.000" is two thousand, not two.
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAny normalizes a value of unknown dynamic type, as found in the legacy
// free-form datos document. Unsupported types yield zero.
func ParseAny(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case string:
		return ParseAmount(x)
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

// RoundCurrency rounds to cents.
func RoundCurrency(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// RoundPercent rounds a percentage to 2 decimals.
func RoundPercent(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// RoundRatio rounds the euro-benefit ratio to 3 decimals.
func RoundRatio(d decimal.Decimal) decimal.Decimal { return d.Round(3) }

// Percent returns num/den*100, or zero when den is zero.
func Percent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(decimal.NewFromInt(100))
}

// Ratio returns num/den, or zero when den is zero.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// Sum adds a sequence of decimals.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
