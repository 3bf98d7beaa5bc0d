package bill

import "github.com/shopspring/decimal"

const (
	// maxScale bounds the exponent of parsed numbers. Larger exponents
	// make decimal rescaling allocate without limit.
	maxScale = 18
	// maxDigits bounds the coefficient of parsed numbers.
	maxDigits = 30
)

// parseNumber parses a decimal literal within the supported range.
func parseNumber(text string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp < -maxScale || exp > maxScale {
		return decimal.Decimal{}, false
	}
	if d.NumDigits() > maxDigits {
		return decimal.Decimal{}, false
	}
	return d, true
}
