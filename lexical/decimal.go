package lexical

import (
	"github.com/cockroachdb/apd/v3"
)

const (
	// DecimalScale is the maximum number of fractional digits kept by ParseDecimal
	DecimalScale = 28
	// DecimalPrecision is the maximum number of significant digits kept by ParseDecimal
	DecimalPrecision = 29
)

// MaxDecimal is the largest magnitude accepted by ParseDecimal (2^96 - 1)
var MaxDecimal = mustDecimal("79228162514264337593543950335")

var (
	precisionContext = roundingContext(DecimalPrecision)
	scaleContext     = roundingContext(DecimalPrecision + DecimalScale)
)

// ParseDecimal parses xsd:decimal: an optional sign, digits and an optional fraction, no exponent.
// Values are rounded half to even to DecimalPrecision significant and DecimalScale fractional digits.
func ParseDecimal(s string) (apd.Decimal, error) {
	var result apd.Decimal
	text := Trim(s)
	if !isNumberLiteral(text, false) {
		return result, syntaxError("decimal", s)
	}
	if _, _, err := result.SetString(text); err != nil {
		return apd.Decimal{}, syntaxError("decimal", s)
	}
	if _, err := precisionContext.Round(&result, &result); err != nil {
		return apd.Decimal{}, rangeError("decimal", s)
	}
	var magnitude apd.Decimal
	if magnitude.Abs(&result).Cmp(MaxDecimal) > 0 {
		return apd.Decimal{}, rangeError("decimal", s)
	}
	if result.Exponent < -DecimalScale {
		if _, err := scaleContext.Quantize(&result, &result, -DecimalScale); err != nil {
			return apd.Decimal{}, rangeError("decimal", s)
		}
	}
	return result, nil
}

func roundingContext(precision uint32) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}

func mustDecimal(literal string) *apd.Decimal {
	d, _, err := apd.NewFromString(literal)
	if err != nil {
		panic(err)
	}
	return d
}
