package order

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CleaningCost derives an item's cleaning cost from its measurements:
// round(length * width * rate(material), 2).
//
// Length and width are stored as free-text entries. The cost is computed
// only when both parse as positive numbers; otherwise it is zero, which
// means "not yet priced" rather than an error.
func CleaningCost(length, width string, material Material) decimal.Decimal {
	l, errL := strconv.ParseFloat(strings.TrimSpace(length), 64)
	w, errW := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if errL != nil || errW != nil || l <= 0 || w <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromFloat(l).
		Mul(decimal.NewFromFloat(w)).
		Mul(material.Rate()).
		Round(2)
}
