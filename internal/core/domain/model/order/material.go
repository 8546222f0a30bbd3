package order

import (
	"fmt"

	"rugops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Material is the rug material recorded during measurement. Each material
// carries the cleaning rate (currency units per unit area) used to derive
// an item's cleaning cost.
//
// The zero value means the material has not been recorded yet; items start
// without one and receive it with their measurements.
type Material int

const (
	// MaterialUnspecified means no material has been recorded for the item.
	MaterialUnspecified Material = iota

	Synthetic
	Wool
	Silk
	Cotton
	Blend

	// MaterialUnknown is an explicit "could not identify" choice, distinct
	// from MaterialUnspecified. It prices at the default rate.
	MaterialUnknown
)

// defaultRate applies to MaterialUnknown and any value without its own
// entry in the rate table.
var defaultRate = decimal.NewFromInt(20)

func getMaterialStrings() map[Material]string {
	return map[Material]string{
		Synthetic:       "Synthetic",
		Wool:            "Wool",
		Silk:            "Silk",
		Cotton:          "Cotton",
		Blend:           "Blend",
		MaterialUnknown: "Unknown",
	}
}

// ParseMaterial converts the display form into a Material. The empty string
// maps to MaterialUnspecified; any other unrecognized value is rejected.
func ParseMaterial(value string) (Material, error) {
	if value == "" {
		return MaterialUnspecified, nil
	}
	for material, str := range getMaterialStrings() {
		if str == value {
			return material, nil
		}
	}
	return MaterialUnspecified, errs.NewValueIsInvalidErrorWithCause("material",
		fmt.Errorf("%q is not a valid material", value))
}

// MaterialOrUnknown converts a possibly legacy value into a Material,
// falling back to MaterialUnknown for anything unrecognized. Used when
// migrating external snapshots whose material field was free text.
func MaterialOrUnknown(value string) Material {
	material, err := ParseMaterial(value)
	if err != nil {
		return MaterialUnknown
	}
	return material
}

// Rate returns the cleaning rate per unit area for the material.
func (m Material) Rate() decimal.Decimal {
	switch m {
	case Wool, Cotton:
		return decimal.NewFromInt(20)
	case Silk:
		return decimal.NewFromInt(50)
	case Synthetic, Blend:
		return decimal.NewFromInt(15)
	default:
		return defaultRate
	}
}

// IsSpecified reports whether a material has been recorded.
func (m Material) IsSpecified() bool {
	return m != MaterialUnspecified
}

// String returns the display form, or the empty string when unspecified.
func (m Material) String() string {
	if str, ok := getMaterialStrings()[m]; ok {
		return str
	}
	return ""
}
