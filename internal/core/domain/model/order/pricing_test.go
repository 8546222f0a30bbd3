package order_test

import (
	"testing"

	"rugops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestCleaningCost(t *testing.T) {
	t.Run("should apply the rate table per material", func(t *testing.T) {
		cases := []struct {
			material order.Material
			want     string
		}{
			{order.Wool, "120"},
			{order.Cotton, "120"},
			{order.Silk, "300"},
			{order.Synthetic, "90"},
			{order.Blend, "90"},
			{order.MaterialUnknown, "120"},
		}

		// 2 x 3 = 6 unit area
		for _, tc := range cases {
			cost := order.CleaningCost("2", "3", tc.material)
			assert.Equal(t, tc.want, cost.String(), "material %s", tc.material)
		}
	})

	t.Run("should round to two decimal places", func(t *testing.T) {
		// 1.33 * 2.77 * 20 = 73.682
		cost := order.CleaningCost("1.33", "2.77", order.Wool)

		assert.Equal(t, "73.68", cost.StringFixed(2))
	})

	t.Run("should price unspecified material at the default rate", func(t *testing.T) {
		cost := order.CleaningCost("2", "2", order.MaterialUnspecified)

		assert.Equal(t, "80", cost.String())
	})

	t.Run("should be zero when a dimension does not parse", func(t *testing.T) {
		assert.True(t, order.CleaningCost("big", "3", order.Wool).IsZero())
		assert.True(t, order.CleaningCost("2", "", order.Wool).IsZero())
		assert.True(t, order.CleaningCost("", "", order.Wool).IsZero())
	})

	t.Run("should be zero when a dimension is not positive", func(t *testing.T) {
		assert.True(t, order.CleaningCost("0", "3", order.Wool).IsZero())
		assert.True(t, order.CleaningCost("2", "-1", order.Wool).IsZero())
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		cost := order.CleaningCost(" 2 ", "3", order.Silk)

		assert.Equal(t, "300", cost.String())
	})
}

func TestMaterialParsing(t *testing.T) {
	t.Run("should parse every listed material", func(t *testing.T) {
		for _, name := range []string{"Synthetic", "Wool", "Silk", "Cotton", "Blend", "Unknown"} {
			material, err := order.ParseMaterial(name)

			assert.NoError(t, err)
			assert.Equal(t, name, material.String())
		}
	})

	t.Run("should reject unrecognized materials", func(t *testing.T) {
		_, err := order.ParseMaterial("Polyester")

		assert.Error(t, err)
	})

	t.Run("should map empty to unspecified", func(t *testing.T) {
		material, err := order.ParseMaterial("")

		assert.NoError(t, err)
		assert.False(t, material.IsSpecified())
	})

	t.Run("MaterialOrUnknown should fall back for legacy values", func(t *testing.T) {
		assert.Equal(t, order.MaterialUnknown, order.MaterialOrUnknown("Polyester"))
		assert.Equal(t, order.Wool, order.MaterialOrUnknown("Wool"))
	})
}

func TestConditionParsing(t *testing.T) {
	t.Run("should parse every listed condition", func(t *testing.T) {
		for _, name := range []string{"Good", "Stained", "Worn", "Damaged", "Heavily Soiled"} {
			condition, err := order.ParseCondition(name)

			assert.NoError(t, err)
			assert.Equal(t, name, condition.String())
		}
	})

	t.Run("worn and damaged should need repair", func(t *testing.T) {
		assert.True(t, order.Worn.NeedsRepair())
		assert.True(t, order.Damaged.NeedsRepair())
		assert.False(t, order.Good.NeedsRepair())
		assert.False(t, order.Stained.NeedsRepair())
		assert.False(t, order.HeavilySoiled.NeedsRepair())
	})

	t.Run("should reject unrecognized conditions", func(t *testing.T) {
		_, err := order.ParseCondition("Pristine")

		assert.Error(t, err)
	})
}
