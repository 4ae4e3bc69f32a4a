package fulfillment_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions_Validate(t *testing.T) {
	t.Run("should accept positive dimensions", func(t *testing.T) {
		d := fulfillment.Dimensions{Length: 10, Width: 5, Height: 2}

		require.NoError(t, d.Validate())
	})

	t.Run("should accept zero dimensions", func(t *testing.T) {
		var d fulfillment.Dimensions

		require.NoError(t, d.Validate())
	})

	t.Run("should reject negative side", func(t *testing.T) {
		d := fulfillment.Dimensions{Length: 10, Width: -5, Height: 2}

		err := d.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "negative side")
	})
}

func TestDimensions_Volume(t *testing.T) {
	t.Run("should multiply all sides", func(t *testing.T) {
		d := fulfillment.Dimensions{Length: 10, Width: 5, Height: 2}

		assert.InDelta(t, 100.0, d.Volume(), 0.0001)
	})

	t.Run("should return zero for zero value", func(t *testing.T) {
		var d fulfillment.Dimensions

		assert.Zero(t, d.Volume())
	})
}

func TestNewItem(t *testing.T) {
	validDimensions := fulfillment.Dimensions{Length: 12, Width: 8, Height: 4}

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := fulfillment.NewItem("SKU-100", 3, validDimensions, 1.5, true, 25.0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "SKU-100", item.ProductID())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, validDimensions, item.Dimensions())
		assert.InDelta(t, 1.5, item.Weight(), 0.0001)
		assert.True(t, item.Fragile())
		assert.InDelta(t, 25.0, item.Value(), 0.0001)
	})

	t.Run("should fail with empty product ID", func(t *testing.T) {
		_, err := fulfillment.NewItem("", 1, validDimensions, 1, false, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productID")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := fulfillment.NewItem("SKU-100", 0, validDimensions, 1, false, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := fulfillment.NewItem("SKU-100", -2, validDimensions, 1, false, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should fail with negative weight", func(t *testing.T) {
		_, err := fulfillment.NewItem("SKU-100", 1, validDimensions, -0.5, false, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should fail with negative value", func(t *testing.T) {
		_, err := fulfillment.NewItem("SKU-100", 1, validDimensions, 1, false, -10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value")
	})

	t.Run("should fail with negative dimension side", func(t *testing.T) {
		bad := fulfillment.Dimensions{Length: -1, Width: 8, Height: 4}

		_, err := fulfillment.NewItem("SKU-100", 1, bad, 1, false, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dimensions")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := fulfillment.NewItem("", 0, validDimensions, -1, false, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productID")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "value")
	})

	t.Run("should accept zero weight and value", func(t *testing.T) {
		item, err := fulfillment.NewItem("SKU-100", 1, validDimensions, 0, false, 0)

		require.NoError(t, err)
		assert.Zero(t, item.Weight())
		assert.Zero(t, item.Value())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for zero value item", func(t *testing.T) {
		var item fulfillment.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, fulfillment.ErrItemIsNotConstructed, err)
	})
}

func TestItem_Totals(t *testing.T) {
	dimensions := fulfillment.Dimensions{Length: 10, Width: 5, Height: 2}
	item, err := fulfillment.NewItem("SKU-100", 4, dimensions, 1.5, false, 12.25)
	require.NoError(t, err)

	t.Run("should multiply volume by quantity", func(t *testing.T) {
		assert.InDelta(t, 400.0, item.TotalVolume(), 0.0001)
	})

	t.Run("should multiply weight by quantity", func(t *testing.T) {
		assert.InDelta(t, 6.0, item.TotalWeight(), 0.0001)
	})

	t.Run("should multiply value by quantity", func(t *testing.T) {
		assert.InDelta(t, 49.0, item.TotalValue(), 0.0001)
	})
}
