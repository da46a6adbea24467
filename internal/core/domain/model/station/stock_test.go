package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/station"
)

// newTestLot creates a valid stock-role ingredient for testing.
func newTestLot(t *testing.T, name string, held int, unitPrice float64) ingredient.Ingredient {
	t.Helper()
	lot, err := ingredient.NewStock(name, held, unitPrice)
	require.NoError(t, err)
	return lot
}

func TestNewStock(t *testing.T) {
	t.Run("should create an empty stock", func(t *testing.T) {
		stock := station.NewStock()

		assert.NoError(t, stock.Validate())
		assert.Empty(t, stock.Items())
		assert.Equal(t, 0, stock.Held("anything"))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var stock station.Stock

		err := stock.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrStockIsNotConstructed)
	})
}

func TestStock_Add(t *testing.T) {
	t.Run("should append a new line", func(t *testing.T) {
		stock := station.NewStock()

		err := stock.Add(newTestLot(t, "flour", 10, 1.50))

		require.NoError(t, err)
		assert.Equal(t, 10, stock.Held("flour"))
		require.Len(t, stock.Items(), 1)
	})

	t.Run("should increment an existing line and keep its price", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 10, 1.50)))

		err := stock.Add(newTestLot(t, "flour", 5, 9.99))

		require.NoError(t, err)
		assert.Equal(t, 15, stock.Held("flour"))
		items := stock.Items()
		require.Len(t, items, 1)
		assert.InDelta(t, 1.50, items[0].UnitPrice(), 0.0001)
	})

	t.Run("should preserve first-insertion order", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 10, 1.50)))
		require.NoError(t, stock.Add(newTestLot(t, "tomato", 6, 0.80)))
		require.NoError(t, stock.Add(newTestLot(t, "flour", 2, 1.50)))

		items := stock.Items()

		require.Len(t, items, 2)
		assert.Equal(t, "flour", items[0].Name())
		assert.Equal(t, "tomato", items[1].Name())
	})

	t.Run("should reject a lot without held quantity", func(t *testing.T) {
		stock := station.NewStock()
		requirement, err := ingredient.NewRequirement("flour", 2, 1.50)
		require.NoError(t, err)

		err = stock.Add(requirement)

		require.Error(t, err)
	})

	t.Run("should reject a non-constructed lot", func(t *testing.T) {
		stock := station.NewStock()
		var zero ingredient.Ingredient

		err := stock.Add(zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, ingredient.ErrIngredientIsNotConstructed)
	})
}

func TestStock_Deduct(t *testing.T) {
	t.Run("should deduct from an existing line", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 10, 1.50)))

		err := stock.Deduct("flour", 4)

		require.NoError(t, err)
		assert.Equal(t, 6, stock.Held("flour"))
	})

	t.Run("should keep a line deducted to zero", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 4, 1.50)))

		err := stock.Deduct("flour", 4)

		require.NoError(t, err)
		assert.Equal(t, 0, stock.Held("flour"))
		require.Len(t, stock.Items(), 1)
	})

	t.Run("should reject deducting more than held", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 4, 1.50)))

		err := stock.Deduct("flour", 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrInsufficientStock)
		assert.Equal(t, 4, stock.Held("flour"))
	})

	t.Run("should reject deducting an absent ingredient", func(t *testing.T) {
		stock := station.NewStock()

		err := stock.Deduct("caviar", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrInsufficientStock)
	})

	t.Run("should reject a non-positive quantity", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 4, 1.50)))

		require.Error(t, stock.Deduct("flour", 0))
		require.Error(t, stock.Deduct("flour", -1))
	})
}

func TestStock_Clone(t *testing.T) {
	t.Run("should deep copy all lines", func(t *testing.T) {
		stock := station.NewStock()
		require.NoError(t, stock.Add(newTestLot(t, "flour", 10, 1.50)))
		require.NoError(t, stock.Add(newTestLot(t, "tomato", 6, 0.80)))

		clone := stock.Clone()

		require.NoError(t, clone.Validate())
		assert.Equal(t, stock.Items(), clone.Items())

		// Mutating the clone must not affect the original.
		require.NoError(t, clone.Deduct("flour", 10))
		assert.Equal(t, 10, stock.Held("flour"))
		assert.Equal(t, 0, clone.Held("flour"))
	})
}
