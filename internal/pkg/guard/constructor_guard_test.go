package guard_test

import (
	"errors"
	"testing"

	"bistro/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	assert.NotNil(t, g)

	// A fresh guard passes validation with any error argument.
	require.NoError(t, g.Validate(errors.New("stock lot not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero value guard fails with the given error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		wantErr := errors.New("aggregate not constructed")

		err := g.Validate(wantErr)

		require.Error(t, err)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// embedded in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type StockLot struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errStockLotNotConstructed = errors.New("StockLot must be created via NewStockLot")

	newStockLot := func(name string, quantity int) (StockLot, error) {
		if name == "" {
			return StockLot{}, errors.New("name is required")
		}
		if quantity < 0 {
			return StockLot{}, errors.New("quantity cannot be negative")
		}
		return StockLot{
			name:     name,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateStockLot := func(l StockLot) error {
		return l.guard.Validate(errStockLotNotConstructed)
	}

	t.Run("constructed lot validates", func(t *testing.T) {
		lot, err := newStockLot("Tomatoes", 12)

		require.NoError(t, err)
		require.NoError(t, validateStockLot(lot))
		assert.Equal(t, "Tomatoes", lot.name)
		assert.Equal(t, 12, lot.quantity)
	})

	t.Run("zero value lot is caught", func(t *testing.T) {
		var lot StockLot // never went through the constructor

		err := validateStockLot(lot)

		require.Error(t, err)
		assert.Equal(t, errStockLotNotConstructed, err)
	})

	t.Run("constructor still enforces its own rules", func(t *testing.T) {
		_, err := newStockLot("Tomatoes", -3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot be negative")

		_, err = newStockLot("", 12)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

// TestConstructorGuardEmbeddedExample shows the embedded base type pattern,
// which keeps the guard plumbing out of the domain object itself.
func TestConstructorGuardEmbeddedExample(t *testing.T) {
	var errDishNotConstructed = errors.New("Dish must be created via NewDish")

	type guardedDish struct {
		guard guard.ConstructorGuard
	}

	newGuardedDish := func() guardedDish {
		return guardedDish{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedDish := func(g guardedDish) error {
		return g.guard.Validate(errDishNotConstructed)
	}

	type Dish struct {
		guardedDish
		name        string
		prepMinutes int
		price       int
	}

	newDish := func(name string, prepMinutes, price int) (Dish, error) {
		if name == "" {
			return Dish{}, errors.New("dish name is required")
		}
		if prepMinutes <= 0 {
			return Dish{}, errors.New("dish prep time must be positive")
		}
		if price < 0 {
			return Dish{}, errors.New("dish price cannot be negative")
		}
		return Dish{
			guardedDish: newGuardedDish(),
			name:        name,
			prepMinutes: prepMinutes,
			price:       price,
		}, nil
	}

	t.Run("constructed dish validates", func(t *testing.T) {
		dish, err := newDish("Margherita Pizza", 25, 14)

		require.NoError(t, err)
		require.NoError(t, validateGuardedDish(dish.guardedDish))
		assert.Equal(t, "Margherita Pizza", dish.name)
		assert.Equal(t, 25, dish.prepMinutes)
		assert.Equal(t, 14, dish.price)
	})

	t.Run("zero value dish is caught", func(t *testing.T) {
		var dish Dish

		err := validateGuardedDish(dish.guardedDish)

		require.Error(t, err)
		assert.Equal(t, errDishNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors checks the guard against the error
// messages the aggregates actually use.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "ticket_not_constructed_error",
			expectedError: errors.New("Ticket must be created via NewTicket"),
		},
		{
			name:          "recipe_not_constructed_error",
			expectedError: errors.New("Recipe must be created via NewRecipe factory method"),
		},
		{
			name:          "station_not_constructed_error",
			expectedError: errors.New("Station requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := guard.NewConstructorGuard()

			require.NoError(t, g.Validate(tc.expectedError),
				"a constructed guard must pass regardless of the error argument")
		})
	}
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("zero value with nil argument returns the default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default error names the fix", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the overhead of guarding construction.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies the guard tolerates concurrent reads.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func TestConstructorGuardCopySemantics(t *testing.T) {
	t.Run("guards are independent", func(t *testing.T) {
		first := guard.NewConstructorGuard()
		_ = guard.NewConstructorGuard()

		require.NoError(t, first.Validate(errors.New("original error")))
		require.NoError(t, first.Validate(errors.New("another error")))
	})

	t.Run("a copy validates like the original", func(t *testing.T) {
		original := guard.NewConstructorGuard()
		testError := errors.New("test error")

		copied := original // pass by value

		require.NoError(t, original.Validate(testError))
		require.NoError(t, copied.Validate(testError))
	})
}
