package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	popcorn = ConcessionItem{ID: 1, Name: "Popcorn", Price: decimal.NewFromFloat(11.00)}
	soda    = ConcessionItem{ID: 2, Name: "Soda", Price: decimal.NewFromFloat(4.99)}
)

func TestCartAdjustPending(t *testing.T) {
	t.Run("accumulates deltas", func(t *testing.T) {
		cart := NewCart()

		assert.Equal(t, 2, cart.AdjustPending(popcorn.ID, 2))
		assert.Equal(t, 3, cart.AdjustPending(popcorn.ID, 1))
	})

	t.Run("clamps at zero", func(t *testing.T) {
		cart := NewCart()

		cart.AdjustPending(popcorn.ID, 2)
		assert.Equal(t, 0, cart.AdjustPending(popcorn.ID, -5))
	})

	t.Run("decrement at zero stays zero", func(t *testing.T) {
		cart := NewCart()

		assert.Equal(t, 0, cart.AdjustPending(popcorn.ID, -1))
		assert.Equal(t, 0, cart.Pending[popcorn.ID])
	})
}

func TestCartCommit(t *testing.T) {
	t.Run("zero pending is a no-op", func(t *testing.T) {
		cart := NewCart()

		cart.Commit(popcorn)

		assert.Empty(t, cart.Lines)
		assert.Equal(t, 0, cart.Pending[popcorn.ID])
	})

	t.Run("creates a line and resets pending", func(t *testing.T) {
		cart := NewCart()
		cart.AdjustPending(popcorn.ID, 2)

		cart.Commit(popcorn)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, popcorn.ID, cart.Lines[0].ID)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, 0, cart.Pending[popcorn.ID])
	})

	t.Run("merges into an existing line", func(t *testing.T) {
		cart := NewCart()
		cart.AdjustPending(popcorn.ID, 2)
		cart.Commit(popcorn)

		cart.AdjustPending(popcorn.ID, 3)
		cart.Commit(popcorn)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("keeps other items' pending untouched", func(t *testing.T) {
		cart := NewCart()
		cart.AdjustPending(popcorn.ID, 1)
		cart.AdjustPending(soda.ID, 4)

		cart.Commit(popcorn)

		assert.Equal(t, 4, cart.Pending[soda.ID])
	})
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart()
	cart.AdjustPending(popcorn.ID, 1)
	cart.Commit(popcorn)
	cart.AdjustPending(soda.ID, 2)
	cart.Commit(soda)

	cart.RemoveLine(popcorn.ID)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, soda.ID, cart.Lines[0].ID)

	// removing an absent line changes nothing
	cart.RemoveLine(99)
	assert.Len(t, cart.Lines, 1)
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	cart.AdjustPending(popcorn.ID, 2)
	cart.Commit(popcorn)
	cart.AdjustPending(soda.ID, 1)
	cart.Commit(soda)

	assert.Equal(t, "26.99", cart.Total().StringFixed(2))

	t.Run("zero-quantity lines contribute nothing", func(t *testing.T) {
		cart.Lines = append(cart.Lines, CartLine{ID: 3, Name: "Nachos", Price: decimal.NewFromFloat(7.50), Quantity: 0})

		assert.Equal(t, "26.99", cart.Total().StringFixed(2))
	})
}
