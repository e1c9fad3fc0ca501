package cart_test

import (
	"testing"

	"tableside/internal/cart"
	"tableside/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func newTestCart() *cart.Cart {
	return cart.New(catalog.Default())
}

func TestCart_AddUnknownItem(t *testing.T) {
	c := newTestCart()

	err := c.Add("no-such-item")
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
	assert.Equal(t, 0, c.Len())
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	c := newTestCart()

	assert.NoError(t, c.Add("burger-1"))
	assert.NoError(t, c.Add("burger-1"))

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_QuantityCap(t *testing.T) {
	c := newTestCart()

	for i := 0; i < cart.MaxQuantity; i++ {
		assert.NoError(t, c.Add("burger-1"))
	}

	// The eleventh add is rejected and the quantity is untouched.
	err := c.Add("burger-1")
	assert.ErrorIs(t, err, cart.ErrQuantityLimit)
	assert.Equal(t, cart.MaxQuantity, c.Lines()[0].Quantity)
}

func TestCart_RemoveDeletesAtOne(t *testing.T) {
	c := newTestCart()

	assert.NoError(t, c.Add("burger-1"))
	c.Remove("burger-1")

	// Removed entirely, never held at quantity zero.
	assert.Equal(t, 0, c.Len())

	// Removing an absent item is a no-op.
	c.Remove("burger-1")
	assert.Equal(t, 0, c.Len())
}

func TestCart_AddRemoveBounds(t *testing.T) {
	c := newTestCart()

	// Arbitrary add/remove sequences keep quantity within [1,10] and the
	// line is absent whenever its would-be quantity drops to zero.
	ops := []struct {
		add bool
		n   int
	}{
		{true, 3}, {false, 1}, {true, 12}, {false, 20}, {true, 1},
	}
	for _, op := range ops {
		for i := 0; i < op.n; i++ {
			if op.add {
				_ = c.Add("sides-1")
			} else {
				c.Remove("sides-1")
			}
			lines := c.Lines()
			if len(lines) > 0 {
				assert.GreaterOrEqual(t, lines[0].Quantity, 1)
				assert.LessOrEqual(t, lines[0].Quantity, cart.MaxQuantity)
			}
		}
	}
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestCart_SetNote(t *testing.T) {
	c := newTestCart()

	// No-op on a missing line.
	c.SetNote("burger-1", "no onions")
	assert.Equal(t, 0, c.Len())

	assert.NoError(t, c.Add("burger-1"))
	c.SetNote("burger-1", "no onions")
	assert.Equal(t, "no onions", c.Lines()[0].SpecialInstructions)

	// The note survives further increments.
	assert.NoError(t, c.Add("burger-1"))
	assert.Equal(t, "no onions", c.Lines()[0].SpecialInstructions)
}

func TestCart_Totals(t *testing.T) {
	c := newTestCart()

	count, amount := c.Totals()
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, amount)

	// Three Signature Burgers at $12.99.
	for i := 0; i < 3; i++ {
		assert.NoError(t, c.Add("burger-1"))
	}
	count, amount = c.Totals()
	assert.Equal(t, 3, count)
	assert.InDelta(t, 38.97, amount, 0.001)

	c.Remove("burger-1")
	count, amount = c.Totals()
	assert.Equal(t, 2, count)
	assert.InDelta(t, 25.98, amount, 0.001)
}

func TestCart_TotalsAcrossLines(t *testing.T) {
	c := newTestCart()

	assert.NoError(t, c.Add("burger-2")) // 10.99
	assert.NoError(t, c.Add("sides-1"))  // 4.99
	assert.NoError(t, c.Add("drink-1")) // 2.99
	assert.NoError(t, c.Add("drink-1")) // 2.99

	count, amount := c.Totals()
	assert.Equal(t, 4, count)
	assert.InDelta(t, 10.99+4.99+2.99*2, amount, 0.001)
}

func TestCart_Clear(t *testing.T) {
	c := newTestCart()

	assert.NoError(t, c.Add("burger-1"))
	c.SetOrderNote("deliver together")
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.OrderNote())
}

func TestCart_LinesSnapshotIsOrdered(t *testing.T) {
	c := newTestCart()

	assert.NoError(t, c.Add("sides-2"))
	assert.NoError(t, c.Add("burger-1"))
	assert.NoError(t, c.Add("drink-3"))

	lines := c.Lines()
	assert.Equal(t, "burger-1", lines[0].Item.ID)
	assert.Equal(t, "drink-3", lines[1].Item.ID)
	assert.Equal(t, "sides-2", lines[2].Item.ID)
}
