package cart

import (
	"errors"
	"sort"

	"tableside/internal/models"
)

// MaxQuantity is the per-item quantity cap for a single order.
const MaxQuantity = 10

var (
	// ErrItemNotFound is returned when an item id is not in the catalog.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrQuantityLimit is returned when an add would exceed MaxQuantity.
	ErrQuantityLimit = errors.New("maximum quantity per item reached")
)

// ItemFinder resolves a menu item id against the catalog.
type ItemFinder interface {
	Find(itemID string) (*models.MenuItem, bool)
}

// Line is one item entry in an in-progress, unsubmitted order.
type Line struct {
	Item                models.MenuItem
	Quantity            int
	SpecialInstructions string
}

// Cart holds the in-progress order for a single table session. It is
// owned by the session and mutated only through its methods.
type Cart struct {
	catalog ItemFinder
	lines   map[string]*Line
	note    string
}

// New creates an empty cart backed by the given catalog.
func New(catalog ItemFinder) *Cart {
	return &Cart{
		catalog: catalog,
		lines:   make(map[string]*Line),
	}
}

// Add puts one unit of the item in the cart. An existing line is
// incremented up to MaxQuantity; past the cap the line is left unchanged
// and ErrQuantityLimit is returned.
func (c *Cart) Add(itemID string) error {
	item, ok := c.catalog.Find(itemID)
	if !ok {
		return ErrItemNotFound
	}

	if line, exists := c.lines[itemID]; exists {
		if line.Quantity+1 > MaxQuantity {
			return ErrQuantityLimit
		}
		line.Quantity++
		return nil
	}

	c.lines[itemID] = &Line{Item: *item, Quantity: 1}
	return nil
}

// Remove takes one unit of the item out of the cart. At quantity 1 the
// line is deleted entirely rather than dropping to zero. Removing an
// absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	line, exists := c.lines[itemID]
	if !exists {
		return
	}
	if line.Quantity <= 1 {
		delete(c.lines, itemID)
		return
	}
	line.Quantity--
}

// SetNote attaches special instructions to an existing line. It is a
// no-op when the line does not exist.
func (c *Cart) SetNote(itemID, text string) {
	if line, exists := c.lines[itemID]; exists {
		line.SpecialInstructions = text
	}
}

// SetOrderNote sets a note that applies to the whole order.
func (c *Cart) SetOrderNote(text string) {
	c.note = text
}

// OrderNote returns the order-level note, if any.
func (c *Cart) OrderNote() string {
	return c.note
}

// Clear empties all lines and the order note.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.note = ""
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Totals recomputes the item count and amount from the current lines.
func (c *Cart) Totals() (count int, amount float64) {
	for _, line := range c.lines {
		count += line.Quantity
		amount += line.Item.Price * float64(line.Quantity)
	}
	return count, amount
}

// Lines returns a snapshot of the cart, ordered by item id.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Item.ID < lines[j].Item.ID
	})
	return lines
}
