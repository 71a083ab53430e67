package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type ConcessionItem struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type CartLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart holds the session's concession state: the committed lines plus the
// per-item pending quantities that have not been added to the cart yet.
type Cart struct {
	Lines   []CartLine  `json:"lines"`
	Pending map[int]int `json:"pending"`
}

func NewCart() *Cart {
	return &Cart{
		Lines:   []CartLine{},
		Pending: map[int]int{},
	}
}

// AdjustPending moves the pending quantity for an item by delta, clamping at
// zero. There is no upper bound. Returns the new pending quantity.
func (c *Cart) AdjustPending(itemID, delta int) int {
	if c.Pending == nil {
		c.Pending = map[int]int{}
	}

	quantity := c.Pending[itemID] + delta
	if quantity < 0 {
		quantity = 0
	}

	c.Pending[itemID] = quantity

	return quantity
}

// Commit folds the pending quantity for an item into the committed lines:
// an existing line for the same id is incremented, otherwise a new line is
// appended. A zero pending quantity is a no-op. The pending counter is reset
// strictly after the line update has been applied, so a reader never observes
// the quantity as both pending and committed.
func (c *Cart) Commit(item ConcessionItem) {
	pending := c.Pending[item.ID]
	if pending == 0 {
		return
	}

	merged := false
	for i := range c.Lines {
		if c.Lines[i].ID == item.ID {
			c.Lines[i].Quantity += pending
			merged = true
			break
		}
	}

	if !merged {
		c.Lines = append(c.Lines, CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: pending,
		})
	}

	c.Pending[item.ID] = 0
}

// RemoveLine deletes the committed line for the given item id. Removing an
// absent line is a no-op.
func (c *Cart) RemoveLine(itemID int) {
	for i := range c.Lines {
		if c.Lines[i].ID == itemID {
			c.Lines = append(c.Lines[:i:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of price times quantity over the committed lines. Lines
// with zero quantity stay addressable but contribute nothing.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero

	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return total
}

type ConcessionService interface {
	GetProducts(ctx context.Context) ([]ConcessionItem, error)
}

type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}
