package service

import "digital-menu/internal/domain"

// CartService accumulates lines for one table session. It is a pure state
// container: no I/O, no errors, invalid inputs are normalized. A line whose
// quantity is driven to zero is removed, never kept.
type CartService struct {
	lines map[string]*domain.CartLine
	order []string
}

func NewCartService() *CartService {
	return &CartService{lines: make(map[string]*domain.CartLine)}
}

// AddItem increments the quantity of an existing line or opens a new one with
// quantity 1. The unit price is captured on the first add and never re-read
// from the catalog.
func (c *CartService) AddItem(itemID, name string, unitPrice domain.Cents) {
	if line, ok := c.lines[itemID]; ok {
		line.Quantity++
		return
	}
	c.lines[itemID] = &domain.CartLine{
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	c.order = append(c.order, itemID)
}

// RemoveItem deletes the line entirely, regardless of quantity.
func (c *CartService) RemoveItem(itemID string) {
	if _, ok := c.lines[itemID]; !ok {
		return
	}
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets the line quantity directly. A quantity of zero or less
// is equivalent to RemoveItem.
func (c *CartService) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	if line, ok := c.lines[itemID]; ok {
		line.Quantity = quantity
	}
}

func (c *CartService) Clear() {
	c.lines = make(map[string]*domain.CartLine)
	c.order = nil
}

func (c *CartService) TotalAmount() domain.Cents {
	var total domain.Cents
	for _, line := range c.lines {
		total += line.UnitPrice * domain.Cents(line.Quantity)
	}
	return total
}

func (c *CartService) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns the cart contents in insertion order.
func (c *CartService) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}
