package service

import (
	"errors"
	"fmt"
	"time"

	"digital-menu/internal/domain"
)

// ErrEmptyCart refuses order construction from an empty cart. Callers are
// expected to guard checkout against zero lines; this is a precondition, not
// a runtime error path.
var ErrEmptyCart = errors.New("cannot build an order from an empty cart")

// OrderID derives the order identifier from the submission instant and the
// table. Submissions from one table are serialized by the guest's own action
// sequence (the cart is cleared before a second order can be built), so a
// same-millisecond collision cannot occur within a session.
func OrderID(now time.Time, table string) string {
	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), table)
}

// BuildOrder snapshots the cart into an immutable order. Line totals and the
// order total are computed here, once, from the captured unit prices.
func BuildOrder(table string, lines []domain.CartLine, now time.Time) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	orderLines := make([]domain.OrderLine, 0, len(lines))
	var total domain.Cents
	for _, line := range lines {
		lineTotal := line.UnitPrice * domain.Cents(line.Quantity)
		orderLines = append(orderLines, domain.OrderLine{
			ID:       line.ItemID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
		total += lineTotal
	}

	return &domain.Order{
		OrderID:     OrderID(now, table),
		Table:       table,
		Lines:       orderLines,
		TotalAmount: total,
		Timestamp:   now.UTC(),
	}, nil
}
