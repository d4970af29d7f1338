package tests

import (
	"testing"
	"time"

	"digital-menu/internal/domain"
	"digital-menu/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	lines := []domain.CartLine{
		{ItemID: "1", Name: "Margherita Pizza", UnitPrice: 1299, Quantity: 2},
		{ItemID: "2", Name: "Caesar Salad", UnitPrice: 899, Quantity: 1},
	}

	order, err := service.BuildOrder("5", lines, now)

	assert.NoError(t, err)
	assert.Equal(t, "5", order.Table)
	assert.Equal(t, domain.Cents(3497), order.TotalAmount)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, domain.Cents(2598), order.Lines[0].Total)
	assert.Equal(t, domain.Cents(899), order.Lines[1].Total)
	assert.Equal(t, now, order.Timestamp)
}

func TestBuildOrder_EmptyCart(t *testing.T) {
	order, err := service.BuildOrder("5", nil, time.Now())

	assert.Nil(t, order)
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestBuildOrder_PreservesLineOrder(t *testing.T) {
	lines := []domain.CartLine{
		{ItemID: "3", Name: "Grilled Salmon", UnitPrice: 1899, Quantity: 1},
		{ItemID: "1", Name: "Margherita Pizza", UnitPrice: 1299, Quantity: 1},
	}

	order, err := service.BuildOrder("2", lines, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, "3", order.Lines[0].ID)
	assert.Equal(t, "1", order.Lines[1].ID)
}

func TestOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	id := service.OrderID(now, "7")

	assert.Equal(t, "order_1700000000000_7", id)
}
