package service

import (
	"context"
	"log"
	"time"

	"digital-menu/internal/domain"
)

const defaultDispatchTimeout = 10 * time.Second

// DispatchResult reports how a single delivery attempt went. Delivery failure
// is a degraded outcome, not an error: the caller still performs its local
// side effects and shows a softened acknowledgment.
type DispatchResult struct {
	Delivered bool
	Err       error
}

// Dispatcher delivers notifications to the staff channel. Each call attempts
// exactly one delivery, bounded by a timeout; there is no retry and no queue
// for later redelivery.
type Dispatcher struct {
	channel NotificationChannel
	timeout time.Duration
}

func NewDispatcher(channel NotificationChannel, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &Dispatcher{channel: channel, timeout: timeout}
}

func (d *Dispatcher) OrderPlaced(ctx context.Context, order *domain.Order) DispatchResult {
	return d.send(ctx, domain.Notification{
		Kind:      domain.NotificationOrderPlaced,
		Table:     order.Table,
		Order:     order,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) PaymentConfirmation(ctx context.Context, order *domain.Order, method string, asset []byte) DispatchResult {
	return d.send(ctx, domain.Notification{
		Kind:      domain.NotificationPaymentConfirmation,
		Table:     order.Table,
		Order:     order,
		Method:    method,
		Asset:     asset,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) WaiterCall(ctx context.Context, table string) DispatchResult {
	return d.send(ctx, domain.Notification{
		Kind:      domain.NotificationWaiterCall,
		Table:     table,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) BillRequest(ctx context.Context, table string) DispatchResult {
	return d.send(ctx, domain.Notification{
		Kind:      domain.NotificationBillRequest,
		Table:     table,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) send(ctx context.Context, n domain.Notification) DispatchResult {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.channel.Send(ctx, n); err != nil {
		log.Printf("[dispatcher] %s notification for table %s failed: %v", n.Kind, n.Table, err)
		return DispatchResult{Delivered: false, Err: err}
	}
	return DispatchResult{Delivered: true}
}
