package service

import (
	"context"
	"log"
	"time"

	"digital-menu/internal/domain"
)

// AnalyticsService holds the counters for one table session. Every operation
// is synchronous and cannot fail or block: analytics must never be the reason
// a guest-facing action fails. Counters live for the session and reach the
// sink only on an explicit Flush.
type AnalyticsService struct {
	table        string
	itemViews    map[string]int
	itemOrders   map[string]int
	waiterCalls  int
	billRequests int
	totalSpent   domain.Cents
	orderCount   int
	sessionStart time.Time
	lastActivity time.Time
	sink         TableStatsSink
}

// NewAnalyticsService starts a session for the given table. sink may be nil
// when the surrounding application never flushes.
func NewAnalyticsService(table string, sink TableStatsSink, now time.Time) *AnalyticsService {
	return &AnalyticsService{
		table:        table,
		itemViews:    make(map[string]int),
		itemOrders:   make(map[string]int),
		sessionStart: now,
		lastActivity: now,
		sink:         sink,
	}
}

func (a *AnalyticsService) TrackItemView(itemID string) {
	a.itemViews[itemID]++
	a.lastActivity = time.Now()
}

func (a *AnalyticsService) TrackOrder(order *domain.Order) {
	a.orderCount++
	a.totalSpent += order.TotalAmount
	for _, line := range order.Lines {
		a.itemOrders[line.ID] += line.Quantity
	}
	a.lastActivity = time.Now()
}

func (a *AnalyticsService) TrackWaiterCall() {
	a.waiterCalls++
	a.lastActivity = time.Now()
}

func (a *AnalyticsService) TrackBillRequest() {
	a.billRequests++
	a.lastActivity = time.Now()
}

// Snapshot copies the current counters.
func (a *AnalyticsService) Snapshot() domain.Analytics {
	views := make(map[string]int, len(a.itemViews))
	for k, v := range a.itemViews {
		views[k] = v
	}
	orders := make(map[string]int, len(a.itemOrders))
	for k, v := range a.itemOrders {
		orders[k] = v
	}
	return domain.Analytics{
		Table:        a.table,
		ItemViews:    views,
		ItemOrders:   orders,
		WaiterCalls:  a.waiterCalls,
		BillRequests: a.billRequests,
		TotalSpent:   a.totalSpent,
		OrderCount:   a.orderCount,
		SessionStart: a.sessionStart,
	}
}

// Flush writes the session aggregate to the stats sink. A sink failure is
// logged and swallowed; flushing is best-effort bookkeeping.
func (a *AnalyticsService) Flush(ctx context.Context) {
	if a.sink == nil {
		return
	}
	stats := domain.TableStats{
		Table:        a.table,
		Orders:       a.orderCount,
		TotalSpent:   a.totalSpent,
		WaiterCalls:  a.waiterCalls,
		BillRequests: a.billRequests,
		LastActivity: a.lastActivity,
	}
	if err := a.sink.UpsertTableStats(ctx, stats); err != nil {
		log.Printf("[analytics] failed to flush stats for table %s: %v", a.table, err)
	}
}
