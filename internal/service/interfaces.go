package service

import (
	"context"

	"digital-menu/internal/domain"
)

// CatalogSource is the spreadsheet-backed catalog boundary. A failed fetch is
// recovered by the caller, never surfaced to the guest.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]domain.MenuItem, error)
}

// CatalogCache stores the last fetched catalog and the per-item popularity
// counters.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]domain.MenuItem, error)
	SetCatalog(ctx context.Context, items []domain.MenuItem) error
	IncrItemStat(ctx context.Context, itemID, stat string) error
}

// NotificationChannel posts one message to the staff channel. Implementations
// must respect ctx cancellation; the dispatcher bounds every call with a
// timeout.
type NotificationChannel interface {
	Send(ctx context.Context, n domain.Notification) error
}

// FeedbackLog is a key-value read/write of the whole feedback array under a
// fixed key. Read returns an empty slice when the key is absent.
type FeedbackLog interface {
	Read(ctx context.Context) ([]domain.OrderFeedback, error)
	Write(ctx context.Context, records []domain.OrderFeedback) error
}

// TableStatsSink receives session aggregates on flush.
type TableStatsSink interface {
	UpsertTableStats(ctx context.Context, stats domain.TableStats) error
}

type MenuServiceInterface interface {
	MenuItems(ctx context.Context) ([]domain.MenuItem, error)
	MenuItemsOrDemo(ctx context.Context) []domain.MenuItem
	TrackItemView(ctx context.Context, itemID string)
	TrackItemOrder(ctx context.Context, itemID string)
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, record domain.OrderFeedback) error
	List(ctx context.Context) ([]domain.OrderFeedback, error)
}

var (
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ FeedbackServiceInterface = (*FeedbackService)(nil)
)
