package domain

import "time"

// MenuItem is one row of the spreadsheet-backed catalog. A fetched catalog is
// immutable for the duration of a page session and replaced wholesale on
// re-fetch; unavailable items stay visible and filtering on Available is a
// display concern.
type MenuItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           Cents  `json:"price"`
	Photo           string `json:"photo"`
	Category        string `json:"category"`
	Available       bool   `json:"available"`
	PreparationTime int    `json:"preparation_time"`
	Ingredients     string `json:"ingredients"`
	Allergens       string `json:"allergens"`
	PopularityScore int    `json:"popularity_score"`
	Views           int    `json:"views"`
	Orders          int    `json:"orders"`
	LastUpdated     string `json:"last_updated"`
}

// CartLine holds the unit price captured when the item was first added.
// Catalog price changes after that point never move a cart total.
type CartLine struct {
	ItemID    string `json:"id"`
	Name      string `json:"name"`
	UnitPrice Cents  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type OrderLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Cents  `json:"price"`
	Quantity int    `json:"quantity"`
	Total    Cents  `json:"total"`
}

// Order is an immutable snapshot of the cart at submission time.
type Order struct {
	OrderID     string      `json:"order_id"`
	Table       string      `json:"table_number"`
	Lines       []OrderLine `json:"items"`
	TotalAmount Cents       `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Analytics carries the per-table session counters. One instance lives for
// one table session and is passed to every tracked call site.
type Analytics struct {
	Table        string         `json:"table_number"`
	ItemViews    map[string]int `json:"item_views"`
	ItemOrders   map[string]int `json:"item_orders"`
	WaiterCalls  int            `json:"waiter_calls"`
	BillRequests int            `json:"bill_requests"`
	TotalSpent   Cents          `json:"total_spent"`
	OrderCount   int            `json:"order_count"`
	SessionStart time.Time      `json:"session_start"`
}

// TableStats is the aggregate flushed to the stats sink at session end.
type TableStats struct {
	Table        string    `json:"table_number"`
	Orders       int       `json:"orders"`
	TotalSpent   Cents     `json:"total_spent"`
	WaiterCalls  int       `json:"waiter_calls"`
	BillRequests int       `json:"bill_requests"`
	LastActivity time.Time `json:"last_activity"`
}

// OrderFeedback references an order id loosely; the log never checks that the
// order was actually seen.
type OrderFeedback struct {
	OrderID   string    `json:"order_id"`
	Table     string    `json:"table_number"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

type NotificationKind string

const (
	NotificationOrderPlaced         NotificationKind = "order_placed"
	NotificationPaymentConfirmation NotificationKind = "payment_confirmation"
	NotificationWaiterCall          NotificationKind = "waiter_call"
	NotificationBillRequest         NotificationKind = "bill_request"
)

// Notification is the payload handed to the staff channel. Asset carries the
// proof-of-payment image for payment confirmations; JSON marshalling encodes
// it as base64, the Telegram adapter sends the raw bytes instead.
type Notification struct {
	Kind      NotificationKind `json:"type"`
	Table     string           `json:"table_number"`
	Order     *Order           `json:"order,omitempty"`
	Method    string           `json:"payment_method,omitempty"`
	Asset     []byte           `json:"asset,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}
