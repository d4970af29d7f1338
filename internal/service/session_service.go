package service

import (
	"context"
	"sync"
	"time"

	"digital-menu/internal/domain"
)

// feedbackDelay is how long after a submission the feedback prompt becomes
// eligible to open.
const feedbackDelay = 2 * time.Second

// SessionService is the page-controller analog for one table session. It owns
// the cart, the session analytics and the last submitted order id, and wires
// the guest's actions to the dispatcher and the feedback log.
//
// Every entry point completes its local half even when the remote half fails:
// a dead staff channel never blocks clearing the cart or closing a modal. The
// mutex serializes callers since the embedding program may drive a session
// from concurrent HTTP handlers; within one session the guest's own action
// sequence keeps submissions ordered.
type SessionService struct {
	mu sync.Mutex

	table      string
	cart       *CartService
	dispatcher *Dispatcher
	analytics  *AnalyticsService
	feedback   FeedbackServiceInterface
	menu       MenuServiceInterface

	lastOrderID   string
	feedbackAfter time.Time
	now           func() time.Time
}

func NewSessionService(table string, cart *CartService, dispatcher *Dispatcher, analytics *AnalyticsService, feedback FeedbackServiceInterface, menu MenuServiceInterface) *SessionService {
	return &SessionService{
		table:      table,
		cart:       cart,
		dispatcher: dispatcher,
		analytics:  analytics,
		feedback:   feedback,
		menu:       menu,
		now:        time.Now,
	}
}

func (s *SessionService) Table() string { return s.table }

// ViewItem records a catalog item being opened.
func (s *SessionService) ViewItem(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics.TrackItemView(itemID)
	if s.menu != nil {
		s.menu.TrackItemView(ctx, itemID)
	}
}

// AddToCart adds quantity units of the item, capturing its price now.
func (s *SessionService) AddToCart(item domain.MenuItem, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < quantity; i++ {
		s.cart.AddItem(item.ID, item.Name, item.Price)
	}
}

func (s *SessionService) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, quantity)
}

func (s *SessionService) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(itemID)
}

func (s *SessionService) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *SessionService) CartTotal() domain.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalAmount()
}

func (s *SessionService) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// PlaceOrder snapshots the cart into an order and dispatches it. The cart is
// cleared and analytics record exactly one order event whether or not the
// staff channel accepted the notification; the result tells the caller which
// acknowledgment to show.
func (s *SessionService) PlaceOrder(ctx context.Context) (*domain.Order, DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := BuildOrder(s.table, s.cart.Lines(), s.now())
	if err != nil {
		return nil, DispatchResult{}, err
	}

	s.analytics.TrackOrder(order)
	s.trackLineOrders(ctx, order)

	result := s.dispatcher.OrderPlaced(ctx, order)

	s.completeSubmission(order)
	return order, result, nil
}

// ConfirmPayment is the payment-flow variant of PlaceOrder: the same snapshot
// and local side effects, with the proof-of-payment asset attached to the
// notification.
func (s *SessionService) ConfirmPayment(ctx context.Context, method string, asset []byte) (*domain.Order, DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := BuildOrder(s.table, s.cart.Lines(), s.now())
	if err != nil {
		return nil, DispatchResult{}, err
	}

	s.analytics.TrackOrder(order)
	s.trackLineOrders(ctx, order)

	result := s.dispatcher.PaymentConfirmation(ctx, order, method, asset)

	s.completeSubmission(order)
	return order, result, nil
}

func (s *SessionService) CallWaiter(ctx context.Context) DispatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics.TrackWaiterCall()
	return s.dispatcher.WaiterCall(ctx, s.table)
}

func (s *SessionService) RequestBill(ctx context.Context) DispatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics.TrackBillRequest()
	return s.dispatcher.BillRequest(ctx, s.table)
}

// SubmitFeedback appends a record keyed to the last submitted order. The
// order id is not validated against any order store.
func (s *SessionService) SubmitFeedback(ctx context.Context, rating int, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedback.Submit(ctx, domain.OrderFeedback{
		OrderID:   s.lastOrderID,
		Table:     s.table,
		Rating:    rating,
		Comment:   comment,
		Timestamp: s.now().UTC(),
	})
}

// LastOrderID returns the id of the most recently submitted order, or "".
func (s *SessionService) LastOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID
}

// FeedbackEligible reports whether the feedback prompt may open at the given
// instant: an order must have been submitted and the delay elapsed.
func (s *SessionService) FeedbackEligible(at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID != "" && !at.Before(s.feedbackAfter)
}

func (s *SessionService) Analytics() domain.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics.Snapshot()
}

// Close flushes session analytics. The session must not be used afterwards.
func (s *SessionService) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics.Flush(ctx)
}

func (s *SessionService) trackLineOrders(ctx context.Context, order *domain.Order) {
	if s.menu == nil {
		return
	}
	for _, line := range order.Lines {
		s.menu.TrackItemOrder(ctx, line.ID)
	}
}

func (s *SessionService) completeSubmission(order *domain.Order) {
	s.cart.Clear()
	s.lastOrderID = order.OrderID
	s.feedbackAfter = s.now().Add(feedbackDelay)
}
