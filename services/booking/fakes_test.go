package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	arenaRepo "arenabook/database/repository/arena"
	orderRepo "arenabook/database/repository/order"
	"arenabook/models"
	"arenabook/services/tasks"

	"github.com/stripe/stripe-go/v76"
)

type fakeArenaRepo struct {
	arenas map[string]*models.Arena
}

func newFakeArenaRepo(arenas ...*models.Arena) *fakeArenaRepo {
	repo := &fakeArenaRepo{arenas: make(map[string]*models.Arena)}
	for _, a := range arenas {
		repo.arenas[a.ID] = a
	}
	return repo
}

func (f *fakeArenaRepo) Create(ctx context.Context, arena *models.Arena) error {
	f.arenas[arena.ID] = arena
	return nil
}

func (f *fakeArenaRepo) GetByID(ctx context.Context, arenaID string) (*models.Arena, error) {
	a, ok := f.arenas[arenaID]
	if !ok {
		return nil, arenaRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArenaRepo) UpdateFields(ctx context.Context, arenaID string, fields map[string]interface{}) error {
	if _, ok := f.arenas[arenaID]; !ok {
		return arenaRepo.ErrNotFound
	}
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order

	createErr  error
	sessionErr error
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		cp := *o
		repo.orders[o.ID] = &cp
	}
	return repo
}

func (f *fakeOrderRepo) get(orderID string) *models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil
	}
	cp := *o
	return &cp
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	o := f.get(orderID)
	if o == nil {
		return nil, orderRepo.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) SetCheckoutSession(ctx context.Context, orderID, sessionID string, expiresAt time.Time) error {
	if f.sessionErr != nil {
		return f.sessionErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return orderRepo.ErrNotFound
	}
	o.PaymentSessionID = sessionID
	o.SessionExpiresAt = expiresAt
	return nil
}

func (f *fakeOrderRepo) listPaid(match func(*models.Order) bool) []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == models.OrderStatusPaid && match(o) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (f *fakeOrderRepo) ListPaidByArena(ctx context.Context, arenaID string) ([]models.Order, error) {
	return f.listPaid(func(o *models.Order) bool { return o.ArenaID == arenaID }), nil
}

func (f *fakeOrderRepo) ListPaidByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return f.listPaid(func(o *models.Order) bool { return o.UserID == userID }), nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, orderID, paymentIntentID string, paidAt time.Time) (*models.Order, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, false, orderRepo.ErrNotFound
	}
	if o.Status == models.OrderStatusPaid || o.Status == models.OrderStatusRejected {
		cp := *o
		return &cp, false, nil
	}

	for _, other := range f.orders {
		if other.ID == o.ID || other.ArenaID != o.ArenaID || other.Status != models.OrderStatusPaid {
			continue
		}
		if o.Interval().Overlaps(other.Interval()) {
			o.Status = models.OrderStatusRejected
			o.PaymentIntentID = paymentIntentID
			cp := *o
			return &cp, false, nil
		}
	}

	o.Status = models.OrderStatusPaid
	o.PaymentIntentID = paymentIntentID
	o.PaidAt = paidAt
	cp := *o
	return &cp, true, nil
}

func (f *fakeOrderRepo) MarkExpired(ctx context.Context, orderID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok || o.Status != models.OrderStatusPending {
		return false, nil
	}
	o.Status = models.OrderStatusExpired
	return true, nil
}

func (f *fakeOrderRepo) MarkCancelled(ctx context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok || o.Status != models.OrderStatusPaid {
		return orderRepo.ErrNotFound
	}
	o.Status = models.OrderStatusCancelled
	return nil
}

type fakeGateway struct {
	err      error
	lastName string
	last     *models.Order
}

func (f *fakeGateway) CreateSession(ctx context.Context, order *models.Order, arenaName string) (*CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = order
	f.lastName = arenaName
	return &CheckoutSession{
		ID:        "cs_test_" + order.ID,
		URL:       "https://checkout.example.com/" + order.ID,
		ExpiresAt: time.Now().UTC().Add(checkoutSessionTTL),
	}, nil
}

// fakeVerifier returns the preset event without checking the signature, or the
// preset error to simulate a signature failure.
type fakeVerifier struct {
	event stripe.Event
	err   error
}

func (f *fakeVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	if f.err != nil {
		return stripe.Event{}, f.err
	}
	return f.event, nil
}

type fakeEnqueuer struct {
	payloads []tasks.BookingConfirmationPayload
}

func (f *fakeEnqueuer) EnqueueBookingConfirmation(ctx context.Context, payload tasks.BookingConfirmationPayload) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

// testNow is the frozen reference clock for the suite.
var testNow = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

func slotAt(start time.Time, hours int) models.Slot {
	return models.Slot{Start: start, End: start.Add(time.Duration(hours) * time.Hour)}
}

func newTestService(arenas *fakeArenaRepo, orders *fakeOrderRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Arenas:  arenas,
		Orders:  orders,
		Gateway: &fakeGateway{},
		Now:     func() time.Time { return testNow },
	}
}
