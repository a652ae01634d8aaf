// Package shop ties the menu, the order ledger, and the clock-derived
// open/closed state into a single viewer session.
package shop

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/pizzaco/internal/availability"
	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Option configures the session.
type Option func(*Session)

// WithHours overrides the default trading hours.
func WithHours(h availability.Hours) Option {
	return func(s *Session) {
		s.hours = h
	}
}

// Session is the only owner of the order ledger. All ledger mutation
// goes through PlaceOrder and ClearOrders; the open/closed flag is only
// ever derived from the latest ShopTime.
type Session struct {
	id       string
	catalog  domain.Catalog
	ledger   domain.OrderLedger
	notifier domain.Notifier
	hours    availability.Hours
	log      *logger.Logger

	// mu serialises ledger mutations and clock ticks.
	mu   sync.Mutex
	now  time.Time
	open bool
}

// New creates a session whose clock starts at start. Availability is
// computed from start immediately, so it is valid before the first tick.
func New(catalog domain.Catalog, ledger domain.OrderLedger, notifier domain.Notifier, log *logger.Logger, start time.Time, opts ...Option) *Session {
	s := &Session{
		id:       newSessionID(),
		catalog:  catalog,
		ledger:   ledger,
		notifier: notifier,
		hours:    availability.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = log.With("session " + s.id[:8])
	s.now = start
	s.open = s.hours.Contains(start)

	s.log.Info("started (hours=%s, open=%v)", s.hours, s.open)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Hours returns the trading hours in force.
func (s *Session) Hours() availability.Hours { return s.hours }

// Tick records a new ShopTime and recomputes availability from that same
// instant. When the shop opens or closes between ticks the viewer is told.
// Tick matches clock.TickFunc.
func (s *Session) Tick(ctx context.Context, now time.Time) {
	s.mu.Lock()
	was := s.open
	s.now = now
	s.open = s.hours.Contains(now)
	open := s.open
	s.mu.Unlock()

	if open == was {
		return
	}

	s.log.Info("availability changed at %s: open=%v", now.Format(time.TimeOnly), open)
	// Closing goes out as urgent.
	s.notify(ctx, LineAvailability(open), !open)
}

// Now returns the latest ShopTime.
func (s *Session) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// IsOpen reports the availability derived from the latest ShopTime.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Menu returns the catalog.
func (s *Session) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.catalog.List(ctx)
}

// MenuItem returns a single catalog entry.
func (s *Session) MenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.catalog.Get(ctx, id)
}

// PlaceOrder appends an order for name and tells the viewer about it.
// An empty or whitespace-only name is rejected with ErrEmptyOrderName;
// the ledger is left as it was and nothing is announced.
func (s *Session) PlaceOrder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		s.log.Warn("rejected order with empty name")
		return domain.ErrEmptyOrderName
	}

	s.mu.Lock()
	err := s.ledger.Append(ctx, domain.OrderEntry{Name: name, PlacedAt: s.now})
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("recording order: %w", err)
	}

	s.log.Info("ordered %q", name)
	s.notify(ctx, LineOrdered(name), false)
	return nil
}

// OrderItem orders the catalog item with the given id.
func (s *Session) OrderItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("menu item %d: %w", id, err)
	}
	if err := s.PlaceOrder(ctx, item.Name); err != nil {
		return nil, err
	}
	return item, nil
}

// OrderByName resolves a typed name against the catalog and orders the
// catalog's spelling of it.
func (s *Session) OrderByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyOrderName
	}
	item, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("menu item %q: %w", name, err)
	}
	if err := s.PlaceOrder(ctx, item.Name); err != nil {
		return nil, err
	}
	return item, nil
}

// ClearOrders empties the ledger and tells the viewer. Clearing an empty
// ledger announces the same way.
func (s *Session) ClearOrders(ctx context.Context) error {
	s.mu.Lock()
	err := s.ledger.Clear(ctx)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("clearing orders: %w", err)
	}

	s.log.Info("orders cleared")
	s.notify(ctx, LineCleared(), false)
	return nil
}

// Orders returns the ledger contents in the order they were placed.
func (s *Session) Orders(ctx context.Context) ([]domain.OrderEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.List(ctx)
}

// Status returns a snapshot for the view.
func (s *Session) Status(ctx context.Context) domain.ShopStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := domain.ShopStatus{Now: s.now, Open: s.open}
	entries, err := s.ledger.List(ctx)
	if err != nil {
		s.log.Error("listing orders for status: %v", err)
		return st
	}
	st.Orders = len(entries)
	return st
}

// notify delivers a message without letting a delivery failure affect
// the caller.
func (s *Session) notify(ctx context.Context, msg string, urgent bool) {
	if s.notifier == nil {
		return
	}
	var err error
	if urgent {
		err = s.notifier.NotifyUrgent(ctx, msg)
	} else {
		err = s.notifier.Notify(ctx, msg)
	}
	if err != nil {
		s.log.Error("notify %q: %v", msg, err)
	}
}
