// Package clock implements the background clock that drives every
// time-derived piece of storefront state.
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// TickFunc receives the wall-clock time read at each tick.
type TickFunc func(ctx context.Context, now time.Time)

// Option configures the service.
type Option func(*Service)

// WithInterval sets how often the service ticks.
func WithInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock swaps the time source. Tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// Service emits the current time once per interval to its subscribers.
type Service struct {
	clock    clockwork.Clock
	log      *logger.Logger
	interval time.Duration

	mu          sync.Mutex
	subscribers []TickFunc
	running     bool
	cancel      context.CancelFunc
	done        chan struct{}
}

// New creates a clock service with the given options. The default
// interval is one second on the real wall clock.
func New(log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		clock:    clockwork.NewRealClock(),
		log:      log.With("clock"),
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called on every tick. Subscribers run in
// registration order on the service goroutine.
func (s *Service) Subscribe(fn TickFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Now returns the current time from the service's time source.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Interval returns the tick interval.
func (s *Service) Interval() time.Duration {
	return s.interval
}

// Start begins the background tick loop. Non-blocking.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	// Create the ticker before returning so a tick can never be missed
	// between Start and the goroutine being scheduled.
	ticker := s.clock.NewTicker(s.interval)
	go s.loop(childCtx, ticker, s.done)

	s.log.Info("started (interval=%s)", s.interval)
}

// Stop cancels the tick loop and waits for it to exit. Calling Stop more
// than once, or before Start, does nothing. It must not be called from a
// subscriber.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	done := s.done
	s.mu.Unlock()

	<-done
	s.log.Info("stopped")
}

// Running reports whether the tick loop is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) loop(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.tick(ctx)
		}
	}
}

// tick reads the clock once and hands that same instant to every
// subscriber.
func (s *Service) tick(ctx context.Context) {
	now := s.clock.Now()

	s.mu.Lock()
	subs := append([]TickFunc(nil), s.subscribers...)
	s.mu.Unlock()

	s.log.Debug("tick %s (subscribers=%d)", now.Format(time.TimeOnly), len(subs))
	for _, fn := range subs {
		fn(ctx, now)
	}
}
