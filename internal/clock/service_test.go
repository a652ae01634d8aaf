package clock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hammamikhairi/pizzaco/internal/logger"
)

var epoch = time.Date(2024, time.March, 14, 9, 59, 58, 0, time.Local)

func setupService(t *testing.T) (*Service, *clockwork.FakeClock, chan time.Time) {
	t.Helper()
	fc := clockwork.NewFakeClockAt(epoch)
	svc := New(logger.New(logger.LevelOff, nil), WithClock(fc))
	ticks := make(chan time.Time, 16)
	svc.Subscribe(func(_ context.Context, now time.Time) { ticks <- now })
	return svc, fc, ticks
}

func waitTick(t *testing.T, ticks <-chan time.Time) time.Time {
	t.Helper()
	select {
	case now := <-ticks:
		return now
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
		return time.Time{}
	}
}

func TestServiceEmitsTimeEachInterval(t *testing.T) {
	svc, fc, ticks := setupService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	for i := 1; i <= 3; i++ {
		fc.Advance(time.Second)
		got := waitTick(t, ticks)
		want := epoch.Add(time.Duration(i) * time.Second)
		if !got.Equal(want) {
			t.Fatalf("tick %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestServiceNoTickBeforeInterval(t *testing.T) {
	svc, fc, ticks := setupService(t)
	svc.Start(context.Background())
	defer svc.Stop()

	fc.Advance(999 * time.Millisecond)
	select {
	case now := <-ticks:
		t.Fatalf("unexpected tick at %s", now)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServiceCustomInterval(t *testing.T) {
	fc := clockwork.NewFakeClockAt(epoch)
	svc := New(logger.New(logger.LevelOff, nil), WithClock(fc), WithInterval(5*time.Second))
	ticks := make(chan time.Time, 4)
	svc.Subscribe(func(_ context.Context, now time.Time) { ticks <- now })

	if svc.Interval() != 5*time.Second {
		t.Fatalf("expected 5s interval, got %s", svc.Interval())
	}

	svc.Start(context.Background())
	defer svc.Stop()

	fc.Advance(5 * time.Second)
	if got := waitTick(t, ticks); !got.Equal(epoch.Add(5 * time.Second)) {
		t.Fatalf("unexpected tick time %s", got)
	}
}

func TestServiceSubscribersShareInstantInOrder(t *testing.T) {
	fc := clockwork.NewFakeClockAt(epoch)
	svc := New(logger.New(logger.LevelOff, nil), WithClock(fc))

	var mu sync.Mutex
	var order []string
	var seen []time.Time
	done := make(chan struct{}, 1)

	svc.Subscribe(func(_ context.Context, now time.Time) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, "first")
		seen = append(seen, now)
	})
	svc.Subscribe(func(_ context.Context, now time.Time) {
		mu.Lock()
		order = append(order, "second")
		seen = append(seen, now)
		mu.Unlock()
		done <- struct{}{}
	})

	svc.Start(context.Background())
	defer svc.Stop()

	fc.Advance(time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for subscribers")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected subscriber order: %v", order)
	}
	if !seen[0].Equal(seen[1]) {
		t.Fatalf("subscribers saw different instants: %v", seen)
	}
}

func TestServiceStopHaltsTicks(t *testing.T) {
	svc, fc, ticks := setupService(t)
	svc.Start(context.Background())

	fc.Advance(time.Second)
	waitTick(t, ticks)

	svc.Stop()
	if svc.Running() {
		t.Fatal("expected service to report stopped")
	}

	fc.Advance(5 * time.Second)
	select {
	case now := <-ticks:
		t.Fatalf("tick after Stop at %s", now)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServiceStopIsIdempotent(t *testing.T) {
	svc, _, _ := setupService(t)

	// Before Start.
	svc.Stop()

	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()

	if svc.Running() {
		t.Fatal("expected service stopped")
	}
}

func TestServiceStartTwiceIsNoop(t *testing.T) {
	svc, fc, ticks := setupService(t)
	ctx := context.Background()
	svc.Start(ctx)
	svc.Start(ctx)
	defer svc.Stop()

	fc.Advance(time.Second)
	waitTick(t, ticks)

	// A second loop would deliver a duplicate tick.
	select {
	case now := <-ticks:
		t.Fatalf("duplicate tick at %s", now)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServiceRestartAfterStop(t *testing.T) {
	svc, fc, ticks := setupService(t)
	ctx := context.Background()

	svc.Start(ctx)
	svc.Stop()
	svc.Start(ctx)
	defer svc.Stop()

	fc.Advance(time.Second)
	waitTick(t, ticks)
}

func TestServiceStopsWithParentContext(t *testing.T) {
	svc, fc, ticks := setupService(t)
	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	cancel()

	// Stop must still return once the loop has observed cancellation.
	stopped := make(chan struct{})
	go func() {
		svc.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after parent cancellation")
	}

	fc.Advance(time.Second)
	select {
	case now := <-ticks:
		t.Fatalf("tick after cancellation at %s", now)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestServiceRealClock(t *testing.T) {
	svc := New(logger.New(logger.LevelOff, nil), WithInterval(10*time.Millisecond))
	ticks := make(chan time.Time, 64)
	svc.Subscribe(func(_ context.Context, now time.Time) {
		select {
		case ticks <- now:
		default:
		}
	})

	svc.Start(context.Background())
	first := waitTick(t, ticks)
	second := waitTick(t, ticks)
	svc.Stop()

	if !second.After(first) {
		t.Fatalf("expected advancing timestamps, got %s then %s", first, second)
	}
}
