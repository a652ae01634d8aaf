package ledger

import (
	"context"
	"testing"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

func names(t *testing.T, l *Memory) []string {
	t.Helper()
	entries, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestMemoryAppendPreservesOrderAndDuplicates(t *testing.T) {
	l := NewMemory(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	for _, n := range []string{"A", "B", "A"} {
		if err := l.Append(ctx, domain.OrderEntry{Name: n}); err != nil {
			t.Fatalf("append %s: %v", n, err)
		}
	}

	got := names(t, l)
	want := []string{"A", "B", "A"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("expected Len 3, got %d", l.Len())
	}
}

func TestMemoryClearIsIdempotent(t *testing.T) {
	l := NewMemory(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	// Clearing an empty ledger.
	if err := l.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}

	l.Append(ctx, domain.OrderEntry{Name: "Pizza Spinaci"})
	l.Append(ctx, domain.OrderEntry{Name: "Pizza Spinaci"})

	for i := 0; i < 2; i++ {
		if err := l.Clear(ctx); err != nil {
			t.Fatalf("clear %d: %v", i, err)
		}
		if got := names(t, l); len(got) != 0 {
			t.Fatalf("expected empty ledger after clear %d, got %v", i, got)
		}
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	l := NewMemory(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	l.Append(ctx, domain.OrderEntry{Name: "Pizza Funghi"})

	entries, _ := l.List(ctx)
	entries[0].Name = "tampered"

	if got := names(t, l); got[0] != "Pizza Funghi" {
		t.Fatalf("ledger mutated through List result: %v", got)
	}
}

func TestMemoryListEmptyIsNotNil(t *testing.T) {
	l := NewMemory(logger.New(logger.LevelOff, nil))
	entries, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries == nil {
		t.Fatal("expected non-nil empty slice")
	}
}
