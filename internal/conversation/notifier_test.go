package conversation

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hammamikhairi/pizzaco/internal/logger"
)

func TestCLINotifierPrintsMessages(t *testing.T) {
	var lines []string
	printFn := func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), printFn)
	ctx := context.Background()

	if err := n.Notify(ctx, "You have ordered Pizza Funghi!"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(ctx, "Sorry, we're closed"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 printed lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "You have ordered Pizza Funghi!") {
		t.Fatalf("normal line missing message: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Sorry, we're closed") {
		t.Fatalf("urgent line missing message: %q", lines[1])
	}
}
