package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Menu
		{"menu", domain.IntentShowMenu, ""},
		{"LIST", domain.IntentShowMenu, ""},
		{"m", domain.IntentShowMenu, ""},

		// Ordering by number
		{"1", domain.IntentOrder, "1"},
		{"6", domain.IntentOrder, "6"},
		{"12", domain.IntentOrder, "12"},
		{"order 3", domain.IntentOrder, "3"},
		{"order Pizza Margherita", domain.IntentOrder, "Pizza Margherita"},
		{"buy   funghi ", domain.IntentOrder, "funghi"},

		// Item details
		{"info 4", domain.IntentShowItem, "4"},
		{"ingredients focaccia", domain.IntentShowItem, "focaccia"},

		// Orders
		{"orders", domain.IntentShowOrders, ""},
		{"cart", domain.IntentShowOrders, ""},
		{"o", domain.IntentShowOrders, ""},

		// Clear
		{"clear", domain.IntentClearOrders, ""},
		{"Clear Order", domain.IntentClearOrders, ""},
		{"reset", domain.IntentClearOrders, ""},

		// Status
		{"status", domain.IntentStatus, ""},
		{"open?", domain.IntentStatus, ""},
		{"hours", domain.IntentStatus, ""},

		// Help / quit
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"pineapple please", domain.IntentUnknown, "pineapple please"},
		{"123", domain.IntentUnknown, "123"},
		{"order", domain.IntentUnknown, "order"},
		{"   ", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Fatalf("input %q: expected %s, got %s", tt.input, tt.wantType, intent.Type)
			}
			if intent.Payload != tt.wantPayload {
				t.Fatalf("input %q: expected payload %q, got %q", tt.input, tt.wantPayload, intent.Payload)
			}
		})
	}
}
