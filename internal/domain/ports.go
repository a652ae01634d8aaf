package domain

import "context"

// Catalog provides the fixed menu. Implementations never expose a way to
// change it; every returned item is a copy.
type Catalog interface {
	List(ctx context.Context) ([]MenuItem, error)
	Get(ctx context.Context, id int) (*MenuItem, error)
	FindByName(ctx context.Context, name string) (*MenuItem, error)
}

// OrderLedger stores placed orders in insertion order. Duplicates are
// allowed; entries are never reordered.
type OrderLedger interface {
	Append(ctx context.Context, entry OrderEntry) error
	Clear(ctx context.Context) error
	List(ctx context.Context) ([]OrderEntry, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers one-off messages to the user. Implementations can
// write to the terminal, play a sound, or both.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
