// Package domain defines the core types and interfaces for the storefront.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// MenuItem is a single orderable pizza. Items are defined once at startup
// and never mutated.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`       // relative asset path
	Ingredients []string `json:"ingredients"` // display order
	Price       string   `json:"price"`       // pre-formatted, never parsed
}

// Clone returns a deep copy of the item.
func (m MenuItem) Clone() MenuItem {
	out := m
	out.Ingredients = append([]string(nil), m.Ingredients...)
	return out
}

// OrderEntry is one placed order, captured from a MenuItem at order time.
type OrderEntry struct {
	Name     string
	PlacedAt time.Time
}

// ShopStatus is a read-only snapshot of the session for the view.
type ShopStatus struct {
	Now    time.Time
	Open   bool
	Orders int
}
