// Package catalog provides the fixed pizza menu.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*MemoryCatalog)(nil)

//go:embed menu.json
var defaultMenu []byte

// MemoryCatalog holds the menu in memory. It is populated once by the
// constructor and only read afterwards, so it needs no locking.
type MemoryCatalog struct {
	items []domain.MenuItem // sorted by ID
	byID  map[int]int       // ID -> index into items
	log   *logger.Logger
}

// NewMemoryCatalog creates a catalog preloaded with the built-in menu.
func NewMemoryCatalog(log *logger.Logger) (*MemoryCatalog, error) {
	return Load(defaultMenu, log)
}

// Load decodes a JSON menu table and validates it: at least one item,
// unique positive IDs, non-empty names.
func Load(data []byte, log *logger.Logger) (*MemoryCatalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var items []domain.MenuItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decoding menu: %v", domain.ErrInvalidCatalog, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: menu is empty", domain.ErrInvalidCatalog)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	byID := make(map[int]int, len(items))
	for i, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive id %d", domain.ErrInvalidCatalog, it.Name, it.ID)
		}
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("%w: item %d has no name", domain.ErrInvalidCatalog, it.ID)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", domain.ErrInvalidCatalog, it.ID)
		}
		byID[it.ID] = i
	}

	log.Debug("catalog loaded, items=%d", len(items))
	return &MemoryCatalog{items: items, byID: byID, log: log}, nil
}

// List returns every item in ID order.
func (c *MemoryCatalog) List(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out, nil
}

// Get returns a menu item by ID.
func (c *MemoryCatalog) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	idx, ok := c.byID[id]
	if !ok {
		c.log.Debug("menu item not found: %d", id)
		return nil, domain.ErrNotFound
	}
	it := c.items[idx].Clone()
	return &it, nil
}

// FindByName returns the item whose name matches, ignoring case and
// surrounding whitespace. "margherita" also matches "Pizza Margherita".
func (c *MemoryCatalog) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil, domain.ErrNotFound
	}
	for _, it := range c.items {
		n := strings.ToLower(it.Name)
		if n == q || n == "pizza "+q {
			out := it.Clone()
			return &out, nil
		}
	}
	c.log.Debug("menu item not found: %q", name)
	return nil, domain.ErrNotFound
}

// Len returns the number of items on the menu.
func (c *MemoryCatalog) Len() int { return len(c.items) }
