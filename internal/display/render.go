package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/shop"
)

// Tagline is shown under the shop name while the shop is open.
const Tagline = "Authentic Italian Cuisine"

// The helpers below turn storefront state into plain text lines. They
// carry no styling so the UI can pick a style per line.

// HeaderLines returns the shop name, plus the tagline when open.
func HeaderLines(name string, open bool) []string {
	lines := []string{name}
	if open {
		lines = append(lines, Tagline)
	}
	return lines
}

// MenuLine renders one menu row, e.g. "[2] Pizza Margherita · $12.00".
func MenuLine(item domain.MenuItem) string {
	return fmt.Sprintf("[%d] %s · %s", item.ID, item.Name, item.Price)
}

// IngredientsLine joins the ingredients in display order.
func IngredientsLine(item domain.MenuItem) string {
	return strings.Join(item.Ingredients, ", ")
}

// ItemDetailLines renders a single item with one ingredient per line.
func ItemDetailLines(item domain.MenuItem) []string {
	lines := []string{
		fmt.Sprintf("%s (#%d)", item.Name, item.ID),
		"Ingredients:",
	}
	for _, ing := range item.Ingredients {
		lines = append(lines, "  - "+ing)
	}
	lines = append(lines, "Price: "+item.Price)
	if item.Image != "" {
		lines = append(lines, "Image: "+item.Image)
	}
	return lines
}

// OrderLines lists the ledger under a heading. An empty ledger renders
// nothing.
func OrderLines(entries []domain.OrderEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "Your Orders:")
	for i, e := range entries {
		line := fmt.Sprintf("%d. %s", i+1, e.Name)
		if !e.PlacedAt.IsZero() {
			line += fmt.Sprintf(" (%s)", e.PlacedAt.Format("15:04"))
		}
		lines = append(lines, line)
	}
	return lines
}

// FooterLine is the open/closed notice under the menu.
func FooterLine(open bool) string {
	return shop.LineAvailability(open)
}

// StatusLine summarises the session for the status bar.
func StatusLine(st domain.ShopStatus) string {
	return strings.Join([]string{
		st.Now.Format(time.TimeOnly),
		FooterLine(st.Open),
		orderCount(st.Orders),
	}, "  │  ")
}
