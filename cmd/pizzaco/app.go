package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/pizzaco/internal/display"
	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
	"github.com/hammamikhairi/pizzaco/internal/shop"
)

type cliApp struct {
	session  *shop.Session
	parser   domain.IntentParser
	log      *logger.Logger
	ui       *display.UI
	shopName string
}

func (a *cliApp) run(ctx context.Context) {
	a.showHeader()
	a.ui.Println("")
	a.showMenu(ctx)
	a.ui.PrintChat(display.FooterLine(a.session.IsOpen()))

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
	}
}

// handleIntent runs one gesture. It returns true when the user asked to leave.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentShowMenu:
		a.showMenu(ctx)
	case domain.IntentShowItem:
		a.showItem(ctx, intent.Payload)
	case domain.IntentOrder:
		a.order(ctx, intent.Payload)
	case domain.IntentShowOrders:
		a.showOrders(ctx)
	case domain.IntentClearOrders:
		a.clearOrders(ctx)
	case domain.IntentStatus:
		a.showStatus(ctx)
	case domain.IntentQuit:
		a.ui.PrintChat("Ciao!")
		return true
	default:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
	return false
}

func (a *cliApp) showHeader() {
	for i, line := range display.HeaderLines(a.shopName, a.session.IsOpen()) {
		if i == 0 {
			a.ui.PrintTitle(line)
		} else {
			a.ui.PrintHint(line)
		}
	}
}

func (a *cliApp) showMenu(ctx context.Context) {
	items, err := a.session.Menu(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading menu: %v", err))
		return
	}

	a.ui.PrintSection("Our Menu")
	for _, it := range items {
		a.ui.PrintItem(display.MenuLine(it))
		a.ui.PrintHint(display.IngredientsLine(it))
	}
	a.ui.PrintChat("Order by number (e.g. '2') or name (e.g. 'order funghi').")
}

func (a *cliApp) showItem(ctx context.Context, payload string) {
	item, err := a.resolve(ctx, payload)
	if err != nil {
		a.ui.PrintUrgent(a.describeErr(payload, err))
		return
	}
	lines := display.ItemDetailLines(*item)
	a.ui.PrintSection(lines[0])
	for _, l := range lines[1:] {
		a.ui.PrintHint(l)
	}
}

func (a *cliApp) order(ctx context.Context, payload string) {
	var err error
	if id, convErr := strconv.Atoi(payload); convErr == nil {
		_, err = a.session.OrderItem(ctx, id)
	} else {
		_, err = a.session.OrderByName(ctx, payload)
	}
	if err != nil {
		a.ui.PrintUrgent(a.describeErr(payload, err))
		return
	}
	a.refresh(ctx)
}

func (a *cliApp) showOrders(ctx context.Context) {
	entries, err := a.session.Orders(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading orders: %v", err))
		return
	}
	lines := display.OrderLines(entries)
	if len(lines) == 0 {
		a.ui.PrintHint("No orders yet.")
		return
	}
	a.ui.PrintSection(lines[0])
	for _, l := range lines[1:] {
		a.ui.PrintItem(l)
	}
	a.ui.PrintHint("Type 'clear' to clear your order.")
}

func (a *cliApp) clearOrders(ctx context.Context) {
	if err := a.session.ClearOrders(ctx); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error clearing orders: %v", err))
		return
	}
	a.refresh(ctx)
}

func (a *cliApp) showStatus(ctx context.Context) {
	a.ui.PrintChat(display.StatusLine(a.session.Status(ctx)))
	a.ui.PrintHint("Opening hours: " + a.session.Hours().String())
}

func (a *cliApp) showHelp() {
	a.ui.PrintSection("Commands:")
	a.ui.PrintHint("menu              show the menu")
	a.ui.PrintHint("<n> / order <n>   order pizza number n")
	a.ui.PrintHint("order <name>      order by name, e.g. 'order margherita'")
	a.ui.PrintHint("info <n|name>     show ingredients and price")
	a.ui.PrintHint("orders            list your orders")
	a.ui.PrintHint("clear             clear your order")
	a.ui.PrintHint("status            time and opening hours")
	a.ui.PrintHint("quit              leave the shop")
}

// refresh pushes the post-gesture status to the bar without waiting for
// the next tick.
func (a *cliApp) refresh(ctx context.Context) {
	a.ui.Refresh(a.session.Status(ctx))
}

// resolve finds a menu item by number or name.
func (a *cliApp) resolve(ctx context.Context, payload string) (*domain.MenuItem, error) {
	if id, err := strconv.Atoi(payload); err == nil {
		return a.session.MenuItem(ctx, id)
	}
	items, err := a.session.Menu(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(payload))
	for _, it := range items {
		n := strings.ToLower(it.Name)
		if n == q || n == "pizza "+q {
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *cliApp) describeErr(payload string, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("We don't have %q on the menu.", payload)
	case errors.Is(err, domain.ErrEmptyOrderName):
		return "Tell us which pizza you'd like."
	default:
		a.log.Error("gesture %q failed: %v", payload, err)
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
