package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentShowMenu
	IntentShowItem
	IntentOrder
	IntentShowOrders
	IntentClearOrders
	IntentStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentShowMenu:
		return "show_menu"
	case IntentShowItem:
		return "show_item"
	case IntentOrder:
		return "order"
	case IntentShowOrders:
		return "show_orders"
	case IntentClearOrders:
		return "clear_orders"
	case IntentStatus:
		return "status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // item id or name for order/show_item, raw input for unknown
}
