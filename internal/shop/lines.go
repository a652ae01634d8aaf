package shop

import "fmt"

// User-facing notification text. The order and clear lines are fixed
// wording; change them with care.

func LineOrdered(name string) string {
	return fmt.Sprintf("You have ordered %s!", name)
}

func LineCleared() string {
	return "Your order has been cleared!"
}

func LineOpen() string {
	return "We're currently open"
}

func LineClosed() string {
	return "Sorry, we're closed"
}

// LineAvailability picks LineOpen or LineClosed.
func LineAvailability(open bool) string {
	if open {
		return LineOpen()
	}
	return LineClosed()
}
