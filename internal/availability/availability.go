// Package availability decides whether the shop is open at a given time.
package availability

import (
	"fmt"
	"time"
)

// Hours is a half-open range of local hours-of-day, [Open, Close).
type Hours struct {
	Open  int
	Close int
}

// Default is the shop's regular trading window, 10:00 until 22:00.
var Default = Hours{Open: 10, Close: 22}

// Validate reports whether the range is usable.
func (h Hours) Validate() error {
	if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
		return fmt.Errorf("invalid opening hours [%d, %d)", h.Open, h.Close)
	}
	return nil
}

// Contains reports whether t's local hour falls inside the range.
// Minutes and seconds are ignored.
func (h Hours) Contains(t time.Time) bool {
	hour := t.Local().Hour()
	return hour >= h.Open && hour < h.Close
}

// String formats the range as "10:00-22:00".
func (h Hours) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", h.Open, h.Close)
}

// IsOpen reports whether the shop is open at t under the default hours.
func IsOpen(t time.Time) bool {
	return Default.Contains(t)
}
