package availability

import (
	"testing"
	"time"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2024, time.March, 14, hour, min, sec, 0, time.Local)
}

func TestIsOpenBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{0, false},
		{9, false},
		{10, true},
		{15, true},
		{21, true},
		{22, false},
		{23, false},
	}

	for _, tt := range tests {
		t.Run(time.Duration(tt.hour*int(time.Hour)).String(), func(t *testing.T) {
			if got := IsOpen(at(tt.hour, 0, 0)); got != tt.want {
				t.Fatalf("IsOpen(hour=%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}
}

func TestIsOpenIgnoresMinutesAndSeconds(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := IsOpen(at(hour, 0, 0))
		for _, ms := range [][2]int{{0, 1}, {30, 0}, {59, 59}} {
			if got := IsOpen(at(hour, ms[0], ms[1])); got != want {
				t.Fatalf("hour %d %02d:%02d: got %v, want %v", hour, ms[0], ms[1], got, want)
			}
		}
	}
}

func TestIsOpenUsesLocalHour(t *testing.T) {
	local := at(15, 0, 0)
	// Same instant expressed in another zone must give the same answer.
	shifted := local.In(time.FixedZone("far-away", 11*3600))
	if IsOpen(local) != IsOpen(shifted) {
		t.Fatal("result depends on the zone the timestamp is expressed in")
	}
}

func TestHoursContains(t *testing.T) {
	h := Hours{Open: 0, Close: 24}
	for hour := 0; hour < 24; hour++ {
		if !h.Contains(at(hour, 0, 0)) {
			t.Fatalf("round-the-clock hours should contain %d:00", hour)
		}
	}

	late := Hours{Open: 18, Close: 23}
	if late.Contains(at(17, 59, 59)) || !late.Contains(at(18, 0, 0)) || late.Contains(at(23, 0, 0)) {
		t.Fatal("custom hours boundaries are wrong")
	}
}

func TestHoursValidate(t *testing.T) {
	tests := []struct {
		h       Hours
		wantErr bool
	}{
		{Default, false},
		{Hours{0, 24}, false},
		{Hours{10, 10}, true},
		{Hours{22, 10}, true},
		{Hours{-1, 10}, true},
		{Hours{10, 25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			err := tt.h.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
