// Package chime plays short audible cues alongside text notifications.
package chime

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio parameters shared by the tone generator and the player.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Cue frequencies in Hz.
const (
	NoticeFreq = 880.0  // A5
	UrgentFreq = 1318.5 // E6
)

const (
	amplitude = 0.3
	fade      = 5 * time.Millisecond
)

// Tone returns signed 16-bit little-endian mono PCM for a sine wave at
// freq lasting d. The first and last few milliseconds are faded to avoid
// clicks.
func Tone(freq float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 || freq <= 0 {
		return nil
	}

	fadeN := int(fade.Seconds() * float64(sampleRate))
	if fadeN*2 > n {
		fadeN = n / 2
	}

	buf := make([]byte, n*BitDepth/8)
	for i := 0; i < n; i++ {
		gain := amplitude
		switch {
		case fadeN > 0 && i < fadeN:
			gain *= float64(i) / float64(fadeN)
		case fadeN > 0 && i >= n-fadeN:
			gain *= float64(n-1-i) / float64(fadeN)
		}
		v := gain * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}
