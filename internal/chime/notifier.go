package chime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*Notifier)(nil)

// Sounder plays a block of PCM. *Player satisfies it.
type Sounder interface {
	Play(pcm []byte) error
}

// Notifier wraps a text notifier and plays a short chime after each
// message. Chimes play in the background; a cue that arrives while
// another is still sounding is dropped.
type Notifier struct {
	text    domain.Notifier
	sounder Sounder
	log     *logger.Logger

	notice []byte
	urgent []byte

	playing atomic.Bool
	wg      sync.WaitGroup
}

// NewNotifier creates a notifier that both prints and chimes.
func NewNotifier(text domain.Notifier, sounder Sounder, log *logger.Logger) *Notifier {
	return &Notifier{
		text:    text,
		sounder: sounder,
		log:     log.With("chime"),
		notice:  Tone(NoticeFreq, 120*time.Millisecond, SampleRate),
		urgent:  Tone(UrgentFreq, 250*time.Millisecond, SampleRate),
	}
}

// Notify prints the message and plays the normal cue.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	if err := n.text.Notify(ctx, message); err != nil {
		return err
	}
	n.play(n.notice)
	return nil
}

// NotifyUrgent prints the message and plays the urgent cue.
func (n *Notifier) NotifyUrgent(ctx context.Context, message string) error {
	if err := n.text.NotifyUrgent(ctx, message); err != nil {
		return err
	}
	n.play(n.urgent)
	return nil
}

// Wait blocks until any cue in flight has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) play(pcm []byte) {
	if !n.playing.CompareAndSwap(false, true) {
		n.log.Debug("cue already playing, skipping")
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer n.playing.Store(false)
		if err := n.sounder.Play(pcm); err != nil {
			n.log.Error("playing cue: %v", err)
		}
	}()
}
