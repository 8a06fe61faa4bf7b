package alert

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Player plays a Tone through the speaker. When the speaker cannot be opened it rings
// the terminal bell instead.
type Player struct {
	tone   Tone
	volume float64
	bell   io.Writer
	logger *slog.Logger

	once    sync.Once
	initErr error

	// swapped in tests
	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

// NewPlayer creates a Player. volume is the effects.Volume exponent (base 2), 0 leaves
// the tone unchanged. bell receives "\a" when audio is unavailable.
func NewPlayer(tone Tone, volume float64, bell io.Writer, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		tone:        tone,
		volume:      volume,
		bell:        bell,
		logger:      logger,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Alert plays the tone in the background and returns immediately
func (p *Player) Alert() {
	go p.playNow()
}

func (p *Player) playNow() {
	p.once.Do(func() {
		p.initErr = p.initSpeaker(p.tone.SampleRate, p.tone.SampleRate.N(time.Second/10))
		if p.initErr != nil {
			p.logger.Warn("audio unavailable, falling back to terminal bell", "error", p.initErr)
		}
	})

	if p.initErr != nil {
		if p.bell != nil {
			fmt.Fprint(p.bell, "\a")
		}
		return
	}

	p.play(&effects.Volume{
		Streamer: p.tone.Streamer(),
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	})
}

// Silent never makes a sound
type Silent struct{}

func (Silent) Alert() {}
