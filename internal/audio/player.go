package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/roadrush/internal/games/road"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects on the default output device. It falls back to
// silent mode when no device is available, so callers never need to check.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
	muted       bool
	logger      *log.Logger
}

// Ensure Player implements road.AudioSink
var _ road.AudioSink = (*Player)(nil)

// NewPlayer creates a player. A nil logger discards output.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for logging only.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, running silent", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(p.rate))
	return nil
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues the sound on the mixer and returns immediately.
func (p *Player) Play(s road.Sound, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || volume <= 0 {
		return
	}
	st := Effect(s, volume, p.rate)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
