// Package audio plays short synthesised sounds for simulation events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one of the effects.
type Sound int

const (
	SoundEat Sound = iota
	SoundHurt
	SoundHit
	SoundShot
)

// soundFor maps an event to the effect it triggers.
func soundFor(kind engine.EventKind) (Sound, bool) {
	switch kind {
	case engine.EventGrew, engine.EventAteFoodRemotely:
		return SoundEat, true
	case engine.EventCollided, engine.EventDied:
		return SoundHurt, true
	case engine.EventProjectileImpact:
		return SoundHit, true
	case engine.EventProjectileFired:
		return SoundShot, true
	}
	return 0, false
}

func (s Sound) streamer() beep.Streamer {
	switch s {
	case SoundEat:
		return NewTone(sampleRate, 440, 880, 80*time.Millisecond, 0)
	case SoundHurt:
		return NewTone(sampleRate, 220, 60, 350*time.Millisecond, 0.6)
	case SoundHit:
		return NewTone(sampleRate, 900, 300, 60*time.Millisecond, 0.3)
	default:
		return NewTone(sampleRate, 1200, 700, 30*time.Millisecond, 0.2)
	}
}

// Manager turns engine events into sounds. The speaker is opened lazily on
// the first sound; if that fails the manager stays silent.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      float64
	initialized bool
	failed      bool
	logger      *log.Logger
	initSpeaker func() error
}

// NewManager creates a manager from the audio settings.
func NewManager(cfg config.AudioConfig, logger *log.Logger) *Manager {
	m := &Manager{
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		logger:  logger,
	}
	m.initSpeaker = func() error {
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			return err
		}
		speaker.Play(m.mixer)
		return nil
	}
	return m
}

// HandleEvent implements game.EventSink.
func (m *Manager) HandleEvent(e engine.Event) {
	if s, ok := soundFor(e.Kind); ok {
		m.Play(s)
	}
}

// Play mixes a sound in.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.volume <= 0 || !m.ensureSpeaker() {
		return
	}
	v := &effects.Volume{
		Streamer: s.streamer(),
		Base:     2,
		Volume:   math.Log2(math.Min(m.volume, 1)),
	}
	speaker.Lock()
	m.mixer.Add(v)
	speaker.Unlock()
}

// ensureSpeaker opens the speaker once. Call with mu held.
func (m *Manager) ensureSpeaker() bool {
	if m.initialized {
		return true
	}
	if m.failed {
		return false
	}
	if err := m.initSpeaker(); err != nil {
		m.failed = true
		if m.logger != nil {
			m.logger.Warn("audio unavailable, continuing silently", "err", err)
		}
		return false
	}
	m.initialized = true
	return true
}

// SetEnabled mutes or unmutes the manager.
func (m *Manager) SetEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = on
}

// Close stops all playing sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
