// Package audio plays sound effects for simulation events.
// Sounds are synthesized with beep; playback failures leave the manager silent.
package audio

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ball-arena/internal/config"
	"github.com/vovakirdan/ball-arena/internal/core"
)

// ErrDisabled is returned by Start when audio is turned off in the config.
var ErrDisabled = errors.New("audio disabled")

// Sink receives finished streamers for playback.
type Sink interface {
	Play(s beep.Streamer)
}

// speakerSink feeds a mixer attached to the system speaker.
type speakerSink struct {
	mixer *beep.Mixer
}

func (s speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Manager turns bounce and elimination events into sounds.
type Manager struct {
	mu       sync.Mutex
	cfg      config.AudioConfig
	rate     beep.SampleRate
	rng      *rand.Rand
	sink     Sink
	speaker  *beep.Mixer
	disabled bool
}

// New creates a silent manager. Call Start or SetSink to enable playback.
func New(cfg config.AudioConfig, seed int64) *Manager {
	return &Manager{
		cfg:      cfg,
		rate:     beep.SampleRate(cfg.SampleRate),
		rng:      rand.New(rand.NewSource(seed)),
		disabled: !cfg.Enabled,
	}
}

// Start opens the system speaker. On error the manager stays silent and the
// caller decides whether to log it.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disabled {
		return ErrDisabled
	}
	if m.speaker != nil {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	m.speaker = mixer
	m.sink = speakerSink{mixer: mixer}
	return nil
}

// SetSink routes playback to s instead of the speaker.
func (m *Manager) SetSink(s Sink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sink = s
}

// Active reports whether events will produce sound.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sink != nil && !m.disabled
}

// Handle plays one randomly chosen sound per event, eliminations first, up to
// the per-frame voice cap. It returns the number of sounds started.
func (m *Manager) Handle(events []core.Event) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sink == nil || m.disabled || len(events) == 0 {
		return 0
	}

	started := 0
	for _, kind := range [...]core.EventKind{core.EventEliminated, core.EventBounce} {
		for _, ev := range events {
			if ev.Kind != kind {
				continue
			}
			if m.cfg.MaxVoices > 0 && started >= m.cfg.MaxVoices {
				return started
			}
			snd := m.choose(kind)
			m.sink.Play(newVolume(snd.Build(m.rate), m.cfg.Volume))
			started++
		}
	}
	return started
}

// choose picks a sound for the event kind at random.
func (m *Manager) choose(kind core.EventKind) Sound {
	bank := bounceSounds
	if kind == core.EventEliminated {
		bank = eliminationSounds
	}
	return bank[m.rng.Intn(len(bank))]
}

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.speaker != nil {
		speaker.Lock()
		m.speaker.Clear()
		speaker.Unlock()
		speaker.Close()
		m.speaker = nil
	}
	m.sink = nil
}
