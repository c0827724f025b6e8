// Package audio opens the sound output. The game plays no sounds; the mixer
// is started so the device is claimed the same way on every backend.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Mixer owns the speaker and an empty beep mixer playing into it.
type Mixer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewMixer creates an idle mixer.
func NewMixer() *Mixer {
	return &Mixer{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Calling it again is a no-op.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Initialized reports whether the speaker is open.
func (m *Mixer) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Close stops the mixer and releases the speaker.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
