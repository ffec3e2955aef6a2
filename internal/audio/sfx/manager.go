package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blockshoot/internal/audio"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays effects through the system speaker.
// It implements audio.Player and is safe for concurrent use.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues s on the mixer. Sounds are dropped before Initialize.
func (sm *SoundManager) Play(s audio.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := CreateSound(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}

	// The speaker goroutine reads the mixer, so adds go through its lock.
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup stops all sounds and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer = &beep.Mixer{}
	sm.initialized = false
}
