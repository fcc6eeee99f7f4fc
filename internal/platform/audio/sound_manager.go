// Package audio plays synthesized sound cues through the system speaker.
// Cues are generated on the fly; no sample assets ship with the binary.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/quietbit/skyhop/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker and mixes short cue streams into it.
// All methods are safe to call before Initialize; they become no-ops.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Over SSH or on headless hosts the
// speaker may be unavailable; callers should treat an error as "play muted".
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// Play queues the given cue. Unknown cues are ignored.
func (sm *SoundManager) Play(cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var freq float64
	var duration time.Duration
	switch cue {
	case core.SoundJump:
		freq, duration = 440, 200*time.Millisecond
	case core.SoundCollect:
		freq, duration = 880, 300*time.Millisecond
	case core.SoundDeath:
		freq, duration = 220, 500*time.Millisecond
	default:
		return
	}

	samples := sampleRate.N(duration)
	streamer := beep.Take(samples, NewToneGenerator(sampleRate, freq, samples))
	sm.mixer.Add(streamer)
}

// ToneGenerator generates a sine tone with a linear fade-out over its
// whole length, so cues end without a click.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

// NewToneGenerator creates a fading tone generator of the given length
// in samples.
func NewToneGenerator(sr beep.SampleRate, freq float64, length int) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		length: length,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.length > 0 {
			envelope = 1.0 - float64(g.pos)/float64(g.length)
			if envelope < 0 {
				envelope = 0
			}
		}

		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
