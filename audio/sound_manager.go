package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// cue is a short fixed-pitch tone
type cue struct {
	frequency float64
	duration  time.Duration
}

var (
	cuePaddleHit  = cue{constant.PaddleHitFrequency, constant.PaddleHitDuration}
	cueWallBounce = cue{constant.WallBounceFrequency, constant.WallBounceDuration}
	cuePoint      = cue{constant.PointFrequency, constant.PointDuration}
)

// SoundManager plays match sound cues through the speaker mixer
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues; beep has no speaker close, so the device stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PaddleHit plays the paddle contact cue
func (sm *SoundManager) PaddleHit() { sm.play(cuePaddleHit) }

// WallBounce plays the wall contact cue
func (sm *SoundManager) WallBounce() { sm.play(cueWallBounce) }

// Point plays the scoring cue
func (sm *SoundManager) Point() { sm.play(cuePoint) }

func (sm *SoundManager) play(c cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := newCueStreamer(sampleRate, c)
	if err != nil {
		log.Printf("Audio cue %.0fHz skipped: %v", c.frequency, err)
		return
	}

	// The mixer is drained on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// newCueStreamer builds a finite, attenuated sine tone for one cue
func newCueStreamer(sr beep.SampleRate, c cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, c.frequency)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", c.frequency)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(c.duration), sine),
		Base:     2,
		Volume:   constant.AudioVolume,
	}, nil
}
