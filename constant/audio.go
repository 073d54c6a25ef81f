package constant

import "time"

// AudioEnabled toggles sound cues; missing audio hardware is not fatal
const AudioEnabled = true

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the effects.Volume exponent applied to every cue (base 2)
	AudioVolume = -2.0
)

// Sound Cues
const (
	PaddleHitFrequency = 880.0
	PaddleHitDuration  = 50 * time.Millisecond

	WallBounceFrequency = 440.0
	WallBounceDuration  = 30 * time.Millisecond

	PointFrequency = 220.0
	PointDuration  = 250 * time.Millisecond
)
