package audio

import (
	"math"
)

// Cue identifies a sound played in response to a worm action
type Cue int

const (
	CueStep   Cue = iota // Successful move
	CueTurn              // Successful turn
	CueJump              // Jump launch, length follows flight time
	CueReject            // Operation refused by the worm
	cueCount
)

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueStep:   0.4,
			CueTurn:   0.3,
			CueJump:   0.8,
			CueReject: 0.7,
		},
	}
}

// volume returns the effective gain of a cue in [0, 1]
func (c *AudioConfig) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return math.Max(0, math.Min(1, v*c.MasterVolume))
}
