package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timing
const (
	stepDuration   = 40 * time.Millisecond
	turnDuration   = 60 * time.Millisecond
	rejectDuration = 150 * time.Millisecond

	// Jump chirps are clamped so a long flight does not drone
	jumpMinDuration = 80 * time.Millisecond
	jumpMaxDuration = 1500 * time.Millisecond

	cueAttack  = 5 * time.Millisecond
	cueRelease = 20 * time.Millisecond
)

// sweep generates a sine whose frequency moves linearly from start to end over its duration
type sweep struct {
	rate      beep.SampleRate
	startFreq float64
	endFreq   float64
	phase     float64
	position  int
	duration  int
	harmonics bool
}

// NewSweep creates a frequency sweep; equal frequencies give a plain tone
// harmonics adds 2nd and 3rd partials for a harsher timbre
func NewSweep(startFreq, endFreq float64, duration time.Duration, harmonics bool, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:      rate,
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		harmonics: harmonics,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		if s.harmonics {
			val = 0.6*val + 0.3*math.Sin(4*math.Pi*s.phase) + 0.1*math.Sin(6*math.Pi*s.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain; math.Log2(0) is -Inf so zero gain is marked silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// jumpDuration maps a flight time in seconds to the chirp length
func jumpDuration(flight float64) time.Duration {
	if math.IsNaN(flight) || flight <= jumpMinDuration.Seconds() {
		return jumpMinDuration
	}
	if flight >= jumpMaxDuration.Seconds() {
		return jumpMaxDuration
	}
	return time.Duration(flight * float64(time.Second))
}

// CueStreamer returns the sound for a cue
// flight is the jump time in seconds and only affects CueJump
func CueStreamer(cue Cue, flight float64, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var (
		s beep.Streamer
		d time.Duration
	)
	switch cue {
	case CueStep:
		d = stepDuration
		s = NewSweep(220, 180, d, false, rate)
	case CueTurn:
		d = turnDuration
		s = NewSweep(330, 440, d, false, rate)
	case CueJump:
		d = jumpDuration(flight)
		// Rise to the apex, fall to landing
		s = beep.Seq(
			NewSweep(300, 900, d/2, false, rate),
			NewSweep(900, 260, d-d/2, false, rate),
		)
	case CueReject:
		d = rejectDuration
		s = NewSweep(120, 120, d, true, rate)
	default:
		return nil
	}

	shaped := NewEnvelope(s, d, cueAttack, cueRelease, rate)
	return newVolume(shaped, cfg.volume(cue))
}
