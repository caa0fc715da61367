package main

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worms/audio"
	"github.com/lixenwraith/worms/config"
	"github.com/lixenwraith/worms/facade"
	"github.com/lixenwraith/worms/worm"
)

const (
	turnStep   = math.Pi / 8
	radiusStep = 0.05
	moveStep   = 1

	// Trajectory preview resolution
	previewSamples = 24
)

// jumpAnimation replays precomputed in-flight positions after the jump is committed
type jumpAnimation struct {
	start  time.Time
	flight float64 // Seconds of simulated flight
	frames [][]float64
}

// Sandbox drives one worm from keyboard input and draws it on a tcell screen
type Sandbox struct {
	screen        tcell.Screen
	width, height int

	cfg    *config.Config
	facade *facade.Facade
	worm   *worm.Worm
	sound  *audio.SoundManager

	nameIndex int
	lastError string

	// Camera origin in world meters at screen center
	cameraX float64

	jump *jumpAnimation
}

// NewSandbox spawns the configured worm on screen
func NewSandbox(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) (*Sandbox, error) {
	f := facade.New()
	s := cfg.Spawn
	w, err := f.CreateWorm(s.X, s.Y, s.Direction, s.Radius, s.Name)
	if err != nil {
		return nil, err
	}

	sb := &Sandbox{
		screen:  screen,
		cfg:     cfg,
		facade:  f,
		worm:    w,
		sound:   sound,
		cameraX: s.X,
	}
	sb.width, sb.height = screen.Size()
	return sb, nil
}

// Animating reports whether a jump is being replayed
func (sb *Sandbox) Animating() bool { return sb.jump != nil }

// handleInput applies one event; returns false when the sandbox should exit
func (sb *Sandbox) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		// Input is frozen mid-flight
		if sb.jump != nil {
			return true
		}

		switch ev.Key() {
		case tcell.KeyLeft:
			sb.turn(turnStep)
		case tcell.KeyRight:
			sb.turn(-turnStep)
		case tcell.KeyUp:
			sb.move(moveStep)
		case tcell.KeyDown:
			sb.move(-moveStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'h':
				sb.turn(turnStep)
			case 'l':
				sb.turn(-turnStep)
			case 'k':
				sb.move(moveStep)
			case 'j':
				sb.move(-moveStep)
			case ' ':
				sb.startJump(now)
			case '+', '=':
				sb.resize(radiusStep)
			case '-':
				sb.resize(-radiusStep)
			case 'r':
				sb.cycleName()
			case 'a':
				// New round: refill the budget
				sb.worm.SetActionPoints(sb.worm.MaxActionPoints())
				sb.lastError = ""
			}
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}
	return true
}

func (sb *Sandbox) move(steps int) {
	sb.report(sb.facade.Move(sb.worm, steps), audio.CueStep)
}

func (sb *Sandbox) turn(angle float64) {
	sb.report(sb.facade.Turn(sb.worm, angle), audio.CueTurn)
}

func (sb *Sandbox) resize(delta float64) {
	sb.report(sb.facade.SetRadius(sb.worm, sb.facade.Radius(sb.worm)+delta), -1)
}

func (sb *Sandbox) cycleName() {
	names := sb.cfg.Sandbox.Names
	if len(names) == 0 {
		return
	}
	sb.nameIndex = (sb.nameIndex + 1) % len(names)
	sb.report(sb.facade.Rename(sb.worm, names[sb.nameIndex]), -1)
}

// startJump samples the flight, commits the jump, then replays the samples
func (sb *Sandbox) startJump(now time.Time) {
	if !sb.facade.CanJump(sb.worm) {
		sb.report(sb.facade.Jump(sb.worm), audio.CueJump)
		return
	}

	flight := sb.facade.JumpTime(sb.worm)
	n := int(math.Ceil(flight*sb.cfg.Sandbox.TimeScale/sb.cfg.Sandbox.FrameInterval.Seconds())) + 1
	if n < 2 {
		n = 2
	}
	frames := make([][]float64, n)
	for i := range frames {
		frames[i] = sb.facade.JumpStep(sb.worm, flight*float64(i)/float64(n-1))
	}

	if err := sb.facade.Jump(sb.worm); err != nil {
		sb.report(err, -1)
		return
	}
	sb.lastError = ""
	sb.jump = &jumpAnimation{start: now, flight: flight, frames: frames}
	if sb.sound != nil {
		sb.sound.Play(audio.CueJump, flight)
	}
	log.Printf("jump: %s flies %.3fs to x=%.3f", sb.worm.Name(), flight, sb.worm.X())
}

// report records a facade error and plays the matching cue; cue < 0 plays only on rejection
func (sb *Sandbox) report(err error, cue audio.Cue) {
	if err != nil {
		sb.lastError = err.Error()
		log.Printf("rejected: %v", err)
		if sb.sound != nil {
			sb.sound.Play(audio.CueReject, 0)
		}
		return
	}
	sb.lastError = ""
	if sb.sound != nil && cue >= 0 {
		sb.sound.Play(cue, 0)
	}
}

// update advances the jump replay
func (sb *Sandbox) update(now time.Time) {
	if sb.jump == nil {
		return
	}
	elapsed := now.Sub(sb.jump.start).Seconds() / sb.cfg.Sandbox.TimeScale
	if elapsed >= sb.jump.flight {
		sb.jump = nil
	}
}

// wormPosition returns the drawn position: the replay frame mid-flight, else the worm
func (sb *Sandbox) wormPosition(now time.Time) (x, y float64) {
	if sb.jump == nil {
		return sb.worm.X(), sb.worm.Y()
	}
	frames := sb.jump.frames
	if sb.jump.flight <= 0 {
		last := frames[len(frames)-1]
		return last[0], last[1]
	}
	progress := now.Sub(sb.jump.start).Seconds() / sb.cfg.Sandbox.TimeScale / sb.jump.flight
	i := int(progress * float64(len(frames)-1))
	if i < 0 {
		i = 0
	}
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i][0], frames[i][1]
}

// run is the event and frame loop
func (sb *Sandbox) run() {
	ticker := time.NewTicker(sb.cfg.Sandbox.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	sb.draw(time.Now())
	for {
		select {
		case ev := <-eventChan:
			if !sb.handleInput(ev, time.Now()) {
				return
			}
			sb.draw(time.Now())

		case now := <-ticker.C:
			sb.update(now)
			sb.draw(now)
		}
	}
}
