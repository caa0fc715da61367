package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

const statusRows = 2

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleWorm    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleFacing  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePreview = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// facingGlyphs maps the direction octant, counter-clockwise from +x, to an arrow
var facingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// facingGlyph returns the arrow for a raw, possibly unwrapped direction
func facingGlyph(direction float64) rune {
	wrapped := math.Mod(direction, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	octant := int(math.Floor(wrapped/(math.Pi/4)+0.5)) % 8
	return facingGlyphs[octant]
}

// toScreen maps world meters to a cell; rows are half as dense as columns
// ok is false when the point is off the playfield
func (sb *Sandbox) toScreen(x, y float64) (col, row int, ok bool) {
	field := sb.height - statusRows
	if field <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	cpm := sb.cfg.Sandbox.CellsPerMeter
	fc := float64(sb.width)/2 + (x-sb.cameraX)*cpm
	fr := float64(field-1) - y*cpm/2
	if fc < 0 || fr < 0 || fc >= float64(sb.width) || fr >= float64(field) {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}

// follow recenters the camera when the worm leaves the playfield horizontally
func (sb *Sandbox) follow(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	half := float64(sb.width) / 2 / sb.cfg.Sandbox.CellsPerMeter
	if x < sb.cameraX-half || x >= sb.cameraX+half {
		sb.cameraX = x
	}
}

func (sb *Sandbox) draw(now time.Time) {
	sb.screen.Clear()

	x, y := sb.wormPosition(now)
	sb.follow(x)

	// Ground at y = 0
	if _, row, ok := sb.toScreen(sb.cameraX, 0); ok {
		for col := 0; col < sb.width; col++ {
			sb.screen.SetContent(col, row, '─', nil, styleGround)
		}
	}

	if sb.jump == nil && sb.facade.CanJump(sb.worm) {
		for _, p := range sb.worm.Trajectory(previewSamples) {
			if col, row, ok := sb.toScreen(p[0], p[1]); ok {
				sb.screen.SetContent(col, row, '·', nil, stylePreview)
			}
		}
	}

	if col, row, ok := sb.toScreen(x, y); ok {
		sb.screen.SetContent(col, row, '@', nil, styleWorm)
		if col+1 < sb.width {
			sb.screen.SetContent(col+1, row, facingGlyph(sb.facade.Orientation(sb.worm)), nil, styleFacing)
		}
	}

	sb.drawStatus()
	sb.screen.Show()
}

// statusLine renders every observable worm value
func (sb *Sandbox) statusLine() string {
	f, w := sb.facade, sb.worm
	return fmt.Sprintf("%s  x=%.2f y=%.2f dir=%.3f r=%.2f (min %.2f) mass=%.1f AP %d/%d",
		f.Name(w), f.X(w), f.Y(w), f.Orientation(w), f.Radius(w), f.MinimalRadius(w),
		f.Mass(w), f.ActionPoints(w), f.MaxActionPoints(w))
}

func (sb *Sandbox) drawStatus() {
	if sb.height < statusRows {
		return
	}
	sb.drawText(0, sb.height-2, sb.statusLine(), styleStatus, true)
	msg := "←/→ h/l turn  ↑/↓ k/j move  space jump  +/- radius  r rename  a refill  q quit"
	style := tcell.StyleDefault
	if sb.lastError != "" {
		msg, style = sb.lastError, styleError
	}
	sb.drawText(0, sb.height-1, msg, style, false)
}

// drawText writes s at row y; fill pads the rest of the row with the style
func (sb *Sandbox) drawText(x, y int, s string, style tcell.Style, fill bool) {
	col := x
	for _, r := range s {
		if col >= sb.width {
			return
		}
		sb.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; fill && col < sb.width; col++ {
		sb.screen.SetContent(col, y, ' ', nil, style)
	}
}
