package game

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/frame"
)

// Invader is one formation member
type Invader struct {
	X, Y int
}

type wreck struct {
	x, y  int
	timer Timer
}

// Formation is the invader army moving as one block
// Steps happen on an internal cadence, not on every Update call
type Formation struct {
	invaders  []Invader
	direction int
	move      Timer
	wrecks    []wreck
}

// NewFormation builds the starting grid
func NewFormation() *Formation {
	invaders := make([]Invader, 0, 128)
	for y := 0; y < constants.Rows; y++ {
		for x := 0; x < constants.Cols; x++ {
			if x > constants.FormationMarginX && x < constants.Cols-1-constants.FormationMarginX &&
				y > 0 && y < constants.FormationBottomLimit &&
				x%2 == 0 && y%2 == 0 {
				invaders = append(invaders, Invader{X: x, Y: y})
			}
		}
	}
	return NewFormationOf(invaders)
}

// NewFormationOf builds a formation from explicit positions, marching right
func NewFormationOf(invaders []Invader) *Formation {
	return &Formation{
		invaders:  invaders,
		direction: 1,
		move:      NewTimer(constants.FormationMoveInterval),
	}
}

// Len returns the number of live invaders
func (a *Formation) Len() int { return len(a.invaders) }

// Invaders returns a snapshot of invader positions
func (a *Formation) Invaders() []Invader {
	out := make([]Invader, len(a.invaders))
	copy(out, a.invaders)
	return out
}

// Direction returns +1 when marching right, -1 when marching left
func (a *Formation) Direction() int { return a.direction }

// Cadence returns the current step interval
func (a *Formation) Cadence() time.Duration { return a.move.Duration() }

// Update advances the cadence timer and steps the formation once the cadence
// elapses; returns true when a step happened
func (a *Formation) Update(delta time.Duration) bool {
	a.updateWrecks(delta)

	a.move.Update(delta)
	if !a.move.Ready() {
		return false
	}
	a.move.Reset()

	if len(a.invaders) == 0 {
		return false
	}

	descend := false
	if a.direction < 0 {
		minX := a.invaders[0].X
		for _, inv := range a.invaders[1:] {
			minX = min(minX, inv.X)
		}
		if minX <= 0 {
			a.direction = 1
			descend = true
		}
	} else {
		maxX := a.invaders[0].X
		for _, inv := range a.invaders[1:] {
			maxX = max(maxX, inv.X)
		}
		if maxX >= constants.Cols-1 {
			a.direction = -1
			descend = true
		}
	}

	if descend {
		next := max(a.move.Duration()-constants.FormationSpeedup, constants.FormationMinInterval)
		a.move = NewTimer(next)
		for i := range a.invaders {
			a.invaders[i].Y++
		}
		return true
	}

	for i := range a.invaders {
		a.invaders[i].X += a.direction
	}
	return true
}

func (a *Formation) updateWrecks(delta time.Duration) {
	live := a.wrecks[:0]
	for _, w := range a.wrecks {
		w.timer.Update(delta)
		if !w.timer.Ready() {
			live = append(live, w)
		}
	}
	a.wrecks = live
}

// KillAt removes the invader at (x, y) and leaves a wreck; false if none is there
func (a *Formation) KillAt(x, y int) bool {
	for i, inv := range a.invaders {
		if inv.X == x && inv.Y == y {
			a.invaders = append(a.invaders[:i], a.invaders[i+1:]...)
			a.wrecks = append(a.wrecks, wreck{x: x, y: y, timer: NewTimer(constants.WreckDuration)})
			return true
		}
	}
	return false
}

// AllKilled reports whether the formation is empty
func (a *Formation) AllKilled() bool {
	return len(a.invaders) == 0
}

// ReachedRow reports whether any invader is at or below row
func (a *Formation) ReachedRow(row int) bool {
	for _, inv := range a.invaders {
		if inv.Y >= row {
			return true
		}
	}
	return false
}

// Draw renders wrecks, then invaders with a glyph alternating over the cadence
func (a *Formation) Draw(f *frame.Frame) {
	for _, w := range a.wrecks {
		f.SetRune(w.x, w.y, constants.GlyphWreck, styleWreck)
	}

	glyph := constants.GlyphInvaderDn
	if a.move.Fraction() > 0.5 {
		glyph = constants.GlyphInvaderUp
	}
	for _, inv := range a.invaders {
		f.SetRune(inv.X, inv.Y, glyph, styleInvader)
	}
}

var _ frame.Drawable = (*Formation)(nil)
