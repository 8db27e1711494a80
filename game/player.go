package game

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/frame"
)

// Player is the ship on the bottom row and the owner of its shots
type Player struct {
	x, y     int
	cooldown time.Duration
	alive    bool
	shots    []*Shot
}

// NewPlayer places the ship centred on the bottom row
func NewPlayer() *Player {
	return &Player{
		x:     constants.Cols / 2,
		y:     constants.Rows - 1,
		alive: true,
		shots: make([]*Shot, 0, constants.MaxShots),
	}
}

// X returns the ship column
func (p *Player) X() int { return p.x }

// Y returns the ship row
func (p *Player) Y() int { return p.y }

// Alive reports whether the ship is still in play
func (p *Player) Alive() bool { return p.alive }

// Kill removes the ship from play
func (p *Player) Kill() { p.alive = false }

// Shots returns the shots currently in flight
func (p *Player) Shots() []*Shot {
	live := make([]*Shot, 0, len(p.shots))
	for _, s := range p.shots {
		if s.Active() {
			live = append(live, s)
		}
	}
	return live
}

// MoveLeft shifts one column left, returns false at the left edge
func (p *Player) MoveLeft() bool {
	if p.x <= 0 {
		return false
	}
	p.x--
	return true
}

// MoveRight shifts one column right, returns false at the right edge
func (p *Player) MoveRight() bool {
	if p.x >= constants.Cols-1 {
		return false
	}
	p.x++
	return true
}

// Shoot spawns a shot above the ship unless the cooldown or shot limit blocks it
func (p *Player) Shoot() bool {
	if !p.alive || p.cooldown > 0 || len(p.Shots()) >= constants.MaxShots {
		return false
	}
	p.shots = append(p.shots, newShot(p.x, p.y-1))
	p.cooldown = constants.ShotCooldown
	return true
}

// Update decays the cooldown and advances shots
// A shot that exits the playfield is deactivated but kept until DetectHits has
// checked the rows it crossed on the way out
func (p *Player) Update(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	p.cooldown -= delta
	if p.cooldown < 0 {
		p.cooldown = 0
	}

	live := p.shots[:0]
	for _, s := range p.shots {
		// Exited on an earlier update and already had its collision check
		if !s.Active() {
			continue
		}
		s.update(delta)
		live = append(live, s)
	}
	clear(p.shots[len(live):])
	p.shots = live
}

// DetectHits removes every shot that overlapped or swept through a live invader
// this tick, together with that invader; returns the number of kills
// Shots that left the playfield are dropped after their swept rows are checked
func (p *Player) DetectHits(army *Formation) int {
	hits := 0
	live := p.shots[:0]
	for _, s := range p.shots {
		if hitAlongPath(s, army) {
			hits++
			continue
		}
		if s.Active() {
			live = append(live, s)
		}
	}
	clear(p.shots[len(live):])
	p.shots = live
	return hits
}

// hitAlongPath checks the shot's swept rows nearest-first in travel direction
func hitAlongPath(s *Shot, army *Formation) bool {
	lo, hi := s.sweep()
	for row := hi; row >= lo; row-- {
		if army.KillAt(s.X, row) {
			return true
		}
	}
	return false
}

// Draw renders the ship and its shots
func (p *Player) Draw(f *frame.Frame) {
	if p.alive {
		f.SetRune(p.x, p.y, constants.GlyphPlayer, stylePlayer)
	}
	for _, s := range p.shots {
		if s.Active() {
			s.Draw(f)
		}
	}
}

var _ frame.Drawable = (*Player)(nil)
