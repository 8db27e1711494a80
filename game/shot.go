package game

import (
	"math"
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/frame"
)

// Shot is a player projectile travelling straight up its column
type Shot struct {
	X        int
	y        float64 // cell-centred fractional row
	prevRow  int
	velocity float64 // rows per second
}

func newShot(x, row int) *Shot {
	return &Shot{
		X:        x,
		y:        float64(row) + 0.5,
		prevRow:  row,
		velocity: constants.ShotVelocity,
	}
}

// Row returns the cell row the shot currently occupies
func (s *Shot) Row() int {
	return int(math.Floor(s.y))
}

// Active reports whether the shot is still inside the playfield
func (s *Shot) Active() bool {
	r := s.Row()
	return r >= 0 && r < constants.Rows && s.X >= 0 && s.X < constants.Cols
}

func (s *Shot) update(delta time.Duration) {
	s.prevRow = s.Row()
	s.y += s.velocity * delta.Seconds()
}

// sweep returns the inclusive row span covered during the last update, low to high
func (s *Shot) sweep() (int, int) {
	lo, hi := s.Row(), s.prevRow
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Draw renders the shot glyph
func (s *Shot) Draw(f *frame.Frame) {
	f.SetRune(s.X, s.Row(), constants.GlyphShot, styleShot)
}

var _ frame.Drawable = (*Shot)(nil)
