package constants

// Playfield Dimensions
const (
	// Cols is the playfield width in terminal cells
	Cols = 40

	// Rows is the playfield height in terminal cells
	Rows = 20
)

// Formation Layout
// Invaders occupy every even column strictly inside (FormationMarginX, Cols-FormationMarginX)
// and every even row strictly inside (0, FormationBottomLimit)
const (
	FormationMarginX     = 1
	FormationBottomLimit = 9
)

// Glyphs
const (
	GlyphBlank     = ' '
	GlyphPlayer    = 'A'
	GlyphShot      = '|'
	GlyphWreck     = '*'
	GlyphInvaderUp = 'x'
	GlyphInvaderDn = '+'
)

// Shot Limits
const (
	// MaxShots is the number of player projectiles allowed in flight at once
	MaxShots = 2

	// ShotVelocity is the projectile speed in rows per second, negative is up
	ShotVelocity = -20.0
)
