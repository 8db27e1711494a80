package audio

import "fmt"

// Cue identifies a sound effect
type Cue int

const (
	CueExplode Cue = iota
	CueLose
	CueMove
	CuePew
	CueStartup
	CueWin

	cueCount
)

var cueNames = [cueCount]string{
	CueExplode: "explode",
	CueLose:    "lose",
	CueMove:    "move",
	CuePew:     "pew",
	CueStartup: "startup",
	CueWin:     "win",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Cues returns every cue in declaration order
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCue resolves a cue by name
func ParseCue(name string) (Cue, error) {
	for c, n := range cueNames {
		if n == name {
			return Cue(c), nil
		}
	}
	return 0, fmt.Errorf("unknown cue %q", name)
}
