package main

import (
	"time"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
)

// countingCues records every cue request, heard or not, before passing it on
type countingCues struct {
	next    engine.CuePlayer
	metrics *status.Registry
}

func (c countingCues) Play(cue audio.Cue) bool {
	c.metrics.Ints.Get("cue." + cue.String()).Add(1)
	ok := c.next.Play(cue)
	if !ok {
		c.metrics.Ints.Get("cue.silent").Add(1)
	}
	return ok
}

// recordSession publishes end-of-session totals
func recordSession(m *status.Registry, res engine.Result, w *render.Worker, elapsed time.Duration) {
	m.Ints.Get("loop.ticks").Store(int64(res.Stats.Ticks))
	m.Ints.Get("loop.kills").Store(int64(res.Stats.Kills))
	m.Ints.Get("loop.shots").Store(int64(res.Stats.ShotsFired))
	m.Ints.Get("loop.moves").Store(int64(res.Stats.Moves))
	m.Ints.Get("loop.formation_steps").Store(int64(res.Stats.FormationSteps))
	m.Ints.Get("render.frames").Store(int64(w.Rendered()))
	m.Ints.Get("render.cells").Store(int64(w.CellsWritten()))
	m.Ints.Get("render.dropped").Store(int64(res.Dropped))
	if s := elapsed.Seconds(); s > 0 {
		m.Floats.Get("loop.tps").Set(float64(res.Stats.Ticks) / s)
	}
}
