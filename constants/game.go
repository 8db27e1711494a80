package constants

import "time"

// Game Loop Timing
const (
	// TickSleep bounds the per-tick yield so the loop does not busy-spin
	TickSleep = 1 * time.Millisecond

	// QueueCapacity is the number of composed frames the render queue holds before evicting the oldest
	QueueCapacity = 8

	// StartupCueWait caps how long the startup cue may delay the first input poll
	StartupCueWait = 3 * time.Second

	// RenderDrainTimeout caps how long shutdown waits for the render worker to drain
	RenderDrainTimeout = 2 * time.Second
)

// Gameplay Timing
const (
	// ShotCooldown is the minimum time between two successful shots
	ShotCooldown = 250 * time.Millisecond

	// FormationMoveInterval is the initial cadence of formation steps
	FormationMoveInterval = 2000 * time.Millisecond

	// FormationSpeedup shortens the cadence after every descent
	FormationSpeedup = 250 * time.Millisecond

	// FormationMinInterval is the fastest cadence the formation reaches
	FormationMinInterval = 250 * time.Millisecond

	// WreckDuration is how long a killed invader leaves its wreck on screen
	WreckDuration = 250 * time.Millisecond
)
