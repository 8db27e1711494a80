package engine

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/frame"
	"github.com/lixenwraith/invaders/game"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/terminal"
)

// CuePlayer is the audio collaborator, fire-and-forget
// *audio.Engine satisfies it
type CuePlayer interface {
	Play(c audio.Cue) bool
}

type silentCues struct{}

func (silentCues) Play(audio.Cue) bool { return false }

// Config wires the loop to its collaborators
type Config struct {
	// Events is drained without blocking every tick, nil means no input
	Events <-chan terminal.Event

	// Queue receives one frame per tick and is closed when the loop ends
	Queue *render.Queue

	// Cues defaults to silence
	Cues CuePlayer

	// Clock defaults to the system monotonic clock
	Clock TimeProvider

	// TickSleep defaults to constants.TickSleep
	TickSleep time.Duration

	// OnResize is called from the loop goroutine on terminal resize
	OnResize func(width, height int)

	// Player and Formation default to the starting layout
	Player    *game.Player
	Formation *game.Formation
}

// Stats counts what happened during a session
type Stats struct {
	Ticks          uint64
	Kills          int
	ShotsFired     int
	Moves          int
	FormationSteps int
}

// Result is the loop outcome
type Result struct {
	Reason  Reason
	Stats   Stats
	Dropped uint64 // Frames evicted from the render queue
}

// Loop is the fixed-tick game loop
// All methods run on the loop goroutine
type Loop struct {
	cfg Config

	player    *game.Player
	formation *game.Formation

	state State
	last  time.Time
	stats Stats
}

// NewLoop applies defaults to cfg and builds the starting state
func NewLoop(cfg Config) *Loop {
	if cfg.Cues == nil {
		cfg.Cues = silentCues{}
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.TickSleep <= 0 {
		cfg.TickSleep = constants.TickSleep
	}
	if cfg.Queue == nil {
		cfg.Queue = render.NewQueue(constants.QueueCapacity)
	}

	l := &Loop{
		cfg:       cfg,
		player:    cfg.Player,
		formation: cfg.Formation,
		state:     State{Phase: PhaseRunning},
	}
	if l.player == nil {
		l.player = game.NewPlayer()
	}
	if l.formation == nil {
		l.formation = game.NewFormation()
	}
	return l
}

// State returns the current phase and reason
func (l *Loop) State() State { return l.state }

// Player returns the loop-owned player, for inspection between ticks
func (l *Loop) Player() *game.Player { return l.player }

// Formation returns the loop-owned formation, for inspection between ticks
func (l *Loop) Formation() *game.Formation { return l.formation }

// Stats returns the counters so far
func (l *Loop) Stats() Stats { return l.stats }

// Run ticks until the game ends, ctx is cancelled, or input fails
// The render queue is closed on return so the worker drains and exits
func (l *Loop) Run(ctx context.Context) (Result, error) {
	defer l.cfg.Queue.Close()

	l.last = l.cfg.Clock.Now()
	for l.state.Phase == PhaseRunning {
		select {
		case <-ctx.Done():
			log.Printf("engine: context done: %v", context.Cause(ctx))
			l.end(ReasonQuit)
			continue
		default:
		}

		now := l.cfg.Clock.Now()
		delta := now.Sub(l.last)
		l.last = now

		if err := l.Step(delta); err != nil {
			return l.result(), err
		}

		if l.state.Phase == PhaseRunning {
			time.Sleep(l.cfg.TickSleep)
		}
	}
	return l.result(), nil
}

// Step runs one tick with the given elapsed time
// On win or loss the final frame is sent before returning; a quit sends nothing
func (l *Loop) Step(delta time.Duration) error {
	if l.state.Phase != PhaseRunning {
		return nil
	}
	if delta < 0 {
		delta = 0
	}

	if err := l.drainInput(); err != nil {
		return err
	}
	if l.state.Phase != PhaseRunning {
		return nil
	}

	l.player.Update(delta)
	if l.formation.Update(delta) {
		l.stats.FormationSteps++
		l.cfg.Cues.Play(audio.CueMove)
	}

	if hits := l.player.DetectHits(l.formation); hits > 0 {
		l.stats.Kills += hits
		l.cfg.Cues.Play(audio.CueExplode)
	}

	switch {
	case l.formation.AllKilled():
		l.end(ReasonWin)
	case l.formation.ReachedRow(l.player.Y()):
		l.player.Kill()
		l.end(ReasonLoss)
	}

	l.stats.Ticks++
	f := frame.Compose(l.player, l.formation)
	if err := l.cfg.Queue.Send(f); err != nil {
		if errors.Is(err, render.ErrWorkerStopped) || errors.Is(err, render.ErrQueueClosed) {
			log.Printf("engine: %v, ending", err)
			if l.state.Phase == PhaseRunning {
				l.end(ReasonQuit)
			}
			return nil
		}
		return err
	}
	return nil
}

// drainInput applies every pending event without blocking
func (l *Loop) drainInput() error {
	for {
		select {
		case ev, ok := <-l.cfg.Events:
			if !ok {
				l.end(ReasonQuit)
				return nil
			}
			if err := l.handle(ev); err != nil {
				return err
			}
			if l.state.Phase != PhaseRunning {
				return nil
			}
		default:
			return nil
		}
	}
}

func (l *Loop) handle(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventKey:
		l.handleKey(ev)
	case terminal.EventResize:
		if l.cfg.OnResize != nil {
			l.cfg.OnResize(ev.Width, ev.Height)
		}
	case terminal.EventError:
		return &InputError{Err: ev.Err}
	case terminal.EventClosed:
		l.end(ReasonQuit)
	}
	return nil
}

func (l *Loop) handleKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		l.end(ReasonQuit)
	case terminal.KeyLeft:
		l.move(l.player.MoveLeft())
	case terminal.KeyRight:
		l.move(l.player.MoveRight())
	case terminal.KeyEnter:
		l.shoot()
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q':
			l.end(ReasonQuit)
		case ' ':
			l.shoot()
		}
	}
}

func (l *Loop) move(moved bool) {
	if moved {
		l.stats.Moves++
		l.cfg.Cues.Play(audio.CueMove)
	}
}

func (l *Loop) shoot() {
	if l.player.Shoot() {
		l.stats.ShotsFired++
		l.cfg.Cues.Play(audio.CuePew)
	}
}

// end moves Running to Ending and plays the matching cue
func (l *Loop) end(reason Reason) {
	if !canTransition(l.state.Phase, PhaseEnding) {
		return
	}
	l.state = State{Phase: PhaseEnding, Reason: reason}
	log.Printf("engine: %s after %d ticks, %d kills", l.state, l.stats.Ticks, l.stats.Kills)

	switch reason {
	case ReasonWin:
		l.cfg.Cues.Play(audio.CueWin)
	case ReasonQuit, ReasonLoss:
		l.cfg.Cues.Play(audio.CueLose)
	}
}

func (l *Loop) result() Result {
	return Result{
		Reason:  l.state.Reason,
		Stats:   l.stats,
		Dropped: l.cfg.Queue.Dropped(),
	}
}
