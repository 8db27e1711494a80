package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/terminal"
)

var (
	backendFlag   = flag.String("backend", "ansi", "Terminal backend: ansi, tcell")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag      = flag.Bool("mute", false, "Disable audio")
	soundsFlag    = flag.String("sounds", "", "Directory of <cue>.wav files replacing the built-in sounds")
	queueFlag     = flag.Int("queue", constants.QueueCapacity, "Render queue capacity in frames")
	tickFlag      = flag.Duration("tick", constants.TickSleep, "Sleep between game loop ticks")
)

// Process exit codes
const (
	exitOK    = 0
	exitInit  = 1
	exitIO    = 2
	exitCrash = 3
)

func main() {
	os.Exit(run())
}

// run owns every resource so deferred cleanup happens before os.Exit
func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = exitCrash
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	kind, err := terminal.ParseKind(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return exitInit
	}
	colorMode, err := terminal.ParseColorMode(*colorModeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return exitInit
	}

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	if *soundsFlag != "" {
		audioCfg.SoundDir = *soundsFlag
	}
	sounds := audio.NewEngine(audioCfg)
	if err := sounds.Load(); err != nil {
		log.Printf("audio: sample overrides ignored: %v", err)
	}

	term := terminal.New(kind, colorMode)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return exitInit
	}
	// Normal exit terminal cleanup, Fini is idempotent
	defer term.Fini()
	log.Printf("terminal: %s backend initialized", kind)

	if err := sounds.Start(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sounds.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := render.NewQueue(*queueFlag)
	renderer := render.NewRenderer(term)
	worker := render.NewWorker(queue, renderer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer crashGuard("RENDER WORKER")
		return worker.Run()
	})

	sounds.PlayAndWait(audio.CueStartup, constants.StartupCueWait)

	metrics := status.NewRegistry()
	loop := engine.NewLoop(engine.Config{
		Events:    term.Events(),
		Queue:     queue,
		Cues:      countingCues{next: sounds, metrics: metrics},
		TickSleep: *tickFlag,
		OnResize: func(w, h int) {
			log.Printf("terminal: resized to %dx%d", w, h)
			renderer.Invalidate()
		},
	})

	var result engine.Result
	started := time.Now()
	loopDone := make(chan struct{})
	g.Go(func() error {
		defer close(loopDone)
		defer crashGuard("GAME LOOP")
		res, err := loop.Run(gctx)
		result = res
		return err
	})

	err = waitDrained(g, loopDone, constants.RenderDrainTimeout)

	term.Fini()
	recordSession(metrics, result, worker, time.Since(started))
	for _, line := range metrics.Lines() {
		log.Printf("metric: %s", line)
	}
	summary := fmt.Sprintf("%s: %d kills, %d shots, %d ticks, %d frames dropped",
		result.Reason, result.Stats.Kills, result.Stats.ShotsFired, result.Stats.Ticks, result.Dropped)
	log.Print(summary)
	fmt.Fprintln(os.Stderr, summary)

	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

// waitDrained waits for the group, bounding the render drain once the loop has ended
func waitDrained(g *errgroup.Group, loopDone <-chan struct{}, drain time.Duration) error {
	waitCh := make(chan error, 1)
	go func() { waitCh <- g.Wait() }()

	select {
	case err := <-waitCh:
		return err
	case <-loopDone:
	}

	timer := time.NewTimer(drain)
	defer timer.Stop()
	select {
	case err := <-waitCh:
		return err
	case <-timer.C:
		log.Printf("render: worker did not drain within %v", drain)
		return nil
	}
}

// exitCode maps a session error to the process exit status
func exitCode(err error) int {
	var ioErr *render.IOError
	var inErr *engine.InputError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ioErr), errors.As(err, &inErr):
		return exitIO
	case errors.As(err, new(*terminal.InitError)):
		return exitInit
	}
	return exitIO
}

// crashGuard restores the terminal and exits when a goroutine panics
func crashGuard(name string) {
	if r := recover(); r != nil {
		terminal.EmergencyReset(os.Stdout)
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(exitCrash)
	}
}
