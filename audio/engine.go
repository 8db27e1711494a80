package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/invaders/constants"
)

// Engine owns the speaker and the pre-rendered cue buffers
type Engine struct {
	config *Config
	rate   beep.SampleRate

	buffers [cueCount]*beep.Buffer
	loaded  bool

	mixer *beep.Mixer

	mu      sync.Mutex // Protects loaded, buffers and started
	started bool
	muted   atomic.Bool
}

// NewEngine creates an engine, nil cfg uses DefaultConfig
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = constants.AudioDefaultSampleRate
	}
	return &Engine{
		config: cfg,
		rate:   beep.SampleRate(rate),
		mixer:  &beep.Mixer{},
	}
}

// Load renders every cue into memory
// A failed WAV override falls back to the synthesized cue; the failures are returned joined
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load()
}

func (e *Engine) load() error {
	var errs []error
	for _, c := range Cues() {
		if e.config.SoundDir != "" {
			path := samplePath(e.config.SoundDir, c)
			buf, err := loadSample(path, e.rate, e.config.MasterVolume)
			if err == nil {
				e.buffers[c] = buf
				continue
			}
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
		}
		e.buffers[c] = bufferStreamer(synthesize(c, e.rate), e.rate, e.config.MasterVolume)
	}
	e.loaded = true
	return errors.Join(errs...)
}

// Start opens the speaker; when disabled it does nothing and the engine stays silent
// Load errors are logged, only speaker failure is returned
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if !e.config.Enabled {
		log.Printf("audio: disabled")
		return nil
	}

	if !e.loaded {
		if err := e.load(); err != nil {
			log.Printf("audio: sample overrides ignored: %v", err)
		}
	}

	if err := speaker.Init(e.rate, e.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)

	e.started = true
	log.Printf("audio: started at %d Hz, volume %.2f", e.rate, e.config.MasterVolume)
	return nil
}

// Stop silences everything and closes the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.started = false
}

// Play starts c without waiting, false when nothing will be heard
func (e *Engine) Play(c Cue) bool {
	return e.play(c, nil)
}

// PlayAndWait plays c and blocks until it finishes or timeout elapses
// Returns true only when the cue finished
func (e *Engine) PlayAndWait(c Cue, timeout time.Duration) bool {
	done := make(chan struct{})
	if !e.play(c, func() { close(done) }) {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

func (e *Engine) play(c Cue, onDone func()) bool {
	if c < 0 || c >= cueCount || e.muted.Load() {
		return false
	}

	e.mu.Lock()
	started := e.started
	buf := e.buffers[c]
	e.mu.Unlock()

	if !started || buf == nil {
		return false
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if onDone != nil {
		s = beep.Seq(s, beep.Callback(onDone))
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	return true
}

// SetMuted toggles playback without closing the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true when cues will be heard
func (e *Engine) IsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started && !e.muted.Load()
}
