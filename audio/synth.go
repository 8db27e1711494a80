package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator gliding linearly from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	total    int
	pos      int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a pitch glide, from == to gives a steady tone
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), wave: wave, rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope shapes a stream with a linear attack and release, and cuts it at the total length
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rem := e.total - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= releaseStart {
			vol = math.Min(vol, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, vol <= 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped sine note of a jingle
func tone(freq float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(constants.JingleNoteDuration)
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for this rate
		return beep.Silence(n)
	}
	return NewEnvelope(beep.Take(n, sine), constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate)
}

func jingle(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, rate)
	}
	return beep.Seq(notes...)
}

// Note frequencies
const (
	noteC4  = 261.63
	noteEb4 = 311.13
	noteG4  = 392.00
	noteC5  = 523.25
	noteE5  = 659.25
	noteG5  = 783.99
	noteC6  = 1046.50
	noteE6  = 1318.51
	noteG6  = 1567.98
)

// synthesize builds the built-in sound for a cue, peak amplitude stays within [-1, 1]
func synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueExplode:
		noise := NewSweep(0, 0, constants.ExplodeSoundDuration, WaveNoise, rate)
		rumble := NewSweep(90, 30, constants.ExplodeSoundDuration, WaveSquare, rate)
		mixed := beep.Mix(newVolume(noise, 0.7), newVolume(rumble, 0.3))
		return NewEnvelope(mixed, constants.ExplodeSoundDuration, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)

	case CueMove:
		thump := NewSweep(110, 80, constants.MoveSoundDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(thump, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate), 0.4)

	case CuePew:
		zap := NewSweep(1400, 300, constants.PewSoundDuration, WaveSaw, rate)
		return newVolume(NewEnvelope(zap, constants.PewSoundDuration, constants.PewSoundAttack, constants.PewSoundRelease, rate), 0.6)

	case CueStartup:
		return jingle(rate, noteC5, noteE5, noteG5, noteC6)

	case CueWin:
		return jingle(rate, noteG5, noteC6, noteE6, noteG6)

	case CueLose:
		notes := make([]beep.Streamer, 0, 3)
		for _, f := range []float64{noteG4, noteEb4, noteC4} {
			sq := NewSweep(f, f*0.97, constants.JingleNoteDuration*2, WaveSquare, rate)
			notes = append(notes, newVolume(NewEnvelope(sq, constants.JingleNoteDuration*2, constants.JingleNoteAttack, constants.JingleNoteRelease, rate), 0.5))
		}
		return beep.Seq(notes...)
	}
	return nil
}
