package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration sizes the speaker buffer, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultSampleRate is used when no override is configured
	AudioDefaultSampleRate = 44100

	// AudioResampleQuality is the beep.Resample quality for loaded samples
	AudioResampleQuality = 4
)

// Explode Sound Timing
const (
	ExplodeSoundDuration = 300 * time.Millisecond
	ExplodeSoundAttack   = 5 * time.Millisecond
	ExplodeSoundRelease  = 250 * time.Millisecond
)

// Move Sound Timing
const (
	MoveSoundDuration = 60 * time.Millisecond
	MoveSoundAttack   = 5 * time.Millisecond
	MoveSoundRelease  = 30 * time.Millisecond
)

// Pew Sound Timing
const (
	PewSoundDuration = 120 * time.Millisecond
	PewSoundAttack   = 2 * time.Millisecond
	PewSoundRelease  = 90 * time.Millisecond
)

// Jingle Timing (startup, win, lose)
const (
	JingleNoteDuration = 140 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 60 * time.Millisecond
)
