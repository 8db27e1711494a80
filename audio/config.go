package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/invaders/constants"
)

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int

	// SoundDir is searched for <cue>.wav overrides, empty means synthesize everything
	SoundDir string
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioDefaultSampleRate,
	}
}

// LoadConfig applies INVADERS_* environment overrides to the defaults
// Unparseable values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("INVADERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("INVADERS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("INVADERS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if dir := os.Getenv("INVADERS_SOUND_DIR"); dir != "" {
		cfg.SoundDir = dir
	}

	return cfg
}
