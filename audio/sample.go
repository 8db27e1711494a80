package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/invaders/constants"
)

// bufferFormat is the in-memory format every cue is rendered to
func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// bufferStreamer drains s at the given volume into a buffer
func bufferStreamer(s beep.Streamer, rate beep.SampleRate, volume float64) *beep.Buffer {
	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(newVolume(s, volume))
	return buf
}

// samplePath returns where an override for c is looked up
func samplePath(dir string, c Cue) string {
	return filepath.Join(dir, c.String()+".wav")
}

// loadSample decodes a WAV file into a buffer at rate, resampling when needed
func loadSample(path string, rate beep.SampleRate, volume float64) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(constants.AudioResampleQuality, format.SampleRate, rate, streamer)
	}

	buf := bufferStreamer(s, rate, volume)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return buf, nil
}
