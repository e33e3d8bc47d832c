package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tickFreq     = 880
	tickDuration = 25 * time.Millisecond
)

// Clicker plays a short tick when the centered item changes.
type Clicker struct{}

// NewClicker opens the audio device.
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Clicker{}, nil
}

// Play starts a tick without waiting for it. A nil Clicker is silent.
func (c *Clicker) Play() {
	if c == nil {
		return
	}
	if s, err := tickStreamer(); err == nil {
		speaker.Play(s)
	}
}

// Close releases the audio device.
func (c *Clicker) Close() {
	if c != nil {
		speaker.Close()
	}
}

// tickStreamer is a quiet sine blip of tickDuration.
func tickStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, tickFreq)
	if err != nil {
		return nil, err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -3}
	return beep.Take(sampleRate.N(tickDuration), quiet), nil
}
