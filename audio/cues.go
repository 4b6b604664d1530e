package audio

import (
	"sync"
	"time"

	"snake-walls/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one short sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// ToneFor returns the cue played for a tick event, if any.
func ToneFor(kind game.EventKind) (Tone, bool) {
	switch kind {
	case game.EventGrew:
		return Tone{Freq: 880, Duration: 50 * time.Millisecond}, true
	case game.EventAtePill:
		return Tone{Freq: 1320, Duration: 120 * time.Millisecond}, true
	case game.EventAteFastPill:
		return Tone{Freq: 1760, Duration: 120 * time.Millisecond}, true
	case game.EventSpeedBoostEnded:
		return Tone{Freq: 440, Duration: 80 * time.Millisecond}, true
	case game.EventDied:
		return Tone{Freq: 110, Duration: 400 * time.Millisecond}, true
	default:
		return Tone{}, false
	}
}

// Streamer renders the tone at the cue sample rate.
func (t Tone) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", t.Freq)
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Gain:     -0.7,
	}, nil
}

// Cues plays event sounds. All methods are no-ops until Initialize
// succeeds, so the game runs without an audio device.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the cues for one tick's events.
func (c *Cues) Play(events []game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	for _, e := range events {
		tone, ok := ToneFor(e.Kind)
		if !ok {
			continue
		}
		s, err := tone.Streamer()
		if err != nil {
			continue
		}
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}
