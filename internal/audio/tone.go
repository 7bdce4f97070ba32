package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// rampFloor is the gain every tone decays toward by its end.
const rampFloor = 0.01

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
)

// tone is a single oscillator note with an exponential gain ramp from its
// start gain down to rampFloor.
type tone struct {
	freq  float64
	gain  float64
	wave  Wave
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

// NewTone returns a streamer that plays freq for d, starting at gain and
// ramping exponentially down to 0.01.
func NewTone(freq float64, d time.Duration, gain float64, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		gain:  gain,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
	}
}

// envelope returns the gain at sample pos.
func (t *tone) envelope() float64 {
	if t.gain <= rampFloor || t.total == 0 {
		return t.gain
	}
	progress := float64(t.pos) / float64(t.total)
	return t.gain * math.Pow(rampFloor/t.gain, progress)
}

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveTriangle:
		return 4*math.Abs(t.phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := t.sample() * t.envelope()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Note is one step of a melody.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// melody is the short opening tune, C5 up to G5.
var melody = []Note{
	{523.25, 500 * time.Millisecond},
	{587.33, 500 * time.Millisecond},
	{659.25, 500 * time.Millisecond},
	{698.46, 500 * time.Millisecond},
	{783.99, time.Second},
}

// melodyGain is the starting gain of every melody note.
const melodyGain = 0.05

// NewMelody strings notes together as soft triangle tones.
func NewMelody(notes []Note, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(n.Freq, n.Duration, melodyGain, WaveTriangle, rate))
	}
	return beep.Seq(parts...)
}
