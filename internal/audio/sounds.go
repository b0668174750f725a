package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound is one entry of a sound bank.
type Sound struct {
	Name  string
	Build func(rate beep.SampleRate) beep.Streamer
}

// bounceSounds are short plucked tones at three pitches.
var bounceSounds = []Sound{
	{Name: "pluck_low", Build: func(r beep.SampleRate) beep.Streamer { return pluck(r, 330, 90*time.Millisecond) }},
	{Name: "pluck_mid", Build: func(r beep.SampleRate) beep.Streamer { return pluck(r, 440, 80*time.Millisecond) }},
	{Name: "pluck_high", Build: func(r beep.SampleRate) beep.Streamer { return pluck(r, 587.33, 70*time.Millisecond) }},
}

// eliminationSounds are noise crashes layered over a low rumble.
var eliminationSounds = []Sound{
	{Name: "crash_short", Build: func(r beep.SampleRate) beep.Streamer { return crash(r, 70, 400*time.Millisecond) }},
	{Name: "crash_long", Build: func(r beep.SampleRate) beep.Streamer { return crash(r, 55, 700*time.Millisecond) }},
}

// pluck is a sine tone with a fast exponential decay.
func pluck(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return newDecay(beep.Take(rate.N(d), sine), rate, 30)
}

// crash layers white noise over a sine rumble; both fade out.
func crash(rate beep.SampleRate, rumbleFreq float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	return beep.Take(n, &crashGen{
		rng:  rand.New(rand.NewSource(int64(n))),
		sr:   rate,
		freq: rumbleFreq,
	})
}

// crashGen streams noise and rumble at equal weight, each decaying at its own rate.
type crashGen struct {
	rng  *rand.Rand
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (c *crashGen) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		noise := (c.rng.Float64()*2 - 1) * math.Exp(-6*t)
		rumble := math.Sin(2*math.Pi*c.freq*t) * math.Exp(-4*t)
		v := 0.5*noise + 0.5*rumble
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *crashGen) Err() error { return nil }

// decay scales a stream by exp(-rate*t).
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	k        float64
	pos      int
}

func newDecay(s beep.Streamer, sr beep.SampleRate, k float64) beep.Streamer {
	return &decay{streamer: s, sr: sr, k: k}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		t := float64(d.pos) / float64(d.sr)
		g := math.Exp(-d.k * t)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so zero volume is handled as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
