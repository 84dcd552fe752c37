package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	shootDuration = 90 * time.Millisecond
	killDuration  = 220 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a finite oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(duration),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// decay fades a stream out exponentially.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	speed    float64 // e-folds per second
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		vol := math.Exp(-d.speed * float64(d.pos) / float64(d.rate))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ShootSound is a short falling square-wave blip.
func ShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	blip := NewSweep(1400, 500, shootDuration, WaveSquare, rate)
	shaped := &decay{streamer: blip, rate: rate, speed: 20}
	return newVolume(shaped, 0.25*vol)
}

// KillSound is a noise burst over a low rumble.
func KillSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewSweep(0, 0, killDuration, WaveNoise, rate)
	rumble := NewSweep(140, 60, killDuration, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(rumble, 0.5),
	)
	shaped := &decay{streamer: beep.Take(rate.N(killDuration), mixed), rate: rate, speed: 12}
	return newVolume(shaped, 0.4*vol)
}
