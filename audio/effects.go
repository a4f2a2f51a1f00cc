package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves from start to end over the duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gainFunc scales each sample by a gain computed from progress in [0, 1)
type gainFunc struct {
	streamer beep.Streamer
	gain     func(progress float64) float64
	position int
	total    int
}

func (g *gainFunc) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if g.position >= g.total {
			return i, i > 0
		}
		v := g.gain(float64(g.position) / float64(g.total))
		samples[i][0] *= v
		samples[i][1] *= v
		g.position++
	}
	return n, ok
}

func (g *gainFunc) Err() error { return g.streamer.Err() }

// NewTremolo modulates amplitude at freq Hz; depth 0 is dry, 1 dips to silence
func NewTremolo(s beep.Streamer, freq, depth float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	seconds := duration.Seconds()
	return &gainFunc{
		streamer: s,
		total:    max(rate.N(duration), 1),
		gain: func(p float64) float64 {
			return 1 - depth*0.5*(1-math.Cos(2*math.Pi*freq*p*seconds))
		},
	}
}

// NewDecay applies an exponential fade, about -43dB at the end
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &gainFunc{
		streamer: s,
		total:    max(rate.N(duration), 1),
		gain: func(p float64) float64 {
			return math.Exp(-5 * p)
		},
	}
}

// NewSwell applies a half-sine rise and fall
func NewSwell(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &gainFunc{
		streamer: s,
		total:    max(rate.N(duration), 1),
		gain: func(p float64) float64 {
			return math.Sin(math.Pi * p)
		},
	}
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
