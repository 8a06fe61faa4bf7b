package alert

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a sine wave with an exponential decay envelope
type Tone struct {
	Frequency  float64 // Hz
	Gain       float64 // starting amplitude
	FloorGain  float64 // amplitude reached at the end of Duration
	Duration   time.Duration
	SampleRate beep.SampleRate
}

// DefaultTone is a short 800 Hz chime
func DefaultTone() Tone {
	return Tone{
		Frequency:  800,
		Gain:       0.3,
		FloorGain:  0.01,
		Duration:   500 * time.Millisecond,
		SampleRate: beep.SampleRate(44100),
	}
}

// Samples returns the number of samples in the tone
func (t Tone) Samples() int {
	return t.SampleRate.N(t.Duration)
}

// Envelope returns the amplitude at sample pos of total
func (t Tone) Envelope(pos, total int) float64 {
	if total <= 0 || t.Gain <= 0 || t.FloorGain <= 0 {
		return 0
	}
	frac := float64(pos) / float64(total)
	return t.Gain * math.Pow(t.FloorGain/t.Gain, frac)
}

// Streamer renders the tone on both channels
func (t Tone) Streamer() beep.Streamer {
	total := t.Samples()
	rate := float64(t.SampleRate)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			v := t.Envelope(pos, total) * math.Sin(2*math.Pi*t.Frequency*float64(pos)/rate)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
