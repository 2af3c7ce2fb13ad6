package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a short synthesised sound: a frequency sweep with a linear decay
// envelope, optionally roughened by a square component.
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	square   float64
	length   int
	pos      int
	phase    float64
}

// NewTone creates a tone sweeping from one frequency to another.
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration, square float64) *Tone {
	return &Tone{sr: sr, from: from, to: to, square: square, length: max(1, sr.N(d))}
}

// Stream implements beep.Streamer.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		s := math.Sin(t.phase)
		if t.square > 0 {
			sq := 1.0
			if s < 0 {
				sq = -1
			}
			s = (1-t.square)*s + t.square*sq
		}
		s *= 0.3 * (1 - progress)

		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Tone) Err() error { return nil }
