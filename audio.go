package main

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// tone describes a short percussive knock.
type tone struct {
	freq    float64 // Hz at the start of the note
	seconds float64
	amp     float64
}

// knockFor maps the combined size of two colliding bodies to a pitch:
// bigger pairs sound lower.
func knockFor(r1, r2 float64) tone {
	f := 880 * 60 / math.Max(r1+r2, 1)
	return tone{
		freq:    math.Max(110, math.Min(f, 1760)),
		seconds: 0.06,
		amp:     0.22,
	}
}

// pcm renders t as 16-bit little-endian stereo PCM with a short fade-in,
// exponential decay and a slight downward pitch glide.
func (t tone) pcm(rate int) []byte {
	n := int(float64(rate) * t.seconds)
	if n <= 1 {
		return nil
	}
	var b bytes.Buffer
	b.Grow(n * 4)

	attackN := int(math.Min(0.005, t.seconds*0.2) * float64(rate))
	// -60dB by the last sample
	const lambda = 6.9
	start, end := t.freq*1.03, t.freq*0.92

	phase := 0.0
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		env := t.amp * math.Exp(-lambda*x)
		if i < attackN {
			env *= 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackN))
		}

		phase += 2 * math.Pi * start * math.Pow(end/start, x) / float64(rate)
		s := (math.Sin(phase) + 0.18*math.Sin(2*phase)) * env

		v := int16(clamp(s, -1, 1) * 32767)
		// same sample on both channels
		b.Write([]byte{byte(v), byte(v >> 8), byte(v), byte(v >> 8)})
	}
	return b.Bytes()
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// contactSound plays a knock whenever two bodies start touching. Rendered
// PCM is kept per tone; a scene only produces a handful of distinct pitches.
type contactSound struct {
	ctx   *audio.Context
	cache map[tone][]byte
}

func newContactSound() *contactSound {
	return &contactSound{ctx: audio.NewContext(sampleRate)}
}

func (s *contactSound) samples(t tone) []byte {
	if b, ok := s.cache[t]; ok {
		return b
	}
	if s.cache == nil {
		s.cache = make(map[tone][]byte)
	}
	b := t.pcm(sampleRate)
	s.cache[t] = b
	return b
}

func (s *contactSound) play(t tone) {
	if s == nil {
		return
	}
	// a new player per knock so overlapping contacts don't cut each other off
	pl := s.ctx.NewPlayerFromBytes(s.samples(t))
	if err := pl.Rewind(); err != nil {
		log.Printf("audio rewind failed: %v", err)
		return
	}
	pl.Play()
}
