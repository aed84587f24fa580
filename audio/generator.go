package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WhooshGenerator is a short rising sweep played when a piece sets off
type WhooshGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func NewWhooshGenerator(sr beep.SampleRate, d time.Duration) *WhooshGenerator {
	return &WhooshGenerator{sr: sr, samples: sr.N(d)}
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)

		// 180Hz to 420Hz sweep under a sine hump envelope
		freq := 180 + 240*progress
		amplitude := 0.12 * math.Sin(progress*math.Pi)
		sample := amplitude * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz for refused commands
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ClashGenerator generates a decaying noise burst over a low thump for captures
type ClashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewClashGenerator takes a seed so the noise is reproducible
func NewClashGenerator(sr beep.SampleRate, seed int64) *ClashGenerator {
	return &ClashGenerator{sr: sr, seed: seed & 0x7fffffff}
}

func (g *ClashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.35 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.3*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClashGenerator) Err() error {
	return nil
}

// FanfareGenerator plays a rising major arpeggio, one note per step, then ends
type FanfareGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	pos   int
}

// Fanfare notes: C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

func NewFanfareGenerator(sr beep.SampleRate, noteLen time.Duration) *FanfareGenerator {
	return &FanfareGenerator{sr: sr, notes: fanfareNotes, step: sr.N(noteLen)}
}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.step * len(g.notes)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.notes[g.pos/g.step]
		inNote := float64(g.pos%g.step) / float64(g.sr)
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-inNote * 6)
		sample := 0.2 * envelope * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error {
	return nil
}
