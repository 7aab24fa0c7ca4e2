package notes

import (
	"math/rand"

	"github.com/cbodonnell/purgatorium/pkg/game/constants"
)

// Generator produces an endless stream of random notes. It stands in for a
// chart when none is loaded.
type Generator struct {
	rng      *rand.Rand
	interval float64
	channels int
	clock    float64
	due      float64
}

type NewGeneratorOptions struct {
	Rand *rand.Rand
	// Interval is the mean time between notes in seconds.
	Interval float64
	// Channels is the number of channels notes are spread over.
	Channels int
}

func NewGenerator(opts NewGeneratorOptions) *Generator {
	interval := opts.Interval
	if interval <= 0 {
		interval = 0.5
	}
	channels := opts.Channels
	if channels <= 0 {
		channels = 1
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g := &Generator{
		rng:      rng,
		interval: interval,
		channels: channels,
	}
	g.due = g.nextGap()
	return g
}

// Advance moves the generator clock forward and returns the notes that fell
// due.
func (g *Generator) Advance(dt float64) []Note {
	if dt <= 0 {
		return nil
	}
	g.clock += dt

	var due []Note
	for g.due <= g.clock {
		due = append(due, Note{
			Time:       g.due,
			MIDINumber: constants.PitchOffset + g.rng.Intn(constants.PitchRange+1),
			Velocity:   32 + g.rng.Intn(96),
			Duration:   0.1 + g.rng.Float64()*0.4,
			Channel:    g.rng.Intn(g.channels),
		})
		g.due += g.nextGap()
	}
	return due
}

func (g *Generator) Done() bool {
	return false
}

// nextGap jitters the interval by up to half in either direction.
func (g *Generator) nextGap() float64 {
	return g.interval * (0.5 + g.rng.Float64())
}
