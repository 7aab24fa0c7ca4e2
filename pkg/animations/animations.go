package animations

import (
	"math/rand"

	"github.com/cbodonnell/purgatorium/pkg/game/constants"
)

// Set describes a sequence of sprite frames. The frames themselves belong to
// the renderer; the simulation only needs to know how many there are.
type Set struct {
	// Name identifies the sprite folder or sheet the renderer draws from.
	Name string `json:"name"`
	// FrameCount is the number of frames in the cycle.
	FrameCount int `json:"frameCount"`
}

// DefaultSets is the set list used when none is configured.
var DefaultSets = []Set{
	{Name: "bullet", FrameCount: constants.BulletFrameCount},
}

// Pick chooses one of sets using rng. A nil rng always picks the first set.
// It returns the zero Set when sets is empty.
func Pick(rng *rand.Rand, sets []Set) Set {
	if len(sets) == 0 {
		return Set{}
	}
	if rng == nil {
		return sets[0]
	}
	return sets[rng.Intn(len(sets))]
}

// Cycler advances a frame index on a fixed timer.
type Cycler struct {
	// set is the frame sequence being cycled.
	set Set
	// interval is the time each frame is shown.
	interval float64
	// timer accumulates time since the last frame change.
	timer float64
	// frameIndex is the current frame index.
	frameIndex int
}

type NewCyclerOptions struct {
	Set      Set
	Interval float64
}

func NewCycler(opts NewCyclerOptions) Cycler {
	interval := opts.Interval
	if interval <= 0 {
		interval = constants.AnimationFrameInterval
	}
	return Cycler{
		set:      opts.Set,
		interval: interval,
	}
}

// Update accumulates dt and steps to the next frame once the accumulated time
// exceeds the frame interval.
func (c *Cycler) Update(dt float64) {
	if c.set.FrameCount <= 0 {
		return
	}
	c.timer += dt
	if c.timer > c.interval {
		c.timer -= c.interval
		c.frameIndex = (c.frameIndex + 1) % c.set.FrameCount
	}
}

func (c *Cycler) Reset() {
	c.timer = 0
	c.frameIndex = 0
}

// Frame returns the current frame index.
func (c *Cycler) Frame() int {
	return c.frameIndex
}

func (c *Cycler) Set() Set {
	return c.set
}
