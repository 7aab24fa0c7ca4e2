package bullet

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cbodonnell/purgatorium/pkg/animations"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
)

// ErrInvalidConfig is returned by New when a tunable is out of range.
var ErrInvalidConfig = errors.New("invalid bullet config")

// Playfield is the area bullets bounce around in. The same value must be used
// for spawning and for boundary collisions.
type Playfield struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultPlayfield is the virtual screen size of the game.
var DefaultPlayfield = Playfield{
	Width:  constants.PlayfieldWidth,
	Height: constants.PlayfieldHeight,
}

// Diagonal returns the length of the playfield diagonal.
func (p Playfield) Diagonal() float64 {
	return math.Hypot(p.Width, p.Height)
}

// Config holds everything needed to spawn a bullet.
type Config struct {
	// Spawn is the top-left position the bullet starts at.
	Spawn kinematic.Vector
	// Target is observed every tick while the bullet is homing.
	Target Target

	// Pitch is the MIDI note number, nominally 0-127.
	Pitch int
	// KeyVelocity is the MIDI key velocity, nominally 0-127.
	KeyVelocity int
	// ColorScheme is a hue in degrees.
	ColorScheme int

	MaxBounces int
	BaseSize   float64
	BaseSpeed  float64
	DecayRate  float64

	Playfield Playfield
	// AnimationSets are the sprite cycles a bullet may be drawn with.
	AnimationSets []animations.Set
	// Rand picks the animation set and seeds the bullet ID. When nil the
	// first set is used and the ID comes from crypto/rand.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with the default tunables. Spawn, Target and
// the musical inputs still need to be filled in.
func DefaultConfig() Config {
	return Config{
		MaxBounces:    constants.BulletMaxBounces,
		BaseSize:      constants.BulletBaseSize,
		BaseSpeed:     constants.BulletBaseSpeed,
		DecayRate:     constants.BulletDecayRate,
		Playfield:     DefaultPlayfield,
		AnimationSets: animations.DefaultSets,
	}
}

// Validate checks the tunables. Musical inputs are never rejected.
func (c Config) Validate() error {
	if c.Target == nil {
		return fmt.Errorf("%w: target is required", ErrInvalidConfig)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("%w: max bounces must not be negative, got %d", ErrInvalidConfig, c.MaxBounces)
	}
	if !positive(c.BaseSize) {
		return fmt.Errorf("%w: base size must be positive, got %v", ErrInvalidConfig, c.BaseSize)
	}
	if !positive(c.BaseSpeed) {
		return fmt.Errorf("%w: base speed must be positive, got %v", ErrInvalidConfig, c.BaseSpeed)
	}
	if c.DecayRate < 0 || math.IsNaN(c.DecayRate) || math.IsInf(c.DecayRate, 0) {
		return fmt.Errorf("%w: decay rate must be a non-negative number, got %v", ErrInvalidConfig, c.DecayRate)
	}
	if !positive(c.Playfield.Width) || !positive(c.Playfield.Height) {
		return fmt.Errorf("%w: playfield must have a positive size, got %vx%v", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	}
	if len(c.AnimationSets) == 0 {
		return fmt.Errorf("%w: at least one animation set is required", ErrInvalidConfig)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
