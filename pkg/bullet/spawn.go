package bullet

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cbodonnell/purgatorium/pkg/animations"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// PitchScale maps a MIDI note number to a size multiplier in [1, 3]. Low notes
// give large, slow bullets and high notes small, fast ones.
func PitchScale(pitch int) float64 {
	clamped := pitch - constants.PitchOffset
	if clamped < 0 {
		clamped = 0
	}
	if clamped > constants.PitchRange {
		clamped = constants.PitchRange
	}
	span := float64(constants.PitchRange - 1)
	scale := 3 - (float64(clamped-1)/span)*2
	return kinematic.Clamp(scale, 1, 3)
}

// Visual holds the colour attributes a renderer draws the bullet with.
// All fields are fractions; out-of-range musical input can push them outside
// [0, 1].
type Visual struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
	Alpha      float64 `json:"alpha"`
}

// NewVisual derives the colour attributes from the musical input.
func NewVisual(pitch, keyVelocity, colorScheme int) Visual {
	kv := float64(keyVelocity) / constants.KeyVelocityMax
	return Visual{
		Hue:        float64(colorScheme) / 360,
		Saturation: 0.4 + (float64(pitch)/128)*0.6,
		Value:      0.5 + kv*0.5,
		Alpha:      0.6 + kv*0.4,
	}
}

// Color converts the attributes to a displayable colour, wrapping the hue and
// clamping everything else into gamut.
func (v Visual) Color() color.NRGBA {
	hue := math.Mod(v.Hue*360, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsv(hue, kinematic.Clamp(v.Saturation, 0, 1), kinematic.Clamp(v.Value, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(kinematic.Clamp(v.Alpha, 0, 1) * 255))}
}

// Hex returns the colour without alpha as #rrggbb.
func (v Visual) Hex() string {
	c := v.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// New spawns a bullet heading straight at the target.
func New(cfg Config) (*Bullet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id, err := newID(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bullet id: %v", err)
	}

	scale := PitchScale(cfg.Pitch)
	size := cfg.BaseSize * scale
	speed := cfg.BaseSpeed * (4 - scale)
	boost := math.Max(0, float64(cfg.KeyVelocity)/constants.KeyVelocityMax*speed)

	direction := cfg.Target.CurrentPosition().Sub(cfg.Spawn).Normalize()

	return &Bullet{
		id: id,
		body: kinematic.Body{
			Position: cfg.Spawn,
			Width:    size,
			Height:   size,
		},
		velocity:          direction.Scale(speed + boost),
		baseSpeed:         cfg.BaseSpeed,
		speed:             speed,
		velocityBoost:     boost,
		velocityDecayRate: cfg.DecayRate,
		maxBounces:        cfg.MaxBounces,
		active:            true,
		scale:             scale,
		visual:            NewVisual(cfg.Pitch, cfg.KeyVelocity, cfg.ColorScheme),
		target:            cfg.Target,
		playfield:         cfg.Playfield,
		animation: animations.NewCycler(animations.NewCyclerOptions{
			Set:      animations.Pick(cfg.Rand, cfg.AnimationSets),
			Interval: constants.AnimationFrameInterval,
		}),
	}, nil
}

func newID(cfg Config) (uuid.UUID, error) {
	if cfg.Rand == nil {
		return uuid.NewRandom()
	}
	return uuid.NewRandomFromReader(cfg.Rand)
}
