package bullet

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/cbodonnell/purgatorium/pkg/animations"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchScale(t *testing.T) {
	tests := []struct {
		name  string
		pitch int
		want  float64
	}{
		{name: "lowest piano key", pitch: 21, want: 3.0},
		{name: "second piano key", pitch: 22, want: 3.0},
		{name: "highest clamped key", pitch: 109, want: 1.0},
		{name: "below range", pitch: 0, want: 3.0},
		{name: "negative", pitch: -40, want: 3.0},
		{name: "above range", pitch: 200, want: 1.0},
		{name: "middle", pitch: 65, want: 3 - (43.0/87.0)*2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PitchScale(tt.pitch), 1e-4)
		})
	}
}

func testConfig(spawn, target kinematic.Vector) Config {
	cfg := DefaultConfig()
	cfg.Spawn = spawn
	cfg.Target = StaticTarget(target)
	cfg.Pitch = 109
	cfg.KeyVelocity = 127
	cfg.ColorScheme = 180
	return cfg
}

func TestNew(t *testing.T) {
	cfg := testConfig(kinematic.Vector{X: 0, Y: 0}, kinematic.Vector{X: 100, Y: 0})

	b, err := New(cfg)
	require.NoError(t, err)

	assert.True(t, b.Active())
	assert.Equal(t, 0, b.BounceCount())
	assert.Equal(t, 3, b.MaxBounces())
	assert.InDelta(t, 1.0, b.Scale(), 1e-9)
	assert.InDelta(t, 10.0, b.Body().Width, 1e-9)
	assert.InDelta(t, 10.0, b.Body().Height, 1e-9)
	assert.InDelta(t, 360.0, b.Speed(), 1e-9)
	assert.InDelta(t, 120.0, b.BaseSpeed(), 1e-9)
	assert.InDelta(t, 360.0, b.VelocityBoost(), 1e-9)
	assert.InDelta(t, 720.0, b.Velocity().X, 1e-9)
	assert.InDelta(t, 0.0, b.Velocity().Y, 1e-9)

	v := b.Visual()
	assert.InDelta(t, 0.5, v.Hue, 1e-9)
	assert.InDelta(t, 0.4+(109.0/128.0)*0.6, v.Saturation, 1e-9)
	assert.InDelta(t, 1.0, v.Value, 1e-9)
	assert.InDelta(t, 1.0, v.Alpha, 1e-9)
}

func TestNew_LowPitchIsLargeAndSlow(t *testing.T) {
	cfg := testConfig(kinematic.Vector{}, kinematic.Vector{X: 0, Y: 100})
	cfg.Pitch = 21
	cfg.KeyVelocity = 0

	b, err := New(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, b.Body().Width, 1e-9)
	assert.InDelta(t, 120.0, b.Speed(), 1e-9)
	assert.Equal(t, 0.0, b.VelocityBoost())
	assert.InDelta(t, 120.0, b.Velocity().Y, 1e-9)
}

func TestNew_ZeroDistanceSpawn(t *testing.T) {
	p := kinematic.Vector{X: 50, Y: 50}
	b, err := New(testConfig(p, p))
	require.NoError(t, err)

	assert.Equal(t, kinematic.Vector{}, b.Velocity())
	assert.False(t, math.IsNaN(b.Velocity().X))
}

func TestNew_NegativeKeyVelocityHasNoBoost(t *testing.T) {
	cfg := testConfig(kinematic.Vector{}, kinematic.Vector{X: 10, Y: 0})
	cfg.KeyVelocity = -50

	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.VelocityBoost())
	assert.InDelta(t, b.Speed(), b.Velocity().Length(), 1e-9)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "nil target", modify: func(c *Config) { c.Target = nil }},
		{name: "negative bounces", modify: func(c *Config) { c.MaxBounces = -1 }},
		{name: "zero base size", modify: func(c *Config) { c.BaseSize = 0 }},
		{name: "nan base speed", modify: func(c *Config) { c.BaseSpeed = math.NaN() }},
		{name: "negative decay", modify: func(c *Config) { c.DecayRate = -1 }},
		{name: "empty playfield", modify: func(c *Config) { c.Playfield = Playfield{} }},
		{name: "no animation sets", modify: func(c *Config) { c.AnimationSets = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(kinematic.Vector{}, kinematic.Vector{X: 1, Y: 1})
			tt.modify(&cfg)
			b, err := New(cfg)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNew_OutOfRangeMusicalInputIsAccepted(t *testing.T) {
	cfg := testConfig(kinematic.Vector{}, kinematic.Vector{X: 1, Y: 1})
	cfg.Pitch = 500
	cfg.KeyVelocity = 300
	cfg.ColorScheme = -90

	b, err := New(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, b.Scale(), 1e-9)
	assert.Greater(t, b.Visual().Alpha, 1.0)
}

func TestNew_DeterministicWithSeededRand(t *testing.T) {
	sets := []animations.Set{{Name: "a", FrameCount: 2}, {Name: "b", FrameCount: 3}, {Name: "c", FrameCount: 4}}
	spawn := func() *Bullet {
		cfg := testConfig(kinematic.Vector{}, kinematic.Vector{X: 1, Y: 1})
		cfg.AnimationSets = sets
		cfg.Rand = rand.New(rand.NewSource(7))
		b, err := New(cfg)
		require.NoError(t, err)
		return b
	}

	first, second := spawn(), spawn()
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, first.AnimationSet(), second.AnimationSet())
}

func TestVisual_Color(t *testing.T) {
	red := Visual{Hue: 0, Saturation: 1, Value: 1, Alpha: 1}
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, red.Color())
	assert.Equal(t, "#ff0000", red.Hex())

	wrapped := Visual{Hue: 1, Saturation: 1, Value: 1, Alpha: 2}
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, wrapped.Color())

	black := Visual{Hue: 0.25, Saturation: 0.5, Value: 0, Alpha: 0}
	assert.Equal(t, color.NRGBA{}, black.Color())
}
