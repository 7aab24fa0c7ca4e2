package bullet

import (
	"math"

	"github.com/cbodonnell/purgatorium/pkg/animations"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/google/uuid"
)

// Target is a read-only view of a moving point a bullet homes in on.
// The bullet reads it once per tick and never keeps the value.
type Target interface {
	CurrentPosition() kinematic.Vector
}

// StaticTarget is a Target that never moves.
type StaticTarget kinematic.Vector

func (t StaticTarget) CurrentPosition() kinematic.Vector {
	return kinematic.Vector(t)
}

// Bullet is a homing projectile with a decaying speed boost that dies after
// bouncing off the playfield edge too many times.
type Bullet struct {
	id   uuid.UUID
	body kinematic.Body

	velocity  kinematic.Vector
	baseSpeed float64
	speed     float64

	velocityBoost     float64
	velocityDecayRate float64
	velocityLifeTime  float64

	bounceCount int
	maxBounces  int
	active      bool

	scale  float64
	visual Visual

	target    Target
	playfield Playfield
	animation animations.Cycler
}

// Update advances the bullet by dt seconds. The anchor only modulates how
// sharply the bullet may turn. Inactive bullets are left untouched, as are
// ticks with a non-positive or non-finite dt.
func (b *Bullet) Update(dt float64, anchor kinematic.Vector) {
	if !b.active {
		return
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}

	b.animation.Update(dt)

	b.decayVelocity(dt)
	if b.bounceCount == 0 {
		b.steer(dt, b.target.CurrentPosition(), anchor)
	}

	b.body.Position = b.body.Position.Add(b.velocity.Scale(dt))
	b.resolveBoundary()
}

func (b *Bullet) ID() uuid.UUID {
	return b.id
}

// Body returns a copy of the bullet's position and size.
func (b *Bullet) Body() kinematic.Body {
	return b.body
}

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() kinematic.Rect {
	return b.body.Bounds()
}

func (b *Bullet) Position() kinematic.Vector {
	return b.body.Position
}

func (b *Bullet) Velocity() kinematic.Vector {
	return b.velocity
}

// Speed returns the current effective speed.
func (b *Bullet) Speed() float64 {
	return b.speed
}

func (b *Bullet) BaseSpeed() float64 {
	return b.baseSpeed
}

func (b *Bullet) VelocityBoost() float64 {
	return b.velocityBoost
}

func (b *Bullet) BounceCount() int {
	return b.bounceCount
}

func (b *Bullet) MaxBounces() int {
	return b.maxBounces
}

// Active reports whether the bullet is still live. Once false it stays false.
func (b *Bullet) Active() bool {
	return b.active
}

// Scale returns the pitch-derived size multiplier.
func (b *Bullet) Scale() float64 {
	return b.scale
}

func (b *Bullet) Visual() Visual {
	return b.visual
}

// Frame returns the current animation frame index.
func (b *Bullet) Frame() int {
	return b.animation.Frame()
}

func (b *Bullet) AnimationSet() animations.Set {
	return b.animation.Set()
}
