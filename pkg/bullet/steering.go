package bullet

import (
	"math"

	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
)

// MaxTurnRate returns the steering limit in radians per second. The limit
// ramps up steeply as the anchor closes in on the target; across most of the
// playfield it stays near the base rate.
func MaxTurnRate(target, anchor kinematic.Vector, playfield Playfield) float64 {
	ratio := 1.0
	if diagonal := playfield.Diagonal(); diagonal > 0 {
		ratio = kinematic.Clamp(anchor.Distance(target)/diagonal, 0, 1)
	}
	proximity := 1 - ratio
	boost := constants.BulletMaxTurnBoost * math.Pow(proximity, constants.BulletTurnBoostExponent)
	return kinematic.DegToRad(constants.BulletBaseTurnRate + boost)
}

// steer rotates the velocity toward the target by at most the turn rate
// allowed for this tick. Speed is unchanged.
func (b *Bullet) steer(dt float64, target, anchor kinematic.Vector) {
	desired := target.Sub(b.body.Position)
	magnitude := b.velocity.Length()
	if desired.IsZero() || magnitude == 0 {
		return
	}

	delta := kinematic.NormalizeAngle(desired.Angle() - b.velocity.Angle())
	limit := MaxTurnRate(target, anchor, b.playfield) * dt
	delta = kinematic.Clamp(delta, -limit, limit)
	if delta == 0 {
		return
	}

	b.velocity = b.velocity.Scale(1 / magnitude).Rotate(delta).Scale(magnitude)
}
