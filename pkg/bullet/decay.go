package bullet

import (
	"math"

	"github.com/cbodonnell/purgatorium/pkg/game/constants"
)

// decayVelocity bleeds off the spawn boost exponentially over the bullet's
// lifetime and rescales the velocity to the resulting speed.
func (b *Bullet) decayVelocity(dt float64) {
	if b.velocityBoost <= 0 {
		return
	}

	b.velocityLifeTime += dt
	boost := b.baseSpeed * math.Exp(-b.velocityDecayRate*b.velocityLifeTime)
	// the boost only ever shrinks, even if the spawn boost started below the curve
	if boost > b.velocityBoost {
		boost = b.velocityBoost
	}
	if boost < constants.BulletBoostSnapThreshold {
		boost = 0
	}
	b.velocityBoost = boost
	b.speed = b.baseSpeed + boost

	if magnitude := b.velocity.Length(); magnitude > 0 {
		b.velocity = b.velocity.Scale(b.speed / magnitude)
	}
}
