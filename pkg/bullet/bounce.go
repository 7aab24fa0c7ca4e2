package bullet

import "math"

// resolveBoundary keeps the bullet inside the playfield, reflecting the
// velocity off any edge it crossed. Touching two edges in one tick still
// counts as a single bounce.
func (b *Bullet) resolveBoundary() {
	maxX := math.Max(0, b.playfield.Width-b.body.Width)
	maxY := math.Max(0, b.playfield.Height-b.body.Height)

	bounced := false
	if b.body.Position.X < 0 {
		b.body.Position.X = 0
		b.velocity.X = math.Abs(b.velocity.X)
		bounced = true
	} else if b.body.Position.X > maxX {
		b.body.Position.X = maxX
		b.velocity.X = -math.Abs(b.velocity.X)
		bounced = true
	}
	if b.body.Position.Y < 0 {
		b.body.Position.Y = 0
		b.velocity.Y = math.Abs(b.velocity.Y)
		bounced = true
	} else if b.body.Position.Y > maxY {
		b.body.Position.Y = maxY
		b.velocity.Y = -math.Abs(b.velocity.Y)
		bounced = true
	}

	if !bounced {
		return
	}
	b.bounceCount++
	if b.bounceCount > b.maxBounces {
		b.active = false
	}
}
