package bullet

// Releaser frees whatever a collection holds on behalf of a bullet.
type Releaser interface {
	Release(b *Bullet)
}

// Sweep removes inactive bullets from bullets in place, keeping the survivors
// in order, and releases each removed bullet through r (which may be nil).
// The returned slice shares the backing array of bullets.
func Sweep(bullets []*Bullet, r Releaser) []*Bullet {
	live := bullets[:0]
	for _, b := range bullets {
		if b == nil {
			continue
		}
		if b.active {
			live = append(live, b)
			continue
		}
		if r != nil {
			r.Release(b)
		}
	}
	// clear the tail so swept bullets can be collected
	for i := len(live); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return live
}
