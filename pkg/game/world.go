package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cbodonnell/purgatorium/pkg/bullet"
	"github.com/cbodonnell/purgatorium/pkg/collisions"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/game/types"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/messages"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// ClampDeltaTime bounds a frame's delta time to [0, MaxDeltaTime] so a stall
// cannot turn into one huge step.
func ClampDeltaTime(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return math.Min(dt, constants.MaxDeltaTime)
}

// World owns the live bullets, the player they chase and the collision space
// both live in. It is not safe for concurrent use; the game loop is its only
// caller.
type World struct {
	playfield   bullet.Playfield
	template    bullet.Config
	colorScheme int
	rng         *rand.Rand

	space  *resolv.Space
	player *types.PlayerState
	anchor kinematic.Vector

	bullets  []*bullet.Bullet
	hitboxes map[uuid.UUID]*resolv.Object
	// hits holds the bullets that have already struck the player
	hits map[uuid.UUID]struct{}

	frame   uint64
	elapsed float64
	stats   messages.WorldStats

	// spawned and swept collect bullet events until DrainEvents
	spawned []messages.BulletSnapshot
	swept   []messages.BulletSnapshot
}

// NewWorldOptions contains options for creating a new World.
type NewWorldOptions struct {
	// Template supplies the bullet tunables. Spawn, target, musical input,
	// playfield and random source are filled in per note.
	Template bullet.Config
	// Playfield defaults to bullet.DefaultPlayfield when zero.
	Playfield bullet.Playfield
	// ColorScheme is the base hue in degrees for channel 0.
	ColorScheme int
	// Anchor defaults to the playfield centre when nil.
	Anchor *kinematic.Vector
	Rand   *rand.Rand
}

func NewWorld(opts NewWorldOptions) (*World, error) {
	playfield := opts.Playfield
	if playfield == (bullet.Playfield{}) {
		playfield = bullet.DefaultPlayfield
	}

	player := types.NewPlayerState(playfield.Width, playfield.Height)

	template := opts.Template
	template.Playfield = playfield
	template.Target = player
	if err := template.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate bullet template: %w", err)
	}

	anchor := kinematic.Vector{X: playfield.Width / 2, Y: playfield.Height / 2}
	if opts.Anchor != nil {
		anchor = *opts.Anchor
	}

	space := collisions.NewCollisionSpace(playfield.Width, playfield.Height)
	space.Add(player.Object)

	return &World{
		playfield:   playfield,
		template:    template,
		colorScheme: opts.ColorScheme,
		rng:         opts.Rand,
		space:       space,
		player:      player,
		anchor:      anchor,
		bullets:     make([]*bullet.Bullet, 0),
		hitboxes:    make(map[uuid.UUID]*resolv.Object),
		hits:        make(map[uuid.UUID]struct{}),
	}, nil
}

// Spawn fires a bullet for a note from the top edge of the playfield, further
// right for higher notes.
func (w *World) Spawn(note notes.Note) (*bullet.Bullet, error) {
	cfg := w.template
	cfg.Spawn = w.spawnPoint(note)
	cfg.Pitch = note.MIDINumber
	cfg.KeyVelocity = note.Velocity
	cfg.ColorScheme = note.ColorScheme(w.colorScheme)
	cfg.Rand = w.rng

	b, err := bullet.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn bullet: %w", err)
	}

	hitbox := collisions.NewObject(b.Body(), collisions.CollisionSpaceTagBullet)
	w.space.Add(hitbox)
	w.hitboxes[b.ID()] = hitbox
	w.bullets = append(w.bullets, b)
	w.stats.Spawned++
	w.spawned = append(w.spawned, BulletSnapshotFromBullet(b))

	log.Trace("Spawned bullet %s for note %d (velocity %d, channel %d)", b.ID(), note.MIDINumber, note.Velocity, note.Channel)
	return b, nil
}

func (w *World) spawnPoint(note notes.Note) kinematic.Vector {
	largest := w.template.BaseSize * 3
	span := math.Max(0, w.playfield.Width-largest)
	return kinematic.Vector{X: note.PitchFraction() * span, Y: 0}
}

// Step advances the world by one frame: the player moves, every bullet ticks,
// hits on the player are counted and spent bullets are swept. It returns the
// number of bullets swept.
func (w *World) Step(dt float64) int {
	dt = ClampDeltaTime(dt)
	w.frame++
	w.elapsed += dt

	w.player.Update(dt)
	for _, b := range w.bullets {
		b.Update(dt, w.anchor)
	}
	w.detectHits()

	before := len(w.bullets)
	w.bullets = bullet.Sweep(w.bullets, w)
	swept := before - len(w.bullets)
	if swept > 0 {
		log.Trace("Swept %d bullets, %d live", swept, len(w.bullets))
	}
	return swept
}

func (w *World) detectHits() {
	playerBounds := w.player.Body.Bounds()
	for _, b := range w.bullets {
		if !b.Active() {
			continue
		}
		hitbox, ok := w.hitboxes[b.ID()]
		if !ok {
			continue
		}
		collisions.SyncObject(hitbox, b.Body())

		if _, ok := w.hits[b.ID()]; ok {
			continue
		}
		for _, obj := range collisions.Touching(hitbox, collisions.CollisionSpaceTagPlayer) {
			if obj != w.player.Object || !b.Bounds().Overlaps(playerBounds) {
				continue
			}
			w.hits[b.ID()] = struct{}{}
			w.stats.PlayerHits++
			log.Debug("Bullet %s hit the player", b.ID())
			break
		}
	}
}

// Release removes a swept bullet's hitbox from the collision space.
func (w *World) Release(b *bullet.Bullet) {
	if hitbox, ok := w.hitboxes[b.ID()]; ok {
		w.space.Remove(hitbox)
		delete(w.hitboxes, b.ID())
	}
	delete(w.hits, b.ID())
	w.stats.Swept++
	w.swept = append(w.swept, BulletSnapshotFromBullet(b))
}

// DrainEvents returns the bullets spawned and swept since the last call.
func (w *World) DrainEvents() (spawned, swept []messages.BulletSnapshot) {
	spawned, swept = w.spawned, w.swept
	w.spawned, w.swept = nil, nil
	return spawned, swept
}

// Bullets returns the live bullets. The slice must not be modified.
func (w *World) Bullets() []*bullet.Bullet {
	return w.bullets
}

func (w *World) Player() *types.PlayerState {
	return w.player
}

func (w *World) Anchor() kinematic.Vector {
	return w.anchor
}

func (w *World) SetAnchor(anchor kinematic.Vector) {
	w.anchor = anchor
}

func (w *World) Playfield() bullet.Playfield {
	return w.playfield
}

func (w *World) Stats() messages.WorldStats {
	return w.stats
}

// Snapshot captures the world for publishing.
func (w *World) Snapshot(now time.Time) *messages.WorldSnapshot {
	bullets := make([]messages.BulletSnapshot, 0, len(w.bullets))
	for _, b := range w.bullets {
		bullets = append(bullets, BulletSnapshotFromBullet(b))
	}
	return &messages.WorldSnapshot{
		Timestamp: now.UnixMilli(),
		Frame:     w.frame,
		Elapsed:   w.elapsed,
		Player:    w.player.Body,
		Anchor:    w.anchor,
		Bullets:   bullets,
		Stats:     w.stats,
	}
}

func BulletSnapshotFromBullet(b *bullet.Bullet) messages.BulletSnapshot {
	visual := b.Visual()
	return messages.BulletSnapshot{
		ID:            b.ID().String(),
		Body:          b.Body(),
		Velocity:      b.Velocity(),
		Speed:         b.Speed(),
		VelocityBoost: b.VelocityBoost(),
		BounceCount:   b.BounceCount(),
		MaxBounces:    b.MaxBounces(),
		Active:        b.Active(),
		Animation:     b.AnimationSet().Name,
		Frame:         b.Frame(),
		Color:         visual.Hex(),
		Alpha:         kinematic.Clamp(visual.Alpha, 0, 1),
	}
}
