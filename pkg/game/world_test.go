package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/purgatorium/pkg/bullet"
	"github.com/cbodonnell/purgatorium/pkg/collisions"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, modify func(*NewWorldOptions)) *World {
	t.Helper()
	opts := NewWorldOptions{
		Template:    bullet.DefaultConfig(),
		Playfield:   bullet.Playfield{Width: 640, Height: 480},
		ColorScheme: 200,
		Rand:        rand.New(rand.NewSource(1)),
	}
	if modify != nil {
		modify(&opts)
	}
	w, err := NewWorld(opts)
	require.NoError(t, err)
	return w
}

func TestClampDeltaTime(t *testing.T) {
	assert.Equal(t, 0.0, ClampDeltaTime(-1))
	assert.Equal(t, 0.0, ClampDeltaTime(math.NaN()))
	assert.Equal(t, 0.016, ClampDeltaTime(0.016))
	assert.Equal(t, constants.MaxDeltaTime, ClampDeltaTime(3))
	assert.Equal(t, constants.MaxDeltaTime, ClampDeltaTime(math.Inf(1)))
}

func TestNewWorld_InvalidTemplate(t *testing.T) {
	template := bullet.DefaultConfig()
	template.BaseSpeed = 0
	_, err := NewWorld(NewWorldOptions{Template: template})
	assert.ErrorIs(t, err, bullet.ErrInvalidConfig)
}

func TestNewWorld_Defaults(t *testing.T) {
	w, err := NewWorld(NewWorldOptions{Template: bullet.DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, bullet.DefaultPlayfield, w.Playfield())
	assert.Equal(t, kinematic.Vector{X: 640, Y: 360}, w.Anchor())

	w.SetAnchor(kinematic.Vector{X: 1, Y: 2})
	assert.Equal(t, kinematic.Vector{X: 1, Y: 2}, w.Anchor())
}

func TestWorld_Spawn(t *testing.T) {
	w := newTestWorld(t, nil)

	low, err := w.Spawn(notes.Note{MIDINumber: 21, Velocity: 100, Channel: 0})
	require.NoError(t, err)
	high, err := w.Spawn(notes.Note{MIDINumber: 109, Velocity: 100, Channel: 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, low.Position().X)
	assert.Equal(t, 640.0-30.0, high.Position().X)
	assert.Equal(t, 0.0, high.Position().Y)
	assert.Greater(t, low.Body().Width, high.Body().Width)
	assert.InDelta(t, 200.0/360, low.Visual().Hue, 1e-9)
	assert.InDelta(t, 245.0/360, high.Visual().Hue, 1e-9)

	assert.Len(t, w.Bullets(), 2)
	assert.Len(t, w.hitboxes, 2)
	assert.Equal(t, uint64(2), w.Stats().Spawned)
}

func TestWorld_StepSweepsSpentBullets(t *testing.T) {
	w := newTestWorld(t, func(o *NewWorldOptions) {
		o.Template.MaxBounces = 0
		o.Anchor = &kinematic.Vector{X: 1e6, Y: 1e6}
	})

	for i := 0; i < 5; i++ {
		_, err := w.Spawn(notes.Note{MIDINumber: 30 + i*15, Velocity: 127})
		require.NoError(t, err)
	}

	var swept int
	for i := 0; i < 60*30 && len(w.Bullets()) > 0; i++ {
		swept += w.Step(1.0 / 60)
		for _, b := range w.Bullets() {
			assert.True(t, b.Active(), "no inactive bullet should survive a step")
		}
	}

	assert.Equal(t, 5, swept)
	assert.Empty(t, w.Bullets())
	assert.Empty(t, w.hitboxes)
	assert.Empty(t, w.hits)
	assert.Equal(t, uint64(5), w.Stats().Swept)

	spawned, sweptEvents := w.DrainEvents()
	require.Len(t, spawned, 5)
	require.Len(t, sweptEvents, 5)
	spawnedIDs := make([]string, 0, len(spawned))
	for _, b := range spawned {
		assert.True(t, b.Active)
		spawnedIDs = append(spawnedIDs, b.ID)
	}
	for _, b := range sweptEvents {
		assert.False(t, b.Active)
		assert.Contains(t, spawnedIDs, b.ID)
	}

	spawned, sweptEvents = w.DrainEvents()
	assert.Empty(t, spawned)
	assert.Empty(t, sweptEvents)
}

func TestWorld_CountsEachHitOnce(t *testing.T) {
	w := newTestWorld(t, nil)
	b, err := w.Spawn(notes.Note{MIDINumber: 60, Velocity: 0})
	require.NoError(t, err)

	w.detectHits()
	require.Equal(t, uint64(0), w.Stats().PlayerHits)

	// park the player on top of the bullet
	w.player.Body.Position = b.Position()
	collisions.SyncObject(w.player.Object, w.player.Body)

	w.detectHits()
	w.detectHits()
	assert.Equal(t, uint64(1), w.Stats().PlayerHits)
	assert.True(t, b.Active(), "hits do not end a bullet")
}

func TestWorld_Snapshot(t *testing.T) {
	w := newTestWorld(t, nil)
	_, err := w.Spawn(notes.Note{MIDINumber: 60, Velocity: 64, Channel: 2})
	require.NoError(t, err)
	w.Step(1.0 / 60)

	now := time.UnixMilli(1700000000000)
	s := w.Snapshot(now)

	assert.Equal(t, int64(1700000000000), s.Timestamp)
	assert.Equal(t, uint64(1), s.Frame)
	assert.InDelta(t, 1.0/60, s.Elapsed, 1e-12)
	require.Len(t, s.Bullets, 1)

	b := w.Bullets()[0]
	got := s.Bullets[0]
	assert.Equal(t, b.ID().String(), got.ID)
	assert.Equal(t, b.Body(), got.Body)
	assert.Equal(t, b.Velocity(), got.Velocity)
	assert.Equal(t, "bullet", got.Animation)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, got.Color)
	assert.True(t, got.Active)
}

func TestWorld_StepMovesEverything(t *testing.T) {
	w := newTestWorld(t, nil)
	b, err := w.Spawn(notes.Note{MIDINumber: 21, Velocity: 0})
	require.NoError(t, err)

	bulletStart, playerStart := b.Position(), w.Player().Body.Position
	w.Step(1.0 / 60)

	assert.NotEqual(t, bulletStart, b.Position())
	assert.NotEqual(t, playerStart, w.Player().Body.Position)
}

func TestWorld_StepClampsLongFrames(t *testing.T) {
	w := newTestWorld(t, func(o *NewWorldOptions) {
		o.Anchor = &kinematic.Vector{X: 1e6, Y: 1e6}
	})
	b, err := w.Spawn(notes.Note{MIDINumber: 21, Velocity: 0})
	require.NoError(t, err)
	start := b.Position()

	w.Step(10)

	assert.InDelta(t, constants.MaxDeltaTime, w.Snapshot(time.Now()).Elapsed, 1e-12)
	assert.LessOrEqual(t, b.Position().Distance(start), b.Speed()*constants.MaxDeltaTime+1e-9)
}
