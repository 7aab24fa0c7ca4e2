package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/messages"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/cbodonnell/purgatorium/pkg/queue"
	"github.com/cbodonnell/purgatorium/pkg/state"
)

// Broadcaster pushes messages to any connected observers.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *messages.Message)
}

type GameManager struct {
	world            *World
	noteSource       notes.Source
	spawnQueue       queue.Queue[notes.Note]
	stateManager     state.StateManager
	broadcaster      Broadcaster
	gameLoopInterval time.Duration
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	World *World
	// NoteSource drives spawning from a chart or generator. Optional.
	NoteSource notes.Source
	// SpawnQueue carries notes injected from outside the game loop. Optional.
	SpawnQueue   queue.Queue[notes.Note]
	StateManager state.StateManager
	// Broadcaster receives a snapshot every frame. Optional.
	Broadcaster      Broadcaster
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		world:            opts.World,
		noteSource:       opts.NoteSource,
		spawnQueue:       opts.SpawnQueue,
		stateManager:     opts.StateManager,
		broadcaster:      opts.Broadcaster,
		gameLoopInterval: opts.GameLoopInterval,
	}
}

// Start runs the game loop until ctx is cancelled.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("game loop interval must be positive, got %v", gm.gameLoopInterval)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			dt := t.Sub(last).Seconds()
			last = t
			if err := gm.gameTick(ctx, dt, t); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context, dt float64, t time.Time) error {
	dt = ClampDeltaTime(dt)

	gm.spawnPendingNotes(dt)
	gm.world.Step(dt)

	spawned, swept := gm.world.DrainEvents()
	snapshot := gm.world.Snapshot(t)
	if err := gm.stateManager.Set(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to set world snapshot: %v", err)
	}

	if gm.broadcaster == nil {
		return nil
	}
	if err := gm.broadcastBulletEvents(ctx, messages.MessageTypeBulletSpawned, snapshot.Frame, spawned); err != nil {
		return err
	}
	if err := gm.broadcastBulletEvents(ctx, messages.MessageTypeBulletSwept, snapshot.Frame, swept); err != nil {
		return err
	}
	msg, err := messages.NewWorldSnapshotMessage(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize world snapshot: %v", err)
	}
	gm.broadcaster.Broadcast(ctx, msg)

	return nil
}

// broadcastBulletEvents sends one message listing every bullet in bullets.
// Nothing is sent for an empty list.
func (gm *GameManager) broadcastBulletEvents(ctx context.Context, t messages.MessageType, frame uint64, bullets []messages.BulletSnapshot) error {
	if len(bullets) == 0 {
		return nil
	}
	msg, err := messages.NewMessage(t, &messages.BulletEvents{Frame: frame, Bullets: bullets})
	if err != nil {
		return fmt.Errorf("failed to marshal %s events: %v", t, err)
	}
	gm.broadcaster.Broadcast(ctx, msg)
	return nil
}

// spawnPendingNotes spawns bullets for notes injected through the spawn queue
// and for notes the note source releases this frame.
func (gm *GameManager) spawnPendingNotes(dt float64) {
	var pending []notes.Note
	if gm.spawnQueue != nil {
		pending = append(pending, gm.spawnQueue.ReadAllMessages()...)
	}
	if gm.noteSource != nil {
		pending = append(pending, gm.noteSource.Advance(dt)...)
	}

	for _, note := range pending {
		if _, err := gm.world.Spawn(note); err != nil {
			log.Error("Failed to spawn bullet for note %d: %v", note.MIDINumber, err)
		}
	}
}

// World returns the world driven by the manager.
func (gm *GameManager) World() *World {
	return gm.world
}
