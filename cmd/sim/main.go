package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/purgatorium/pkg/api"
	"github.com/cbodonnell/purgatorium/pkg/bullet"
	"github.com/cbodonnell/purgatorium/pkg/game"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/network"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/cbodonnell/purgatorium/pkg/queue"
	"github.com/cbodonnell/purgatorium/pkg/state"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	apiPort := flag.Int("api-port", 8080, "Port for the debug API and snapshot stream")
	tick := flag.Duration("tick", 16*time.Millisecond, "Game loop interval")
	chartPath := flag.String("chart", "", "Note chart to play (.json or .json.zst); random notes when empty")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	width := flag.Float64("width", constants.PlayfieldWidth, "Playfield width")
	height := flag.Float64("height", constants.PlayfieldHeight, "Playfield height")
	maxBounces := flag.Int("max-bounces", constants.BulletMaxBounces, "Bounces a bullet survives")
	baseSize := flag.Float64("base-size", constants.BulletBaseSize, "Bullet edge length at scale 1")
	baseSpeed := flag.Float64("base-speed", constants.BulletBaseSpeed, "Bullet cruising speed")
	decayRate := flag.Float64("decay-rate", constants.BulletDecayRate, "Velocity boost decay rate")
	colorScheme := flag.Int("color-scheme", 0, "Base hue in degrees")
	duration := flag.Duration("duration", 0, "Stop after this long; run until interrupted when zero")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if *chartPath == "" {
		*chartPath = os.Getenv("PURGATORIUM_CHART")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	noteSource, err := newNoteSource(*chartPath, rand.New(rand.NewSource(*seed+1)))
	if err != nil {
		log.Error("Failed to create note source: %v", err)
		os.Exit(1)
	}

	template := bullet.DefaultConfig()
	template.MaxBounces = *maxBounces
	template.BaseSize = *baseSize
	template.BaseSpeed = *baseSpeed
	template.DecayRate = *decayRate

	world, err := game.NewWorld(game.NewWorldOptions{
		Template:    template,
		Playfield:   bullet.Playfield{Width: *width, Height: *height},
		ColorScheme: *colorScheme,
		Rand:        rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		log.Error("Failed to create world: %v", err)
		os.Exit(1)
	}

	stateManager := state.NewInMemoryStateManager()
	spawnQueue := queue.NewInMemoryQueue[notes.Note](queue.QueueBufferSize)
	hub := network.NewHub(network.NewHubOptions{})

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		World:            world,
		NoteSource:       noteSource,
		SpawnQueue:       spawnQueue,
		StateManager:     stateManager,
		Broadcaster:      hub,
		GameLoopInterval: *tick,
	})

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         *apiPort,
		StateManager: stateManager,
		SpawnQueue:   spawnQueue,
		Stream:       hub,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Starting game manager with seed %d", *seed)
		return gameManager.Start(ctx)
	})
	g.Go(apiServer.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return apiServer.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Simulation stopped with error: %v", err)
		os.Exit(1)
	}

	stats := world.Stats()
	log.Info("Simulation finished: %d spawned, %d swept, %d player hits", stats.Spawned, stats.Swept, stats.PlayerHits)
}

// newNoteSource plays the chart at path on a loop, or generates random notes
// when path is empty.
func newNoteSource(path string, rng *rand.Rand) (notes.Source, error) {
	if path == "" {
		log.Info("No chart given, generating random notes")
		return notes.NewGenerator(notes.NewGeneratorOptions{
			Rand:     rng,
			Interval: 0.25,
			Channels: 4,
		}), nil
	}

	chart, err := notes.LoadChart(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %v", err)
	}
	log.Info("Loaded chart %s with %d notes over %.1fs", path, chart.NumEvents, chart.Duration)

	return notes.NewScheduler(notes.NewSchedulerOptions{
		Chart: chart,
		Loop:  true,
	}), nil
}
