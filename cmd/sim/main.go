package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/cbodonnell/pong/pkg/workers"
)

// randomInput holds each paddle key for a random number of ticks.
type randomInput struct {
	rng     *rand.Rand
	current types.Input
	hold    int
}

func (r *randomInput) Input() types.Input {
	if r.hold <= 0 {
		r.current = types.Input{
			Paddle1: types.PaddleInput{Up: r.rng.Intn(3) == 0, Down: r.rng.Intn(3) == 0},
			Paddle2: types.PaddleInput{Up: r.rng.Intn(3) == 0, Down: r.rng.Intn(3) == 0},
		}
		r.hold = 5 + r.rng.Intn(30)
	}
	r.hold--
	return r.current
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	logEncoding := flag.String("log-encoding", "", "Log encoding (console or json), overrides the config file")
	seed := flag.Int64("seed", 0, "Serve and input seed, overrides the config file")
	ticks := flag.Int("ticks", 3600, "Number of ticks to simulate")
	realtime := flag.Bool("realtime", false, "Run ticks on the configured interval instead of as fast as possible")
	tracePath := flag.String("trace", "", "Write a snapshot trace to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logEncoding != "" {
		cfg.Logging.Encoding = *logEncoding
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	logger, err := cfg.Logger(os.Stdout)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", logger.Level())
	log.Info("Simulating %d ticks with seed %d", *ticks, cfg.Game.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snapshotChan := make(chan *messages.Snapshot, 256)
	var traceWorker *workers.TraceWorker
	traceDone := make(chan struct{})
	traceCtx, cancelTrace := context.WithCancel(context.Background())
	defer cancelTrace()
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create trace file: %v", err))
		}
		defer f.Close()

		traceWorker = workers.NewTraceWorker(workers.NewTraceWorkerOptions{
			SnapshotChan: snapshotChan,
			Writer:       f,
		})
		go func() {
			traceWorker.Start(traceCtx)
			close(traceDone)
		}()
	} else {
		close(traceDone)
	}

	opts := cfg.GameManagerOptions()
	if traceWorker != nil {
		opts.SnapshotChan = snapshotChan
	}
	gameManager, err := game.NewGameManager(opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game manager: %v", err))
	}

	inputProvider := &randomInput{rng: rand.New(rand.NewSource(cfg.Game.Seed))}

	if *realtime {
		runCtx, cancel := context.WithTimeout(ctx, time.Duration(*ticks)*cfg.Game.TickInterval)
		defer cancel()
		log.Info("Starting game manager")
		if err := gameManager.Start(runCtx, inputProvider); err != nil {
			panic(fmt.Sprintf("Failed to run game manager: %v", err))
		}
	} else {
		if err := runTicks(ctx, gameManager, inputProvider, *ticks, cfg.Game.TickInterval, snapshotChan, traceWorker != nil); err != nil && !errors.Is(err, context.Canceled) {
			panic(fmt.Sprintf("Failed to run simulation: %v", err))
		}
	}

	cancelTrace()
	<-traceDone
	if traceWorker != nil {
		log.Info("Wrote %d trace frames to %s", traceWorker.Frames(), *tracePath)
	}

	score := gameManager.Scores()
	log.Info("Finished at tick %d, final score %d - %d", gameManager.Snapshot().Tick, score.Player1, score.Player2)
}

// runTicks advances the simulation with a fixed time step as fast as possible.
func runTicks(ctx context.Context, gameManager *game.GameManager, inputProvider game.InputProvider, ticks int, interval time.Duration, snapshotChan chan<- *messages.Snapshot, trace bool) error {
	now := time.Now()
	for i := 0; i < ticks; i++ {
		now = now.Add(interval)
		result, err := gameManager.Tick(game.TickInput{
			Window:    gameManager.Window(),
			Input:     inputProvider.Input(),
			DeltaTime: interval.Seconds(),
			Time:      now,
		})
		if err != nil {
			return fmt.Errorf("failed to run tick %d: %w", i, err)
		}
		if !trace {
			continue
		}
		select {
		case snapshotChan <- result.Snapshot:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
