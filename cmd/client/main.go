package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/screen"
	"github.com/cbodonnell/pong/pkg/config"
	sim "github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	logEncoding := flag.String("log-encoding", "", "Log encoding (console or json), overrides the config file")
	seed := flag.Int64("seed", 0, "Serve seed, overrides the config file")
	tracePath := flag.String("trace", "", "Write a snapshot trace to this file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
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

	logger, err := cfg.Logger(os.Stdout)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	log.SetDefaultLogger(logger)
	defer log.Sync()
	log.Info("Log level set to %s", logger.Level())

	goalQueue := queue.NewInMemoryQueue(16)
	opts := cfg.GameManagerOptions()
	opts.GoalQueue = goalQueue
	gameManager, err := sim.NewGameManager(opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create game manager: %v", err))
	}

	var traceChan chan *messages.Snapshot
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create trace file: %v", err))
		}
		defer f.Close()

		traceChan = make(chan *messages.Snapshot, 256)
		traceWorker := workers.NewTraceWorker(workers.NewTraceWorkerOptions{
			SnapshotChan: traceChan,
			Writer:       f,
		})
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			traceWorker.Start(ctx)
			close(done)
		}()
		defer func() {
			cancel()
			<-done
			log.Info("Wrote %d trace frames to %s", traceWorker.Frames(), *tracePath)
		}()
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:         *debug,
		GameManager:   gameManager,
		Physics:       cfg.Physics(),
		InputProvider: input.Keyboard{},
		GoalQueue:     goalQueue,
		TraceChan:     traceChan,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	width, height := screen.Size(cfg.Window)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(max(1, int(time.Second/cfg.Game.TickInterval)))
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
	}
}
