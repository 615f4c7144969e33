package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/client/screen"
	sim "github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
// Every Update runs exactly one simulation tick.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// gameManager runs the simulation.
	gameManager *sim.GameManager
	// inputProvider samples the paddle keys.
	inputProvider sim.InputProvider
	// goalQueue receives a *types.GoalEvent for every goal.
	goalQueue queue.Queue
	// traceChan optionally receives every snapshot.
	traceChan chan<- *messages.Snapshot
	// lastSnapshot is the snapshot of the most recent tick.
	lastSnapshot *messages.Snapshot

	paddles       map[types.Side]*objects.Paddle
	ball          *objects.Ball
	score         *objects.Score
	goalOverlay   *objects.TextOverlay
	menuOverlay   *objects.TextOverlay
	pausedOverlay *objects.TextOverlay
}

type NewGameOptions struct {
	Debug         bool
	GameManager   *sim.GameManager
	Physics       sim.Physics
	InputProvider sim.InputProvider
	GoalQueue     queue.Queue
	TraceChan     chan<- *messages.Snapshot
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.GameManager == nil {
		return nil, fmt.Errorf("game manager is required")
	}
	if opts.GoalQueue == nil {
		return nil, fmt.Errorf("goal queue is required")
	}
	inputProvider := opts.InputProvider
	if inputProvider == nil {
		inputProvider = input.Keyboard{}
	}

	g := &Game{
		debug:         opts.Debug,
		gameManager:   opts.GameManager,
		inputProvider: inputProvider,
		goalQueue:     opts.GoalQueue,
		traceChan:     opts.TraceChan,
		lastSnapshot:  opts.GameManager.Snapshot(),
		paddles: map[types.Side]*objects.Paddle{
			types.Player1: objects.NewPaddle(opts.Physics.PaddleWidth, opts.Physics.PaddleHeight),
			types.Player2: objects.NewPaddle(opts.Physics.PaddleWidth, opts.Physics.PaddleHeight),
		},
		ball:          objects.NewBall(opts.Physics.BallSize),
		score:         objects.NewScore(),
		menuOverlay:   objects.NewTextOverlay("Press Space to Start", 0),
		pausedOverlay: objects.NewTextOverlay("Paused", 0),
	}
	g.applySnapshot(g.lastSnapshot)

	return g, nil
}

func (g *Game) Update() error {
	g.handleInput()

	result, err := g.gameManager.Tick(sim.TickInput{
		Window:    g.gameManager.Window(),
		Input:     g.inputProvider.Input(),
		DeltaTime: 1.0 / float64(ebiten.TPS()),
		Time:      time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to run game tick: %v", err)
	}
	if result.Transition != nil {
		log.Debug("Client saw play state change from %s to %s", result.Transition.From, result.Transition.To)
	}

	g.applySnapshot(result.Snapshot)
	g.publishSnapshot(result.Snapshot)

	if err := g.readGoals(); err != nil {
		return fmt.Errorf("failed to read goals: %v", err)
	}
	if g.goalOverlay != nil {
		if err := g.goalOverlay.Update(); err != nil {
			return fmt.Errorf("failed to update goal overlay: %v", err)
		}
	}

	return nil
}

// handleInput maps the menu keys to play state requests. The requests take
// effect at the end of the next tick.
func (g *Game) handleInput() {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	switch g.gameManager.State() {
	case types.PlayStateMenu:
		if input.IsPositiveJustPressed() {
			g.gameManager.RequestState(types.PlayStateRunning)
		}
	case types.PlayStateRunning:
		if input.IsNegativeJustPressed() {
			g.gameManager.RequestState(types.PlayStateMenu)
		} else if input.IsPauseJustPressed() {
			g.gameManager.RequestState(types.PlayStatePaused)
		}
	case types.PlayStatePaused:
		if input.IsNegativeJustPressed() {
			g.gameManager.RequestState(types.PlayStateMenu)
		} else if input.IsPauseJustPressed() || input.IsPositiveJustPressed() {
			g.gameManager.RequestState(types.PlayStateRunning)
		}
	case types.PlayStateScored:
		if input.IsNegativeJustPressed() {
			g.gameManager.RequestState(types.PlayStateMenu)
		}
	}
}

func (g *Game) applySnapshot(snapshot *messages.Snapshot) {
	g.lastSnapshot = snapshot
	for side, paddle := range g.paddles {
		if state, ok := snapshot.Paddle(uint8(side)); ok {
			paddle.SetState(state)
		}
	}
	g.ball.SetState(snapshot.Ball)
	g.score.SetScore(sim.ScoreFromSnapshot(snapshot))
}

func (g *Game) publishSnapshot(snapshot *messages.Snapshot) {
	if g.traceChan == nil {
		return
	}
	select {
	case g.traceChan <- snapshot:
	default:
		log.Warn("Trace channel full, dropping snapshot for tick %d", snapshot.Tick)
	}
}

// readGoals shows an overlay for the latest goal in the queue.
func (g *Game) readGoals() error {
	items, err := g.goalQueue.ReadAllMessages()
	if err != nil {
		return err
	}
	for _, item := range items {
		event, ok := item.(*types.GoalEvent)
		if !ok {
			log.Error("Failed to cast goal queue item to *types.GoalEvent")
			continue
		}
		log.Debug("Showing goal by %s at tick %d", event.Scorer, event.Tick)
		g.goalOverlay = objects.NewTextOverlay(fmt.Sprintf("Player %d Scored", event.Scorer.Number()), ebiten.TPS())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.score.Draw(screen)
	for _, paddle := range g.paddles {
		paddle.Draw(screen)
	}
	g.ball.Draw(screen)

	switch g.gameManager.State() {
	case types.PlayStateMenu:
		g.menuOverlay.Draw(screen)
	case types.PlayStatePaused:
		g.pausedOverlay.Draw(screen)
	default:
		if g.goalOverlay != nil && g.goalOverlay.Visible() {
			g.goalOverlay.Draw(screen)
		}
	}

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Tick: %d", g.lastSnapshot.Tick))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   State: %s", g.gameManager.State()))
	if ball := g.lastSnapshot.Ball; ball != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Ball: %d speed %0.1f", ball.Generation, ball.Speed))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return screen.Size(g.gameManager.Window())
}
