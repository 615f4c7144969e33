package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/pong/pkg/collisions"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/cbodonnell/pong/pkg/queue"
)

// InputProvider supplies the key state sampled for each tick of the game loop.
type InputProvider interface {
	Input() types.Input
}

// TickInput is everything the simulation reads from the outside world in one tick.
type TickInput struct {
	Window types.Window
	Input  types.Input
	// DeltaTime is the elapsed time since the previous tick in seconds
	DeltaTime float64
	// Time is the wall clock time of the tick. The zero value leaves the timestamp unchanged.
	Time time.Time
}

// TickResult is everything the simulation produces in one tick.
type TickResult struct {
	Snapshot *messages.Snapshot
	// Goal is set when a goal was scored during the tick
	Goal *types.GoalEvent
	// Transition is set when the play state changed at the end of the tick
	Transition *types.Transition
}

// GameManager owns the game state and runs the simulation one tick at a time.
type GameManager struct {
	gameState    *types.GameState
	stateMachine *types.StateMachine
	physics      Physics
	rng          *rand.Rand
	goalQueue    queue.Queue
	snapshotChan chan<- *messages.Snapshot
	tickInterval time.Duration
	// countdown accumulates elapsed time while in the Scored state
	countdown float64
	// generation is the generation of the most recently spawned ball
	generation uint32
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Window  types.Window
	Physics Physics
	// Seed seeds the random source used to serve the ball
	Seed int64
	// GoalQueue optionally receives a *types.GoalEvent for every goal
	GoalQueue queue.Queue
	// SnapshotChan optionally receives a snapshot after every tick run by Start
	SnapshotChan chan<- *messages.Snapshot
	TickInterval time.Duration
}

// NewGameManager creates the paddles and serves the first ball, entering the
// initial Running state.
func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	if err := opts.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate physics: %w", err)
	}
	if err := opts.Physics.ValidateWindow(opts.Window); err != nil {
		return nil, fmt.Errorf("failed to validate window: %w", err)
	}
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second / 60
	}

	gm := &GameManager{
		gameState:    types.NewGameState(opts.Window, collisions.NewCollisionSpace(opts.Window)),
		stateMachine: types.NewStateMachine(types.PlayStateRunning),
		physics:      opts.Physics,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		goalQueue:    opts.GoalQueue,
		snapshotChan: opts.SnapshotChan,
		tickInterval: tickInterval,
	}
	gm.initializeGameState()

	return gm, nil
}

func (gm *GameManager) initializeGameState() {
	window := gm.gameState.Window
	_, centerY := window.Center()
	gm.gameState.SetPaddle(types.NewPaddleState(types.Player1, window.Width/constants.Paddle1XDivisor, centerY, gm.physics.PaddleWidth, gm.physics.PaddleHeight))
	gm.gameState.SetPaddle(types.NewPaddleState(types.Player2, window.Width/constants.Paddle2XDivisor, centerY, gm.physics.PaddleWidth, gm.physics.PaddleHeight))
	gm.spawnBall()
}

// Start runs the game loop until the context is done or a tick fails.
func (gm *GameManager) Start(ctx context.Context, inputProvider InputProvider) error {
	ticker := time.NewTicker(gm.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			result, err := gm.Tick(TickInput{
				Window:    gm.gameState.Window,
				Input:     inputProvider.Input(),
				DeltaTime: t.Sub(last).Seconds(),
				Time:      t,
			})
			if err != nil {
				return fmt.Errorf("failed to run game tick: %w", err)
			}
			last = t
			gm.publishSnapshot(result.Snapshot)
		}
	}
}

// Tick runs one iteration of the simulation: motion, collisions, scoring,
// the pending state transition and finally ball cleanup and spawning.
// A missing paddle or an unusable window aborts the tick with an error.
func (gm *GameManager) Tick(in TickInput) (*TickResult, error) {
	if err := gm.physics.ValidateWindow(in.Window); err != nil {
		return nil, fmt.Errorf("failed to validate window: %w", err)
	}
	paddles, err := gm.gameState.Paddles()
	if err != nil {
		return nil, fmt.Errorf("failed to get paddles: %w", err)
	}

	deltaTime := in.DeltaTime
	if deltaTime < 0 {
		deltaTime = 0
	}

	gm.gameState.Tick++
	if in.Window != gm.gameState.Window {
		log.Debug("Window resized from %vx%v to %vx%v", gm.gameState.Window.Width, gm.gameState.Window.Height, in.Window.Width, in.Window.Height)
		gm.gameState.SetCollisionSpace(collisions.NewCollisionSpace(in.Window))
	}
	gm.gameState.Window = in.Window
	if !in.Time.IsZero() {
		gm.gameState.Timestamp = in.Time.UnixMilli()
	}

	result := &TickResult{}
	if gm.stateMachine.Current().Simulating() {
		gm.updateMotion(paddles, in.Input, deltaTime)
		gm.resolveCollisions(paddles)
		result.Goal = gm.checkGoal()
	}

	if transition, ok := gm.updateStateMachine(deltaTime); ok {
		result.Transition = &transition
		gm.updateBallLifecycle(&transition)
	} else {
		gm.updateBallLifecycle(nil)
	}

	result.Snapshot = SnapshotFromState(gm.gameState, gm.stateMachine.Current())
	log.Trace("Tick %d: state %s, ball present %t", gm.gameState.Tick, gm.stateMachine.Current(), gm.gameState.HasBall())

	return result, nil
}

// updateStateMachine advances the goal countdown and applies the pending play state.
func (gm *GameManager) updateStateMachine(deltaTime float64) (types.Transition, bool) {
	if gm.stateMachine.Current() == types.PlayStateScored {
		gm.countdown += deltaTime
		if gm.countdown >= gm.physics.CountdownDuration {
			gm.stateMachine.Request(types.PlayStateRunning)
		}
	}

	transition, ok := gm.stateMachine.Apply()
	if !ok {
		return transition, false
	}
	if transition.To == types.PlayStateScored {
		gm.countdown = 0
	}
	log.Debug("Play state changed from %s to %s", transition.From, transition.To)

	return transition, true
}

// RequestState asks for a play state change at the end of the next tick.
// Nothing in the simulation requests Paused or Menu on its own.
func (gm *GameManager) RequestState(state types.PlayState) {
	gm.stateMachine.Request(state)
}

// State returns the current play state.
func (gm *GameManager) State() types.PlayState {
	return gm.stateMachine.Current()
}

// Scores returns both players' points.
func (gm *GameManager) Scores() types.Score {
	return gm.gameState.Score
}

// Window returns the window size used by the most recent tick.
func (gm *GameManager) Window() types.Window {
	return gm.gameState.Window
}

// Snapshot returns the current positions, score and play state.
func (gm *GameManager) Snapshot() *messages.Snapshot {
	return SnapshotFromState(gm.gameState, gm.stateMachine.Current())
}

// publishSnapshot sends the snapshot to the snapshot channel without blocking the loop.
func (gm *GameManager) publishSnapshot(snapshot *messages.Snapshot) {
	if gm.snapshotChan == nil {
		return
	}
	select {
	case gm.snapshotChan <- snapshot:
	default:
		log.Trace("Snapshot channel full, dropping snapshot for tick %d", snapshot.Tick)
	}
}
