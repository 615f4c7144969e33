package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	mocks "github.com/cbodonnell/pong/mocks/github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWindow = types.Window{Width: 800, Height: 600}

func newTestGameManager(t *testing.T, opts NewGameManagerOptions) *GameManager {
	t.Helper()
	if opts.Window == (types.Window{}) {
		opts.Window = testWindow
	}
	if opts.Physics == (Physics{}) {
		opts.Physics = DefaultPhysics()
	}
	gm, err := NewGameManager(opts)
	require.NoError(t, err)
	return gm
}

// replaceBall swaps the served ball for one with a known position and direction.
func replaceBall(gm *GameManager, position kinematic.Vector, direction kinematic.Vector) *types.BallState {
	gm.gameState.RemoveBall()
	ball := types.NewBallState(gm.generation, position, direction, gm.physics.BallBaseSpeed, gm.physics.BallSize)
	gm.gameState.AddBall(ball)
	return ball
}

func tick(t *testing.T, gm *GameManager, deltaTime float64, input types.Input) *TickResult {
	t.Helper()
	result, err := gm.Tick(TickInput{Window: testWindow, Input: input, DeltaTime: deltaTime})
	require.NoError(t, err)
	return result
}

func TestNewGameManager(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})

	assert.Equal(t, types.PlayStateRunning, gm.State())
	assert.Equal(t, types.Score{}, gm.Scores())
	assert.Equal(t, types.Player1, gm.gameState.LastScored)

	require.NotNil(t, gm.gameState.Paddle1)
	require.NotNil(t, gm.gameState.Paddle2)
	assert.Equal(t, kinematic.Vector{X: 40, Y: 300}, gm.gameState.Paddle1.Position)
	assert.InDelta(t, 800/1.05, gm.gameState.Paddle2.Position.X, 1e-9)
	assert.Equal(t, 300.0, gm.gameState.Paddle2.Position.Y)

	ball := gm.gameState.Ball
	require.NotNil(t, ball)
	assert.Equal(t, uint32(1), ball.Generation)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 300}, ball.Position)
	assert.Equal(t, 200.0, ball.Speed)
	assert.InDelta(t, 1, ball.Direction.Length(), 1e-9)
	assert.GreaterOrEqual(t, ball.Direction.X, 0.0, "the first serve goes right")
}

func TestNewGameManager_invalid(t *testing.T) {
	tests := []struct {
		name string
		opts NewGameManagerOptions
	}{
		{
			name: "zero window",
			opts: NewGameManagerOptions{Window: types.Window{Width: 0, Height: 600}, Physics: DefaultPhysics()},
		},
		{
			name: "window shorter than a paddle",
			opts: NewGameManagerOptions{Window: types.Window{Width: 800, Height: 100}, Physics: DefaultPhysics()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameManager(tt.opts)
			assert.ErrorIs(t, err, types.ErrInvalidWindow)
		})
	}

	physics := DefaultPhysics()
	physics.BallSpeedIncreaseFactor = 0.5
	_, err := NewGameManager(NewGameManagerOptions{Window: testWindow, Physics: physics})
	assert.Error(t, err)
}

func TestGameManager_Tick_preconditions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(gm *GameManager)
		window  types.Window
		wantErr error
	}{
		{
			name:    "zero width window",
			window:  types.Window{Width: 0, Height: 600},
			wantErr: types.ErrInvalidWindow,
		},
		{
			name:    "negative height window",
			window:  types.Window{Width: 800, Height: -600},
			wantErr: types.ErrInvalidWindow,
		},
		{
			name:    "window shorter than a paddle",
			window:  types.Window{Width: 800, Height: 179},
			wantErr: types.ErrInvalidWindow,
		},
		{
			name:    "missing paddle",
			setup:   func(gm *GameManager) { gm.gameState.Paddle2 = nil },
			window:  testWindow,
			wantErr: types.ErrPaddleNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
			if tt.setup != nil {
				tt.setup(gm)
			}

			_, err := gm.Tick(TickInput{Window: tt.window, DeltaTime: 1.0 / 60})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, uint64(0), gm.gameState.Tick, "a failed tick must not advance the game")
		})
	}
}

func TestGameManager_Tick_paddleMotion(t *testing.T) {
	tests := []struct {
		name      string
		input     types.Input
		deltaTime float64
		want1     float64
		want2     float64
	}{
		{
			name:      "no input",
			deltaTime: 0.1,
			want1:     300,
			want2:     300,
		},
		{
			name:      "paddle 1 up, paddle 2 down",
			input:     types.Input{Paddle1: types.PaddleInput{Up: true}, Paddle2: types.PaddleInput{Down: true}},
			deltaTime: 0.1,
			want1:     340,
			want2:     260,
		},
		{
			name:      "both keys cancel out",
			input:     types.Input{Paddle1: types.PaddleInput{Up: true, Down: true}},
			deltaTime: 0.1,
			want1:     300,
			want2:     300,
		},
		{
			name:      "clamped to the window",
			input:     types.Input{Paddle1: types.PaddleInput{Up: true}, Paddle2: types.PaddleInput{Down: true}},
			deltaTime: 10,
			want1:     510,
			want2:     90,
		},
		{
			name:      "negative delta time is ignored",
			input:     types.Input{Paddle1: types.PaddleInput{Up: true}},
			deltaTime: -1,
			want1:     300,
			want2:     300,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
			tick(t, gm, tt.deltaTime, tt.input)

			assert.InDelta(t, tt.want1, gm.gameState.Paddle1.Position.Y, 1e-9)
			assert.InDelta(t, tt.want2, gm.gameState.Paddle2.Position.Y, 1e-9)
			assert.Equal(t, 40.0, gm.gameState.Paddle1.Position.X, "paddles never move horizontally")
		})
	}
}

func TestGameManager_Tick_ballMotion(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	replaceBall(gm, kinematic.Vector{X: 400, Y: 300}, kinematic.Vector{X: 0.6, Y: 0.8})

	tick(t, gm, 0.5, types.Input{})

	assert.InDelta(t, 460, gm.gameState.Ball.Position.X, 1e-9)
	assert.InDelta(t, 380, gm.gameState.Ball.Position.Y, 1e-9)
	assert.InDelta(t, 455, gm.gameState.Ball.Object.Position.X, 1e-9)
}

func TestGameManager_Tick_collisions(t *testing.T) {
	tests := []struct {
		name          string
		position      kinematic.Vector
		direction     kinematic.Vector
		wantDirection kinematic.Vector
		wantSpeed     float64
	}{
		{
			name:          "left paddle",
			position:      kinematic.Vector{X: 50, Y: 300},
			direction:     kinematic.Vector{X: -0.6, Y: 0.2},
			wantDirection: kinematic.Vector{X: 0.6, Y: 0.2},
			wantSpeed:     250,
		},
		{
			name:          "left paddle top edge",
			position:      kinematic.Vector{X: 50, Y: 395},
			direction:     kinematic.Vector{X: -0.6, Y: -0.8},
			wantDirection: kinematic.Vector{X: 0.6, Y: -0.8},
			wantSpeed:     250,
		},
		{
			name:          "right paddle",
			position:      kinematic.Vector{X: 750, Y: 300},
			direction:     kinematic.Vector{X: 0.6, Y: 0.8},
			wantDirection: kinematic.Vector{X: -0.6, Y: 0.8},
			wantSpeed:     250,
		},
		{
			name:          "above the left paddle",
			position:      kinematic.Vector{X: 50, Y: 396},
			direction:     kinematic.Vector{X: -0.6, Y: 0.8},
			wantDirection: kinematic.Vector{X: -0.6, Y: 0.8},
			wantSpeed:     200,
		},
		{
			name:          "top wall",
			position:      kinematic.Vector{X: 400, Y: 596},
			direction:     kinematic.Vector{X: 0.4, Y: 0.9},
			wantDirection: kinematic.Vector{X: 0.4, Y: -0.9},
			wantSpeed:     200,
		},
		{
			name:          "bottom wall",
			position:      kinematic.Vector{X: 400, Y: 4},
			direction:     kinematic.Vector{X: -0.4, Y: -0.9},
			wantDirection: kinematic.Vector{X: -0.4, Y: 0.9},
			wantSpeed:     200,
		},
		{
			name:          "exactly at the wall limit",
			position:      kinematic.Vector{X: 400, Y: 595},
			direction:     kinematic.Vector{X: 0.4, Y: 0.9},
			wantDirection: kinematic.Vector{X: 0.4, Y: 0.9},
			wantSpeed:     200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
			ball := replaceBall(gm, tt.position, tt.direction)

			result := tick(t, gm, 0, types.Input{})

			assert.Nil(t, result.Goal)
			assert.Equal(t, tt.wantDirection, ball.Direction)
			assert.InDelta(t, tt.wantSpeed, ball.Speed, 1e-9)
			assert.Equal(t, types.PlayStateRunning, gm.State())
		})
	}
}

func TestGameManager_Tick_paddleEdgeOnCellBoundary(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	paddle := gm.gameState.Paddle1
	// Top edge at y=384, a multiple of the collision cell size.
	paddle.Position.Y = 294
	paddle.Confine(testWindow.Height)
	ball := replaceBall(gm, kinematic.Vector{X: 50, Y: 389}, kinematic.Vector{X: -0.6, Y: -0.8})

	tick(t, gm, 0, types.Input{})

	assert.Equal(t, kinematic.Vector{X: 0.6, Y: -0.8}, ball.Direction)
	assert.InDelta(t, 250, ball.Speed, 1e-9)
}

func TestGameManager_Tick_windowResize(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	resized := types.Window{Width: 1000, Height: 700}

	_, err := gm.Tick(TickInput{Window: resized})
	require.NoError(t, err)

	space := gm.gameState.CollisionSpace
	assert.Equal(t, 63, space.Width())
	assert.Equal(t, 44, space.Height())
	assert.Same(t, space, gm.gameState.Paddle1.Object.Space)
	assert.Same(t, space, gm.gameState.Paddle2.Object.Space)
	assert.Same(t, space, gm.gameState.Ball.Object.Space)
	assert.Equal(t, resized, gm.Window())

	ball := replaceBall(gm, kinematic.Vector{X: 50, Y: 300}, kinematic.Vector{X: -0.6, Y: 0.2})
	_, err = gm.Tick(TickInput{Window: resized})
	require.NoError(t, err)
	assert.Equal(t, kinematic.Vector{X: 0.6, Y: 0.2}, ball.Direction, "paddles still collide after the resize")
	assert.Same(t, space, gm.gameState.CollisionSpace, "an unchanged window keeps the space")
}

func TestGameManager_Tick_goalLifecycle(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	ball := replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

	// The goal flags the ball and enters Scored at the end of the same tick.
	result := tick(t, gm, 0, types.Input{})
	require.NotNil(t, result.Goal)
	assert.Equal(t, types.Player2, result.Goal.Scorer)
	assert.Equal(t, types.Player1, result.Goal.Conceded)
	assert.Equal(t, ball.RallyID, result.Goal.RallyID)
	assert.Equal(t, types.Score{Player1: 0, Player2: 1}, gm.Scores())
	assert.Equal(t, types.Player1, gm.gameState.LastScored)
	require.NotNil(t, result.Transition)
	assert.Equal(t, types.Transition{From: types.PlayStateRunning, To: types.PlayStateScored}, *result.Transition)
	assert.True(t, gm.gameState.HasBall(), "the ball survives the tick it was flagged in")
	assert.True(t, ball.PendingRemoval())
	require.NotNil(t, result.Snapshot.Ball)
	assert.True(t, result.Snapshot.Ball.PendingRemoval)

	// The next tick removes it, and nothing moves while Scored.
	paddleY := gm.gameState.Paddle1.Position.Y
	result = tick(t, gm, 0.5, types.Input{Paddle1: types.PaddleInput{Up: true}})
	assert.Nil(t, result.Transition)
	assert.Nil(t, result.Goal)
	assert.False(t, gm.gameState.HasBall())
	assert.Nil(t, result.Snapshot.Ball)
	assert.Nil(t, ball.Object.Space)
	assert.Equal(t, paddleY, gm.gameState.Paddle1.Position.Y)
	assert.Equal(t, types.PlayStateScored, gm.State())

	// Once the countdown elapses play resumes with a fresh ball.
	result = tick(t, gm, 0.6, types.Input{})
	require.NotNil(t, result.Transition)
	assert.Equal(t, types.Transition{From: types.PlayStateScored, To: types.PlayStateRunning}, *result.Transition)
	assert.Equal(t, types.PlayStateRunning, gm.State())

	served := gm.gameState.Ball
	require.NotNil(t, served)
	assert.Equal(t, uint32(2), served.Generation)
	assert.NotEqual(t, ball.RallyID, served.RallyID)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 300}, served.Position)
	assert.Equal(t, 200.0, served.Speed)
	assert.False(t, served.PendingRemoval())
	assert.InDelta(t, 1, served.Direction.Length(), 1e-9)
	assert.GreaterOrEqual(t, served.Direction.X, 0.0, "serve goes away from the side that conceded")
	assert.Equal(t, types.Score{Player1: 0, Player2: 1}, gm.Scores(), "the score is not reset")
}

func TestGameManager_Tick_rightGoal(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	replaceBall(gm, kinematic.Vector{X: 796, Y: 300}, kinematic.Vector{X: 1, Y: 0})

	result := tick(t, gm, 0, types.Input{})
	require.NotNil(t, result.Goal)
	assert.Equal(t, types.Player1, result.Goal.Scorer)
	assert.Equal(t, types.Score{Player1: 1, Player2: 0}, gm.Scores())
	assert.Equal(t, types.Player2, gm.gameState.LastScored)

	tick(t, gm, 0, types.Input{})
	tick(t, gm, 1, types.Input{})
	require.NotNil(t, gm.gameState.Ball)
	assert.LessOrEqual(t, gm.gameState.Ball.Direction.X, 0.0, "serve goes left after player 2 concedes")
}

func TestGameManager_Tick_countdown(t *testing.T) {
	physics := DefaultPhysics()
	physics.CountdownDuration = 0
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1, Physics: physics})
	replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

	tick(t, gm, 1.0/60, types.Input{})
	assert.Equal(t, types.PlayStateScored, gm.State())

	// Removal and serving happen in the same tick with a zero countdown.
	result := tick(t, gm, 1.0/60, types.Input{})
	require.NotNil(t, result.Transition)
	assert.Equal(t, types.PlayStateRunning, gm.State())
	require.NotNil(t, gm.gameState.Ball)
	assert.Equal(t, uint32(2), gm.gameState.Ball.Generation)
}

func TestGameManager_RequestState(t *testing.T) {
	t.Run("paused freezes the game and resumes the same ball", func(t *testing.T) {
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
		ball := gm.gameState.Ball

		gm.RequestState(types.PlayStatePaused)
		result := tick(t, gm, 0, types.Input{})
		require.NotNil(t, result.Transition)
		assert.Equal(t, types.PlayStatePaused, gm.State())

		position := ball.Position
		result = tick(t, gm, 1, types.Input{Paddle1: types.PaddleInput{Up: true}})
		assert.Nil(t, result.Transition)
		assert.Equal(t, position, ball.Position)
		assert.Equal(t, 300.0, gm.gameState.Paddle1.Position.Y)

		gm.RequestState(types.PlayStateRunning)
		result = tick(t, gm, 0, types.Input{})
		require.NotNil(t, result.Transition)
		assert.Equal(t, types.Transition{From: types.PlayStatePaused, To: types.PlayStateRunning}, *result.Transition)
		assert.Same(t, ball, gm.gameState.Ball)
	})

	t.Run("paused during the goal gap serves on resume", func(t *testing.T) {
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
		replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

		tick(t, gm, 0, types.Input{})
		assert.Equal(t, types.PlayStateScored, gm.State())

		gm.RequestState(types.PlayStatePaused)
		result := tick(t, gm, 0, types.Input{})
		require.NotNil(t, result.Transition)
		assert.Equal(t, types.Transition{From: types.PlayStateScored, To: types.PlayStatePaused}, *result.Transition)
		assert.False(t, gm.gameState.HasBall())

		gm.RequestState(types.PlayStateRunning)
		result = tick(t, gm, 0, types.Input{})
		require.NotNil(t, result.Transition)
		assert.Equal(t, types.Transition{From: types.PlayStatePaused, To: types.PlayStateRunning}, *result.Transition)
		require.NotNil(t, gm.gameState.Ball)
		assert.Equal(t, uint32(2), gm.gameState.Ball.Generation)

		for i := 0; i < 600; i++ {
			tick(t, gm, 1.0/60, types.Input{})
			if gm.State() == types.PlayStateRunning {
				require.True(t, gm.gameState.HasBall(), "running without a ball at tick %d", gm.gameState.Tick)
			}
		}
	})

	t.Run("menu keeps at most one ball", func(t *testing.T) {
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
		ball := gm.gameState.Ball

		gm.RequestState(types.PlayStateMenu)
		tick(t, gm, 0, types.Input{})
		assert.Equal(t, types.PlayStateMenu, gm.State())

		gm.RequestState(types.PlayStateRunning)
		tick(t, gm, 0, types.Input{})
		assert.Equal(t, types.PlayStateRunning, gm.State())
		assert.Same(t, ball, gm.gameState.Ball)
	})

	t.Run("menu after a goal serves a new ball", func(t *testing.T) {
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
		replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

		tick(t, gm, 0, types.Input{})
		assert.Equal(t, types.PlayStateScored, gm.State())

		gm.RequestState(types.PlayStateMenu)
		result := tick(t, gm, 0, types.Input{})
		require.NotNil(t, result.Transition)
		assert.Equal(t, types.Transition{From: types.PlayStateScored, To: types.PlayStateMenu}, *result.Transition)
		assert.False(t, gm.gameState.HasBall())

		// The countdown only runs while Scored.
		tick(t, gm, 5, types.Input{})
		assert.Equal(t, types.PlayStateMenu, gm.State())
		assert.False(t, gm.gameState.HasBall())

		gm.RequestState(types.PlayStateRunning)
		tick(t, gm, 0, types.Input{})
		require.NotNil(t, gm.gameState.Ball)
		assert.Equal(t, uint32(2), gm.gameState.Ball.Generation)
	})
}

func TestGameManager_goalQueue(t *testing.T) {
	t.Run("goal events are enqueued", func(t *testing.T) {
		mockQueue := mocks.NewQueue(t)
		mockQueue.EXPECT().Enqueue(mock.AnythingOfType("*types.GoalEvent")).Return(nil).Once()

		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1, GoalQueue: mockQueue})
		replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

		tick(t, gm, 0, types.Input{})
		tick(t, gm, 0, types.Input{})
	})

	t.Run("a full queue does not fail the tick", func(t *testing.T) {
		mockQueue := mocks.NewQueue(t)
		mockQueue.EXPECT().Enqueue(mock.Anything).Return(queue.ErrQueueFull).Once()

		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1, GoalQueue: mockQueue})
		replaceBall(gm, kinematic.Vector{X: 3, Y: 300}, kinematic.Vector{X: -1, Y: 0})

		result := tick(t, gm, 0, types.Input{})
		assert.NotNil(t, result.Goal)
		assert.Equal(t, types.Score{Player2: 1}, gm.Scores())
	})

	t.Run("in memory queue", func(t *testing.T) {
		goalQueue := queue.NewInMemoryQueue(4)
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1, GoalQueue: goalQueue})
		replaceBall(gm, kinematic.Vector{X: 796, Y: 300}, kinematic.Vector{X: 1, Y: 0})

		tick(t, gm, 0, types.Input{})

		items, err := goalQueue.ReadAllMessages()
		require.NoError(t, err)
		require.Len(t, items, 1)
		event, ok := items[0].(*types.GoalEvent)
		require.True(t, ok)
		assert.Equal(t, types.Player1, event.Scorer)
		assert.Equal(t, uint64(1), event.Tick)
	})
}

func TestGameManager_Tick_invariants(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 42})
	inputs := rand.New(rand.NewSource(7))

	speeds := map[uint32]float64{}
	goals := uint32(0)
	for i := 0; i < 20000; i++ {
		input := types.Input{
			Paddle1: types.PaddleInput{Up: inputs.Intn(2) == 0, Down: inputs.Intn(3) == 0},
			Paddle2: types.PaddleInput{Up: inputs.Intn(3) == 0, Down: inputs.Intn(2) == 0},
		}
		before := gm.Scores()
		result := tick(t, gm, 1.0/60, input)
		after := gm.Scores()

		for _, paddle := range []*types.PaddleState{gm.gameState.Paddle1, gm.gameState.Paddle2} {
			require.GreaterOrEqual(t, paddle.Position.Y, 90.0)
			require.LessOrEqual(t, paddle.Position.Y, 510.0)
		}

		require.GreaterOrEqual(t, after.Player1, before.Player1)
		require.GreaterOrEqual(t, after.Player2, before.Player2)
		gained := (after.Player1 - before.Player1) + (after.Player2 - before.Player2)
		if result.Goal != nil {
			goals++
			require.Equal(t, uint32(1), gained, "exactly one point per goal")
		} else {
			require.Equal(t, uint32(0), gained)
		}

		if ball := gm.gameState.Ball; ball != nil {
			require.InDelta(t, 1, ball.Direction.Length(), 1e-6)
			require.GreaterOrEqual(t, ball.Speed, speeds[ball.Generation], "speed never decreases within a rally")
			speeds[ball.Generation] = ball.Speed
		}
	}

	score := gm.Scores()
	assert.Equal(t, goals, score.Player1+score.Player2)
	assert.Greater(t, goals, uint32(0))
}

func TestGameManager_deterministic(t *testing.T) {
	run := func() []kinematic.Vector {
		gm := newTestGameManager(t, NewGameManagerOptions{Seed: 99})
		var positions []kinematic.Vector
		for i := 0; i < 3000; i++ {
			tick(t, gm, 1.0/60, types.Input{Paddle1: types.PaddleInput{Up: i%120 < 60}})
			if gm.gameState.Ball != nil {
				positions = append(positions, gm.gameState.Ball.Position)
			}
		}
		return positions
	}

	assert.Equal(t, run(), run())
}

func TestGameManager_Snapshot(t *testing.T) {
	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 1})
	now := time.UnixMilli(1718000000000)

	result, err := gm.Tick(TickInput{Window: testWindow, DeltaTime: 0, Time: now})
	require.NoError(t, err)

	snapshot := result.Snapshot
	assert.Equal(t, uint64(1), snapshot.Tick)
	assert.Equal(t, int64(1718000000000), snapshot.Timestamp)
	assert.Equal(t, uint8(types.PlayStateRunning), snapshot.PlayState)
	assert.Equal(t, uint8(types.Player1), snapshot.LastScored)
	require.Len(t, snapshot.Paddles, 2)
	p2, ok := snapshot.Paddle(uint8(types.Player2))
	require.True(t, ok)
	assert.Equal(t, gm.gameState.Paddle2.Position, p2.Position)
	require.NotNil(t, snapshot.Ball)
	assert.Equal(t, gm.gameState.Ball.RallyID, snapshot.Ball.RallyID)
	assert.Equal(t, gm.Scores(), ScoreFromSnapshot(snapshot))
	assert.Equal(t, snapshot, gm.Snapshot())
}

func TestServeBias(t *testing.T) {
	assert.Equal(t, 1.0, serveBias(types.Player1))
	assert.Equal(t, -1.0, serveBias(types.Player2))

	gm := newTestGameManager(t, NewGameManagerOptions{Seed: 3})
	for _, conceded := range []types.Side{types.Player1, types.Player2} {
		gm.gameState.LastScored = conceded
		for i := 0; i < 500; i++ {
			direction := gm.serveDirection()
			require.InDelta(t, 1, direction.Length(), 1e-9)
			require.GreaterOrEqual(t, direction.X*serveBias(conceded), 0.0)
		}
	}
}

type staticInput types.Input

func (s staticInput) Input() types.Input {
	return types.Input(s)
}

func TestGameManager_Start(t *testing.T) {
	snapshotChan := make(chan *messages.Snapshot, 1000)
	gm := newTestGameManager(t, NewGameManagerOptions{
		Seed:         1,
		SnapshotChan: snapshotChan,
		TickInterval: time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, gm.Start(ctx, staticInput{Paddle1: types.PaddleInput{Up: true}}))

	require.NotEmpty(t, snapshotChan)
	first := <-snapshotChan
	assert.Equal(t, uint64(1), first.Tick)
	assert.NotZero(t, first.Timestamp)
	assert.Greater(t, gm.gameState.Paddle1.Position.Y, 300.0)
}
