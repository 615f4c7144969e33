package game

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/log"
)

// updateBallLifecycle removes a ball flagged during an earlier tick and serves
// a new one whenever play enters Running without a ball. A rally that was
// paused or left for the menu resumes with its own ball.
func (gm *GameManager) updateBallLifecycle(transition *types.Transition) {
	gm.cleanupBall()

	if transition == nil || transition.To != types.PlayStateRunning {
		return
	}
	gm.spawnBall()
}

// cleanupBall deletes the ball if it was flagged for removal before the current tick.
func (gm *GameManager) cleanupBall() {
	ball := gm.gameState.Ball
	if ball == nil || !ball.PendingRemoval() {
		return
	}
	if ball.RemovalTick() >= gm.gameState.Tick {
		return
	}
	log.Debug("Removing ball %d of rally %s", ball.Generation, ball.RallyID)
	gm.gameState.RemoveBall()
}

// spawnBall serves a new ball from the center of the window at base speed.
func (gm *GameManager) spawnBall() {
	if gm.gameState.HasBall() {
		log.Debug("Ball %d is still in play, not spawning", gm.gameState.Ball.Generation)
		return
	}

	centerX, centerY := gm.gameState.Window.Center()
	direction := gm.serveDirection()
	gm.generation++
	ball := types.NewBallState(gm.generation, kinematic.Vector{X: centerX, Y: centerY}, direction, gm.physics.BallBaseSpeed, gm.physics.BallSize)
	gm.gameState.AddBall(ball)

	log.Debug("Spawned ball %d for rally %s with direction (%.3f, %.3f)", ball.Generation, ball.RallyID, direction.X, direction.Y)
}

// serveDirection draws a unit direction whose horizontal component has the
// sign of the serve bias and whose vertical component is uniform in [-1, 1].
func (gm *GameManager) serveDirection() kinematic.Vector {
	bias := serveBias(gm.gameState.LastScored)
	direction := kinematic.Vector{
		X: gm.rng.Float64() * bias,
		Y: gm.rng.Float64()*2 - 1,
	}
	if direction.Length() == 0 {
		return kinematic.Vector{X: bias}
	}
	return direction.Normalize()
}

// serveBias sends the ball towards the player who won the last point, which
// is the opponent of the side that conceded.
func serveBias(conceded types.Side) float64 {
	if conceded == types.Player2 {
		return -1
	}
	return 1
}
