package game

import (
	"github.com/cbodonnell/pong/pkg/collisions"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/solarlune/resolv"
)

// resolveCollisions bounces the ball off the top and bottom walls and off the
// paddles. Crossing the left or right edge is a goal, not a collision. Paddles
// are found through the collision space, then tested exactly by hitsPaddle.
//
// Neither bounce corrects the ball's position, so a ball that is still
// overlapping on the next tick bounces again, and paddle hits speed the ball up
// without limit.
func (gm *GameManager) resolveCollisions(paddles []*types.PaddleState) {
	ball := gm.gameState.ActiveBall()
	if ball == nil {
		return
	}

	if hitsWall(ball, gm.gameState.Window) {
		ball.BounceY()
		log.Trace("Ball %d bounced off a wall at %v", ball.Generation, ball.Position)
	}

	nearby := map[*resolv.Object]bool{}
	for _, obj := range collisions.Nearby(ball.Object, types.CollisionSpaceTagPaddle) {
		nearby[obj] = true
	}
	for _, paddle := range paddles {
		if !nearby[paddle.Object] || !hitsPaddle(ball, paddle) {
			continue
		}
		ball.BounceX()
		ball.Accelerate(gm.physics.BallSpeedIncreaseFactor)
		log.Trace("Ball %d bounced off %s paddle, speed now %v", ball.Generation, paddle.Side, ball.Speed)
	}
}

// hitsWall reports whether the ball's center is outside [half size, height - half size].
func hitsWall(ball *types.BallState, window types.Window) bool {
	yMin := ball.HalfSize()
	yMax := window.Height - ball.HalfSize()
	return ball.Position.Y > yMax || ball.Position.Y < yMin
}

// hitsPaddle tests the ball's leading edge against the paddle's horizontal
// extent and the full vertical extents against each other. Paddle 1 defends
// the left side, so the ball's left edge leads; paddle 2 uses the right edge.
func hitsPaddle(ball *types.BallState, paddle *types.PaddleState) bool {
	ballBounds := collisions.ObjectBounds(ball.Object)
	paddleBounds := collisions.ObjectBounds(paddle.Object)

	leadingEdge := ballBounds.MinX
	if paddle.Side == types.Player2 {
		leadingEdge = ballBounds.MaxX
	}

	return collisions.WithinX(leadingEdge, paddleBounds) && collisions.OverlapsY(ballBounds, paddleBounds)
}
