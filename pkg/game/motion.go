package game

import (
	"github.com/cbodonnell/pong/pkg/game/types"
)

// updateMotion moves both paddles from their input, confines them to the
// window and then moves the ball along its direction.
func (gm *GameManager) updateMotion(paddles []*types.PaddleState, input types.Input, deltaTime float64) {
	for _, paddle := range paddles {
		paddle.Move(input.ForSide(paddle.Side), gm.physics.PaddleSpeed, deltaTime)
	}

	for _, paddle := range paddles {
		paddle.Confine(gm.gameState.Window.Height)
	}

	if ball := gm.gameState.ActiveBall(); ball != nil {
		ball.Move(deltaTime)
	}
}
