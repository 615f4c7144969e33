package game

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
)

// checkGoal awards a point when the ball has left the field on the left or
// right. The left edge is checked first, so at most one goal fires per tick.
// The ball is flagged for removal and the Scored state is requested.
func (gm *GameManager) checkGoal() *types.GoalEvent {
	ball := gm.gameState.ActiveBall()
	if ball == nil {
		return nil
	}

	xMin := ball.HalfSize()
	xMax := gm.gameState.Window.Width - ball.HalfSize()

	var scorer types.Side
	switch {
	case ball.Position.X < xMin:
		scorer = types.Player2
	case ball.Position.X > xMax:
		scorer = types.Player1
	default:
		return nil
	}

	gm.gameState.Score.Award(scorer)
	gm.gameState.LastScored = scorer.Opponent()
	ball.MarkForRemoval(gm.gameState.Tick)
	gm.stateMachine.Request(types.PlayStateScored)

	score := gm.gameState.Score
	log.Info("Player %d Scored!", scorer.Number())
	log.Info("Scores - Player 1: %d - Player 2: %d", score.Player1, score.Player2)

	event := &types.GoalEvent{
		Tick:     gm.gameState.Tick,
		Scorer:   scorer,
		Conceded: scorer.Opponent(),
		Score:    score,
		RallyID:  ball.RallyID,
	}
	if gm.goalQueue != nil {
		if err := gm.goalQueue.Enqueue(event); err != nil {
			log.Warn("Failed to enqueue goal event: %v", err)
		}
	}

	return event
}
