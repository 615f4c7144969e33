package game

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/messages"
)

func SnapshotFromState(state *types.GameState, playState types.PlayState) *messages.Snapshot {
	snapshot := &messages.Snapshot{
		Tick:       state.Tick,
		Timestamp:  state.Timestamp,
		PlayState:  uint8(playState),
		LastScored: uint8(state.LastScored),
		Score: messages.ScoreUpdate{
			Player1: state.Score.Player1,
			Player2: state.Score.Player2,
		},
	}

	for _, paddle := range []*types.PaddleState{state.Paddle1, state.Paddle2} {
		if paddle == nil {
			continue
		}
		snapshot.Paddles = append(snapshot.Paddles, PaddleUpdateFromState(paddle))
	}

	if state.Ball != nil {
		snapshot.Ball = BallUpdateFromState(state.Ball)
	}

	return snapshot
}

func PaddleUpdateFromState(state *types.PaddleState) messages.PaddleUpdate {
	return messages.PaddleUpdate{
		Side:     uint8(state.Side),
		Position: state.Position,
	}
}

func BallUpdateFromState(state *types.BallState) *messages.BallUpdate {
	return &messages.BallUpdate{
		Generation:     state.Generation,
		RallyID:        state.RallyID,
		Position:       state.Position,
		Direction:      state.Direction,
		Speed:          state.Speed,
		PendingRemoval: state.PendingRemoval(),
	}
}

// ScoreFromSnapshot converts the snapshot's score pair back to the game type.
func ScoreFromSnapshot(snapshot *messages.Snapshot) types.Score {
	return types.Score{
		Player1: snapshot.Score.Player1,
		Player2: snapshot.Score.Player2,
	}
}
