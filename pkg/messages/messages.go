package messages

import (
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/google/uuid"
)

const (
	// MaxFrameSize is the largest encoded frame ReadFrame accepts
	MaxFrameSize = 1 << 20
)

// Snapshot is the observable state of the simulation after a tick:
// positions for presentation, the score pair and the play state.
type Snapshot struct {
	Tick      uint64
	Timestamp int64
	PlayState uint8
	Score     ScoreUpdate
	// LastScored is the side that most recently conceded
	LastScored uint8
	Paddles    []PaddleUpdate
	// Ball is nil while no ball exists
	Ball *BallUpdate
}

type ScoreUpdate struct {
	Player1 uint32
	Player2 uint32
}

type PaddleUpdate struct {
	Side     uint8
	Position kinematic.Vector
}

type BallUpdate struct {
	Generation     uint32
	RallyID        uuid.UUID
	Position       kinematic.Vector
	Direction      kinematic.Vector
	Speed          float64
	PendingRemoval bool
}

// Paddle returns the paddle update for side, if present.
func (s *Snapshot) Paddle(side uint8) (PaddleUpdate, bool) {
	for _, p := range s.Paddles {
		if p.Side == side {
			return p, true
		}
	}
	return PaddleUpdate{}, false
}
