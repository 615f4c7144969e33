package types

import "github.com/google/uuid"

// GoalEvent is emitted once per goal.
type GoalEvent struct {
	// Tick is the tick in which the goal was detected
	Tick uint64
	// Scorer is the player awarded the point
	Scorer Side
	// Conceded is the player whose side the ball crossed
	Conceded Side
	// Score is the score after the goal
	Score   Score
	RallyID uuid.UUID
}
