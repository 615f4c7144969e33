package types

import (
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

type BallState struct {
	// Generation increases by one for every ball spawned by a game manager
	Generation uint32
	// RallyID identifies the rally this ball was served for
	RallyID uuid.UUID
	// Position is the center of the ball
	Position kinematic.Vector
	// Direction is a unit vector
	Direction kinematic.Vector
	Speed     float64
	Object    *resolv.Object

	pendingRemoval bool
	removalTick    uint64
}

func NewBallState(generation uint32, position kinematic.Vector, direction kinematic.Vector, speed float64, size float64) *BallState {
	return &BallState{
		Generation: generation,
		RallyID:    uuid.New(),
		Position:   position,
		Direction:  direction,
		Speed:      speed,
		Object:     resolv.NewObject(position.X-size/2, position.Y-size/2, size, size, CollisionSpaceTagBall),
	}
}

// HalfSize returns half of the ball's side length.
func (b *BallState) HalfSize() float64 {
	return b.Object.Size.X / 2
}

// Move integrates the ball's position from its direction and speed.
func (b *BallState) Move(deltaTime float64) {
	b.Position = b.Position.Add(kinematic.DisplacementVector(b.Direction.Scale(b.Speed), deltaTime))
	b.syncObject()
}

func (b *BallState) syncObject() {
	b.Object.Position.X = b.Position.X - b.HalfSize()
	b.Object.Position.Y = b.Position.Y - b.HalfSize()
	b.Object.Update()
}

// BounceX reverses the horizontal direction.
func (b *BallState) BounceX() {
	b.Direction.X *= -1
}

// BounceY reverses the vertical direction.
func (b *BallState) BounceY() {
	b.Direction.Y *= -1
}

// Accelerate multiplies the speed by factor.
func (b *BallState) Accelerate(factor float64) {
	b.Speed *= factor
}

// MarkForRemoval flags the ball to be removed by the first cleanup pass after tick.
func (b *BallState) MarkForRemoval(tick uint64) {
	if b.pendingRemoval {
		return
	}
	b.pendingRemoval = true
	b.removalTick = tick
}

func (b *BallState) PendingRemoval() bool {
	return b.pendingRemoval
}

func (b *BallState) RemovalTick() uint64 {
	return b.removalTick
}

// Copy returns a copy of the ball state with an empty object reference
func (b *BallState) Copy() *BallState {
	return &BallState{
		Generation:     b.Generation,
		RallyID:        b.RallyID,
		Position:       b.Position,
		Direction:      b.Direction,
		Speed:          b.Speed,
		pendingRemoval: b.pendingRemoval,
		removalTick:    b.removalTick,
	}
}
