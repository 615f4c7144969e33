package types

import (
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagPaddle string = "paddle"
	CollisionSpaceTagBall   string = "ball"
)

// Side identifies a player and the paddle they control.
type Side uint8

const (
	SideNone Side = iota
	Player1
	Player2
)

func (s Side) String() string {
	switch s {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "None"
}

// Number returns 1 or 2 for a player side and 0 otherwise.
func (s Side) Number() int {
	switch s {
	case Player1:
		return 1
	case Player2:
		return 2
	}
	return 0
}

// Opponent returns the other player.
func (s Side) Opponent() Side {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return SideNone
}

// PaddleInput holds the two independent movement keys of one paddle.
type PaddleInput struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// Direction returns +1 for up, -1 for down and 0 when neither or both are held.
func (i PaddleInput) Direction() float64 {
	direction := 0.0
	if i.Up {
		direction += 1
	}
	if i.Down {
		direction -= 1
	}
	return direction
}

// Input is the key state of both paddles for one tick.
type Input struct {
	Paddle1 PaddleInput `json:"paddle1"`
	Paddle2 PaddleInput `json:"paddle2"`
}

// ForSide returns the input of the given paddle.
func (i Input) ForSide(side Side) PaddleInput {
	if side == Player2 {
		return i.Paddle2
	}
	return i.Paddle1
}

type PaddleState struct {
	Side Side
	// Position is the center of the paddle. X never changes after creation.
	Position kinematic.Vector
	// Object is the paddle's bounding box in the collision space
	Object *resolv.Object
}

func NewPaddleState(side Side, x float64, y float64, width float64, height float64) *PaddleState {
	p := &PaddleState{
		Side: side,
		Position: kinematic.Vector{
			X: x,
			Y: y,
		},
		Object: resolv.NewObject(x-width/2, y-height/2, width, height, CollisionSpaceTagPaddle),
	}
	return p
}

// HalfWidth returns half of the paddle's width.
func (p *PaddleState) HalfWidth() float64 {
	return p.Object.Size.X / 2
}

// HalfHeight returns half of the paddle's height.
func (p *PaddleState) HalfHeight() float64 {
	return p.Object.Size.Y / 2
}

// Move integrates the paddle's vertical position from its input.
func (p *PaddleState) Move(input PaddleInput, speed float64, deltaTime float64) {
	p.Position.Y += kinematic.Displacement(input.Direction()*speed, deltaTime, 0)
	p.syncObject()
}

// Confine clamps the paddle inside [half height, windowHeight - half height].
func (p *PaddleState) Confine(windowHeight float64) {
	yMin := p.HalfHeight()
	yMax := windowHeight - p.HalfHeight()

	if p.Position.Y < yMin {
		p.Position.Y = yMin
	}
	if p.Position.Y > yMax {
		p.Position.Y = yMax
	}
	p.syncObject()
}

func (p *PaddleState) syncObject() {
	p.Object.Position.X = p.Position.X - p.HalfWidth()
	p.Object.Position.Y = p.Position.Y - p.HalfHeight()
	p.Object.Update()
}

// Copy returns a copy of the paddle state with an empty object reference
func (p *PaddleState) Copy() *PaddleState {
	return &PaddleState{
		Side:     p.Side,
		Position: p.Position,
	}
}
