package types

import (
	"fmt"

	"github.com/solarlune/resolv"
)

// Window is the size of the playing field in world units.
type Window struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Validate returns ErrInvalidWindow unless both dimensions are positive.
func (w Window) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidWindow, w.Width, w.Height)
	}
	return nil
}

// Center returns the center of the window.
func (w Window) Center() (float64, float64) {
	return w.Width / 2, w.Height / 2
}

// Score counts the points of both players. Counters only ever increase.
type Score struct {
	Player1 uint32 `json:"player1"`
	Player2 uint32 `json:"player2"`
}

// Award increments the score of side by one.
func (s *Score) Award(side Side) {
	switch side {
	case Player1:
		s.Player1++
	case Player2:
		s.Player2++
	}
}

type GameState struct {
	// Tick is the number of ticks run so far
	Tick uint64
	// Timestamp is the time at which the game state was generated
	Timestamp int64
	// Window is the window size sampled at the start of the current tick
	Window  Window
	Paddle1 *PaddleState
	Paddle2 *PaddleState
	// Ball is nil between a goal's cleanup and the next spawn
	Ball  *BallState
	Score Score
	// LastScored is the side that most recently conceded a point
	LastScored Side
	// CollisionSpace is a resolv.Space used for collision detection
	CollisionSpace *resolv.Space
}

func NewGameState(window Window, collisionSpace *resolv.Space) *GameState {
	return &GameState{
		Window:         window,
		LastScored:     Player1,
		CollisionSpace: collisionSpace,
	}
}

// Paddle returns the paddle for side.
func (g *GameState) Paddle(side Side) (*PaddleState, error) {
	var p *PaddleState
	switch side {
	case Player1:
		p = g.Paddle1
	case Player2:
		p = g.Paddle2
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaddleNotFound, side)
	}
	return p, nil
}

// Paddles returns both paddles, failing if either is missing.
func (g *GameState) Paddles() ([]*PaddleState, error) {
	p1, err := g.Paddle(Player1)
	if err != nil {
		return nil, err
	}
	p2, err := g.Paddle(Player2)
	if err != nil {
		return nil, err
	}
	return []*PaddleState{p1, p2}, nil
}

// SetPaddle stores the paddle and adds it to the collision space.
func (g *GameState) SetPaddle(p *PaddleState) {
	switch p.Side {
	case Player1:
		g.Paddle1 = p
	case Player2:
		g.Paddle2 = p
	default:
		return
	}
	if g.CollisionSpace != nil {
		g.CollisionSpace.Add(p.Object)
	}
}

// SetCollisionSpace moves the paddles and ball from the current collision
// space into space.
func (g *GameState) SetCollisionSpace(space *resolv.Space) {
	for _, obj := range g.collisionObjects() {
		if g.CollisionSpace != nil {
			g.CollisionSpace.Remove(obj)
		}
		space.Add(obj)
	}
	g.CollisionSpace = space
}

func (g *GameState) collisionObjects() []*resolv.Object {
	var objects []*resolv.Object
	for _, p := range []*PaddleState{g.Paddle1, g.Paddle2} {
		if p != nil {
			objects = append(objects, p.Object)
		}
	}
	if g.Ball != nil {
		objects = append(objects, g.Ball.Object)
	}
	return objects
}

// HasBall reports whether a ball currently exists.
func (g *GameState) HasBall() bool {
	return g.Ball != nil
}

// ActiveBall returns the ball if it exists and is not flagged for removal.
func (g *GameState) ActiveBall() *BallState {
	if g.Ball == nil || g.Ball.PendingRemoval() {
		return nil
	}
	return g.Ball
}

// AddBall stores the ball and adds it to the collision space.
func (g *GameState) AddBall(b *BallState) {
	g.Ball = b
	if g.CollisionSpace != nil {
		g.CollisionSpace.Add(b.Object)
	}
}

// RemoveBall removes the ball from the game state and the collision space.
func (g *GameState) RemoveBall() {
	if g.Ball == nil {
		return
	}
	if g.CollisionSpace != nil {
		g.CollisionSpace.Remove(g.Ball.Object)
	}
	g.Ball = nil
}

// Copy returns a copy of the game state without collision objects.
func (g *GameState) Copy() *GameState {
	newGameState := &GameState{
		Tick:       g.Tick,
		Timestamp:  g.Timestamp,
		Window:     g.Window,
		Score:      g.Score,
		LastScored: g.LastScored,
	}
	if g.Paddle1 != nil {
		newGameState.Paddle1 = g.Paddle1.Copy()
	}
	if g.Paddle2 != nil {
		newGameState.Paddle2 = g.Paddle2.Copy()
	}
	if g.Ball != nil {
		newGameState.Ball = g.Ball.Copy()
	}
	return newGameState
}
