package kinematic

// This package includes the vector math and kinematic equations used to move
// paddles and the ball.

import (
	"math"
)

// Vector is a 2D vector in world coordinates, with y pointing up.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// DisplacementVector applies Displacement per axis for an object moving at a
// constant velocity.
func DisplacementVector(velocity Vector, time float64) Vector {
	return Vector{
		X: Displacement(velocity.X, time, 0),
		Y: Displacement(velocity.Y, time, 0),
	}
}
