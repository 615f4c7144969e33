package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/screen"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Ball struct {
	size  float64
	state *messages.BallUpdate
}

func NewBall(size float64) *Ball {
	return &Ball{
		size: size,
	}
}

// SetState replaces the ball with the one from a snapshot. A nil state hides the ball.
func (b *Ball) SetState(state *messages.BallUpdate) {
	b.state = state
}

func (b *Ball) Update() error {
	return nil
}

func (b *Ball) Draw(s *ebiten.Image) {
	if b.state == nil {
		return
	}
	clr := color.Color(color.White)
	if b.state.PendingRemoval {
		clr = color.RGBA{200, 40, 40, 255} // Red
	}
	r := screen.FromCenter(b.state.Position, b.size, b.size, float64(s.Bounds().Dy()))
	vector.DrawFilledRect(s, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
