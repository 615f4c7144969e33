package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/screen"
	"github.com/cbodonnell/pong/pkg/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Paddle struct {
	width  float64
	height float64
	state  *messages.PaddleUpdate
}

func NewPaddle(width, height float64) *Paddle {
	return &Paddle{
		width:  width,
		height: height,
	}
}

// SetState replaces the paddle's position with the one from a snapshot.
func (p *Paddle) SetState(state messages.PaddleUpdate) {
	p.state = &state
}

func (p *Paddle) Update() error {
	return nil
}

func (p *Paddle) Draw(s *ebiten.Image) {
	if p.state == nil {
		return
	}
	r := screen.FromCenter(p.state.Position, p.width, p.height, float64(s.Bounds().Dy()))
	vector.DrawFilledRect(s, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.White, false)
}
