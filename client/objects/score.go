package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Score draws both players' points on either side of the center line.
type Score struct {
	score types.Score
}

func NewScore() *Score {
	return &Score{}
}

func (o *Score) SetScore(score types.Score) {
	o.score = score
}

func (o *Score) Update() error {
	return nil
}

func (o *Score) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	for y := float32(0); y < height; y += 30 {
		vector.DrawFilledRect(screen, float32(width/2)-1, y, 2, 15, color.Gray{Y: 96}, false)
	}

	f := fonts.ScoreFont
	left := fmt.Sprintf("%d", o.score.Player1)
	right := fmt.Sprintf("%d", o.score.Player2)
	leftBounds, _ := font.BoundString(f, left)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(width/4-float64(leftBounds.Max.X>>6)/2, 60)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, left, f, op)

	rightBounds, _ := font.BoundString(f, right)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(3*width/4-float64(rightBounds.Max.X>>6)/2, 60)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, right, f, op)
}
