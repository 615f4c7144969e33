package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlay draws upper case text in the middle of the screen.
type TextOverlay struct {
	text string
	// ttl is the number of updates left before the overlay hides, 0 means forever
	ttl int
	// expired is set once a positive ttl runs out
	expired bool
}

func NewTextOverlay(text string, ttl int) *TextOverlay {
	return &TextOverlay{
		text: text,
		ttl:  ttl,
	}
}

func (o *TextOverlay) Visible() bool {
	return !o.expired
}

func (o *TextOverlay) Update() error {
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			o.expired = true
		}
	}
	return nil
}

func (o *TextOverlay) Draw(screen *ebiten.Image) {
	if o.expired {
		return
	}
	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
