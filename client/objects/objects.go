package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for drawable types.
type GameObject interface {
	Update() error
	Draw(screen *ebiten.Image)
}
