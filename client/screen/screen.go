package screen

import (
	"math"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// Rect is a rectangle in screen coordinates, with the origin at the top left.
type Rect struct {
	X, Y float64
	W, H float64
}

// FromCenter converts a box centered on center in world coordinates, where y
// points up, to a screen rectangle.
func FromCenter(center kinematic.Vector, width, height, screenHeight float64) Rect {
	return Rect{
		X: center.X - width/2,
		Y: screenHeight - center.Y - height/2,
		W: width,
		H: height,
	}
}

// Size returns the screen size in pixels needed to show the whole window.
func Size(window types.Window) (int, int) {
	return int(math.Ceil(window.Width)), int(math.Ceil(window.Height))
}
