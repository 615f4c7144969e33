package collisions

import (
	"math"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/solarlune/resolv"
)

// NewCollisionSpace returns a resolv.Space covering the window, split into
// cells of constants.CollisionCellSize.
func NewCollisionSpace(window types.Window) *resolv.Space {
	cells := constants.CollisionCellSize
	width := int(math.Ceil(window.Width/float64(cells))) * cells
	height := int(math.Ceil(window.Height/float64(cells))) * cells
	return resolv.NewSpace(width, height, cells, cells)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ObjectBounds returns the bounding box of a resolv object.
func ObjectBounds(obj *resolv.Object) Bounds {
	return Bounds{
		MinX: obj.Position.X,
		MinY: obj.Position.Y,
		MaxX: obj.Position.X + obj.Size.X,
		MaxY: obj.Position.Y + obj.Size.Y,
	}
}

// OverlapsY reports whether the vertical ranges of a and b overlap, edges included.
func OverlapsY(a, b Bounds) bool {
	return a.MaxY >= b.MinY && a.MinY <= b.MaxY
}

// WithinX reports whether x lies inside the horizontal range of b, edges included.
func WithinX(x float64, b Bounds) bool {
	return x >= b.MinX && x <= b.MaxX
}

// Nearby returns the objects tagged with any of tags that share a cell with
// obj's bounds grown by one unit on every side. resolv's cell lookup ends one
// unit inside an object's far edge, so checking the four diagonal offsets
// keeps edge contact on a cell boundary from being missed.
func Nearby(obj *resolv.Object, tags ...string) []*resolv.Object {
	seen := map[*resolv.Object]bool{}
	var found []*resolv.Object
	for _, offset := range [4][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		collision := obj.Check(offset[0], offset[1], tags...)
		if collision == nil {
			continue
		}
		for _, other := range collision.Objects {
			if seen[other] {
				continue
			}
			seen[other] = true
			found = append(found, other)
		}
	}
	return found
}
