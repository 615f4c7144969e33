package screen

import (
	"testing"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func TestFromCenter(t *testing.T) {
	tests := []struct {
		name   string
		center kinematic.Vector
		width  float64
		height float64
		want   Rect
	}{
		{
			name:   "paddle at the top",
			center: kinematic.Vector{X: 40, Y: 510},
			width:  30,
			height: 180,
			want:   Rect{X: 25, Y: 0, W: 30, H: 180},
		},
		{
			name:   "paddle at the bottom",
			center: kinematic.Vector{X: 40, Y: 90},
			width:  30,
			height: 180,
			want:   Rect{X: 25, Y: 420, W: 30, H: 180},
		},
		{
			name:   "ball in the center",
			center: kinematic.Vector{X: 400, Y: 300},
			width:  10,
			height: 10,
			want:   Rect{X: 395, Y: 295, W: 10, H: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCenter(tt.center, tt.width, tt.height, 600))
		})
	}
}

func TestSize(t *testing.T) {
	w, h := Size(types.Window{Width: 800, Height: 600})
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = Size(types.Window{Width: 640.5, Height: 479.2})
	assert.Equal(t, 641, w)
	assert.Equal(t, 480, h)
}
