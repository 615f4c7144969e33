package game

import (
	"fmt"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// Physics holds the tunable sizes and speeds of the simulation.
type Physics struct {
	PaddleSpeed             float64
	PaddleWidth             float64
	PaddleHeight            float64
	BallSize                float64
	BallBaseSpeed           float64
	BallSpeedIncreaseFactor float64
	// CountdownDuration is in seconds
	CountdownDuration float64
}

func DefaultPhysics() Physics {
	return Physics{
		PaddleSpeed:             constants.PaddleSpeed,
		PaddleWidth:             constants.PaddleWidth,
		PaddleHeight:            constants.PaddleHeight,
		BallSize:                constants.BallSize,
		BallBaseSpeed:           constants.BallBaseSpeed,
		BallSpeedIncreaseFactor: constants.BallSpeedIncreaseFactor,
		CountdownDuration:       constants.CountdownDuration,
	}
}

func (p Physics) Validate() error {
	if p.PaddleSpeed < 0 {
		return fmt.Errorf("paddle speed must not be negative: %v", p.PaddleSpeed)
	}
	if p.PaddleWidth <= 0 || p.PaddleHeight <= 0 {
		return fmt.Errorf("paddle size must be positive: %vx%v", p.PaddleWidth, p.PaddleHeight)
	}
	if p.BallSize <= 0 {
		return fmt.Errorf("ball size must be positive: %v", p.BallSize)
	}
	if p.BallBaseSpeed <= 0 {
		return fmt.Errorf("ball base speed must be positive: %v", p.BallBaseSpeed)
	}
	if p.BallSpeedIncreaseFactor < 1 {
		return fmt.Errorf("ball speed increase factor must be at least 1: %v", p.BallSpeedIncreaseFactor)
	}
	if p.CountdownDuration < 0 {
		return fmt.Errorf("countdown duration must not be negative: %v", p.CountdownDuration)
	}
	return nil
}

// ValidateWindow checks that the window is positive and tall enough to hold a paddle.
func (p Physics) ValidateWindow(window types.Window) error {
	if err := window.Validate(); err != nil {
		return err
	}
	if window.Height < p.PaddleHeight || window.Width < p.BallSize {
		return fmt.Errorf("%w: %vx%v cannot hold a %v tall paddle", types.ErrInvalidWindow, window.Width, window.Height, p.PaddleHeight)
	}
	return nil
}
