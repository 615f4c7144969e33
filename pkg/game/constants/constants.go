package constants

const (

	// WindowWidth is the default width of the playing field
	WindowWidth float64 = 800.0
	// WindowHeight is the default height of the playing field
	WindowHeight float64 = 600.0

	// PaddleSpeed is the speed at which paddles move
	PaddleSpeed float64 = 400.0
	// Paddle Width
	PaddleWidth float64 = 30.0
	// Paddle Height
	PaddleHeight float64 = 180.0
	// Paddle1XDivisor places paddle 1 at WindowWidth / Paddle1XDivisor
	Paddle1XDivisor float64 = 20.0
	// Paddle2XDivisor places paddle 2 at WindowWidth / Paddle2XDivisor
	Paddle2XDivisor float64 = 1.05

	// BallSize is the side length of the ball's bounding box
	BallSize float64 = 10.0
	// BallBaseSpeed is the speed of a freshly spawned ball
	BallBaseSpeed float64 = 200.0
	// BallSpeedIncreaseFactor multiplies the ball speed on every paddle hit
	BallSpeedIncreaseFactor float64 = 1.25

	// CountdownDuration is the delay between a goal and the next ball
	CountdownDuration float64 = 1.0 // seconds

	// CollisionCellSize is the cell size of the collision space
	CollisionCellSize int = 16
)
