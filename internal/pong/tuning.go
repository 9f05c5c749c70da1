package pong

import "math"

const (
	ArenaWidth   = 800
	ArenaHeight  = 600
	PaddleWidth  = 20
	PaddleHeight = 100

	LeftPaddleOffset = 10
	PaddleMargin     = 10 // gap between the right paddle and the right edge
	PaddleStep       = 2  // per tick

	BallSide  = 5
	MinSpeed  = 2.0
	MaxSpeed  = 5.0
	SpeedStep = 0.1 // added on every paddle hit

	ServeHeading = math.Pi / 4
)
