package pong

// NewPaddle places a paddle at column x with its top edge at mid-height.
func (a Arena) NewPaddle(x int) Paddle {
	return Paddle{
		X:      x,
		Y:      a.Height / 2,
		Width:  a.PaddleWidth,
		Height: a.PaddleHeight,
	}
}

func (a Arena) LeftPaddle() Paddle {
	return a.NewPaddle(LeftPaddleOffset)
}

func (a Arena) RightPaddle() Paddle {
	return a.NewPaddle(a.Width - PaddleMargin - a.PaddleWidth)
}

// MovePaddle shifts p by one step. A move that would push the leading edge
// onto or past the arena border is dropped, not clamped.
func (a Arena) MovePaddle(p *Paddle, dir Direction) {
	switch dir {
	case Up:
		if a.insideHeight(p.Y - PaddleStep) {
			p.Y -= PaddleStep
		}
	case Down:
		if a.insideHeight(p.Y + PaddleStep + p.Height) {
			p.Y += PaddleStep
		}
	}
}

func (a Arena) insideHeight(y int) bool {
	return y > 0 && y < a.Height
}
