package pong

import "math"

type hitSide int

const (
	hitNone hitSide = iota
	hitLeft
	hitRight
)

func (h hitSide) String() string {
	switch h {
	case hitLeft:
		return "left"
	case hitRight:
		return "right"
	default:
		return "none"
	}
}

// NewBall returns a ball at the arena centre at minimum speed.
func (a Arena) NewBall(theta float64) Ball {
	b := Ball{Side: BallSide}
	a.ResetBall(&b, theta)
	return b
}

func (a Arena) ResetBall(b *Ball, theta float64) {
	b.X = a.Width / 2
	b.Y = a.Height / 2
	b.Speed = MinSpeed
	b.Theta = theta
}

// Advance runs one tick of ball physics. Walls, paddles and the goal lines are
// all tested against the position the ball had before this tick's move. When
// the ball is past a goal line the ball is left where it is and the event is
// returned; the caller resets it.
func (a Arena) Advance(b *Ball, left, right *Paddle) ScoringEvent {
	ev, _ := a.step(b, left, right)
	return ev
}

func (a Arena) step(b *Ball, left, right *Paddle) (ScoringEvent, hitSide) {
	a.reflectWalls(b)

	hit := collide(b, left, right)

	if b.X <= 0 {
		return RightScored, hit
	} else if b.X >= a.Width {
		return LeftScored, hit
	}

	b.X += int(math.Round(b.Speed * math.Sin(b.Theta)))
	b.Y += int(math.Round(b.Speed * math.Cos(b.Theta)))

	return None, hit
}

func (a Arena) reflectWalls(b *Ball) {
	if b.Y <= 0 {
		if b.Theta < 0 {
			b.Theta = -math.Pi - b.Theta
		} else {
			b.Theta = math.Pi - b.Theta
		}
	} else if b.Y+b.Side >= a.Height {
		if b.Theta > 0 {
			b.Theta = math.Pi - b.Theta
		} else {
			b.Theta = -math.Pi - b.Theta
		}
	}
}

// collide applies at most one paddle response per tick, left paddle first.
// A ball still overlapping a paddle on the following tick is turned again.
func collide(b *Ball, left, right *Paddle) hitSide {
	hit := hitNone
	if b.Rect().Intersects(left.Rect()) {
		hit = hitLeft
	} else if b.Rect().Intersects(right.Rect()) {
		hit = hitRight
	}
	if hit != hitNone {
		b.Theta -= math.Pi / 2
		b.Speed += SpeedStep
	}
	b.Speed = clampSpeed(b.Speed)
	return hit
}

func clampSpeed(s float64) float64 {
	if s > MaxSpeed {
		return MaxSpeed
	} else if s < MinSpeed {
		return MinSpeed
	}
	return s
}
