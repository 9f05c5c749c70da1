package pong

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// ballAt builds a ball away from both paddles unless placed on one.
func ballAt(x, y int, speed, theta float64) Ball {
	return Ball{X: x, Y: y, Side: BallSide, Speed: speed, Theta: theta}
}

func TestAdvanceWallReflection(t *testing.T) {
	a := DefaultArena()
	cases := []struct {
		name  string
		y     int
		theta float64
		want  float64
	}{
		{"top, positive heading", 0, 0.3, math.Pi - 0.3},
		{"top, zero heading", 0, 0, math.Pi},
		{"top, negative heading", 0, -0.3, -math.Pi + 0.3},
		{"above top", -2, 2.5, math.Pi - 2.5},
		{"bottom, positive heading", 595, 0.4, math.Pi - 0.4},
		{"bottom, zero heading", 595, 0, -math.Pi},
		{"bottom, negative heading", 595, -0.4, -math.Pi + 0.4},
		{"below bottom", 598, 0.2, math.Pi - 0.2},
		{"no wall", 300, 0.3, 0.3},
		{"one above bottom", 594, 0.3, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, r := a.LeftPaddle(), a.RightPaddle()
			b := ballAt(400, tc.y, MinSpeed, tc.theta)
			if ev := a.Advance(&b, &l, &r); ev != None {
				t.Fatalf("event = %v, want none", ev)
			}
			if !near(b.Theta, tc.want) {
				t.Fatalf("theta = %f, want %f", b.Theta, tc.want)
			}
		})
	}
}

func TestAdvanceTopWallExample(t *testing.T) {
	a := DefaultArena()
	l, r := a.LeftPaddle(), a.RightPaddle()
	b := ballAt(400, 0, MinSpeed, 0.3)
	a.Advance(&b, &l, &r)
	if math.Abs(b.Theta-2.8416) > 1e-4 {
		t.Fatalf("theta = %f, want ~2.8416", b.Theta)
	}
}

func TestAdvancePaddleCollision(t *testing.T) {
	a := DefaultArena()
	for _, side := range []string{"left", "right"} {
		t.Run(side, func(t *testing.T) {
			l, r := a.LeftPaddle(), a.RightPaddle()
			x := 25
			if side == "right" {
				x = 770
			}
			b := ballAt(x, 320, 2.0, 0.5)
			ev, hit := a.step(&b, &l, &r)
			if ev != None {
				t.Fatalf("event = %v, want none", ev)
			}
			if hit.String() != side {
				t.Fatalf("hit = %v, want %s", hit, side)
			}
			if !near(b.Theta, 0.5-math.Pi/2) {
				t.Fatalf("theta = %f, want %f", b.Theta, 0.5-math.Pi/2)
			}
			if math.Abs(b.Theta-(-1.0708)) > 1e-4 {
				t.Fatalf("theta = %f, want ~-1.0708", b.Theta)
			}
			if !near(b.Speed, 2.1) {
				t.Fatalf("speed = %f, want 2.1", b.Speed)
			}
		})
	}
}

func TestAdvanceTouchingPaddleIsNotACollision(t *testing.T) {
	a := DefaultArena()
	l, r := a.LeftPaddle(), a.RightPaddle()
	// left paddle spans x [10,30); a ball starting at x=30 only touches it
	b := ballAt(30, 320, 2.0, 0.5)
	a.Advance(&b, &l, &r)
	if !near(b.Speed, 2.0) {
		t.Fatalf("speed = %f, touching edge should not count", b.Speed)
	}
}

func TestAdvanceOnlyOnePaddleResponds(t *testing.T) {
	a := DefaultArena()
	l := a.LeftPaddle()
	r := l
	b := ballAt(15, 320, 2.0, 0.5)
	_, hit := a.step(&b, &l, &r)
	if hit != hitLeft {
		t.Fatalf("hit = %v, want left", hit)
	}
	if !near(b.Theta, 0.5-math.Pi/2) || !near(b.Speed, 2.1) {
		t.Fatalf("theta=%f speed=%f, want a single response", b.Theta, b.Speed)
	}
}

func TestAdvanceRepeatsCollisionWhileOverlapping(t *testing.T) {
	a := DefaultArena()
	l, r := a.LeftPaddle(), a.RightPaddle()
	b := ballAt(15, 340, 2.0, 0.5)

	a.Advance(&b, &l, &r)
	if b.X != 13 || b.Y != 341 {
		t.Fatalf("ball at (%d,%d), want (13,341)", b.X, b.Y)
	}
	if !b.Rect().Intersects(l.Rect()) {
		t.Fatalf("ball should still overlap the paddle")
	}

	a.Advance(&b, &l, &r)
	if !near(b.Theta, 0.5-math.Pi) {
		t.Fatalf("theta = %f, want %f", b.Theta, 0.5-math.Pi)
	}
	if !near(b.Speed, 2.2) {
		t.Fatalf("speed = %f, want 2.2", b.Speed)
	}
}

func TestAdvanceSpeedClamped(t *testing.T) {
	a := DefaultArena()
	l, r := a.LeftPaddle(), a.RightPaddle()

	b := ballAt(25, 320, 4.95, 0.5)
	a.Advance(&b, &l, &r)
	if b.Speed != MaxSpeed {
		t.Fatalf("speed = %f, want %f", b.Speed, MaxSpeed)
	}

	b = ballAt(400, 300, 1.0, 0.5)
	a.Advance(&b, &l, &r)
	if b.Speed != MinSpeed {
		t.Fatalf("speed = %f, want %f", b.Speed, MinSpeed)
	}
}

func TestAdvanceScoring(t *testing.T) {
	a := DefaultArena()
	cases := []struct {
		x    int
		want ScoringEvent
	}{
		{-1, RightScored},
		{0, RightScored},
		{1, None},
		{799, None},
		{800, LeftScored},
		{803, LeftScored},
	}
	for _, tc := range cases {
		l, r := a.LeftPaddle(), a.RightPaddle()
		b := ballAt(tc.x, 100, MinSpeed, ServeHeading)
		ev := a.Advance(&b, &l, &r)
		if ev != tc.want {
			t.Fatalf("x=%d: event = %v, want %v", tc.x, ev, tc.want)
		}
		if ev != None && (b.X != tc.x || b.Y != 100) {
			t.Fatalf("x=%d: ball moved to (%d,%d) on a scoring tick", tc.x, b.X, b.Y)
		}
	}
}

func TestAdvanceIntegratesWithRounding(t *testing.T) {
	a := DefaultArena()
	l, r := a.LeftPaddle(), a.RightPaddle()

	b := a.NewBall(math.Pi / 4)
	a.Advance(&b, &l, &r)
	if b.X != 401 || b.Y != 301 {
		t.Fatalf("ball at (%d,%d), want (401,301)", b.X, b.Y)
	}

	// 2.0*0.8 = 1.6 must round up, truncation would give 1
	b = ballAt(400, 300, 2.0, math.Asin(0.8))
	a.Advance(&b, &l, &r)
	if b.X != 402 || b.Y != 301 {
		t.Fatalf("ball at (%d,%d), want (402,301)", b.X, b.Y)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}
	cases := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", Rect{X: 15, Y: 15, W: 10, H: 10}, true},
		{"contained", Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"touch right", Rect{X: 20, Y: 10, W: 5, H: 5}, false},
		{"touch bottom", Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"apart", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
		{"empty", Rect{X: 12, Y: 12, W: 0, H: 5}, false},
	}
	for _, tc := range cases {
		if got := base.Intersects(tc.o); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.o.Intersects(base); got != tc.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}
