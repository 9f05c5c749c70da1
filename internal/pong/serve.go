package pong

import (
	"math"

	"golang.org/x/exp/rand"
)

// HeadingSource picks the ball heading at match start and after every point.
type HeadingSource interface {
	Heading() float64
}

type FixedHeading float64

func (h FixedHeading) Heading() float64 {
	return float64(h)
}

// RandomHeading serves along one of the four diagonals.
type RandomHeading struct {
	rng *rand.Rand
}

func NewRandomHeading(seed uint64) *RandomHeading {
	return &RandomHeading{rng: rand.New(rand.NewSource(seed))}
}

func (h *RandomHeading) Heading() float64 {
	return ServeHeading + float64(h.rng.Intn(4))*math.Pi/2
}
