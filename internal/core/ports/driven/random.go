package driven

// RandomSource supplies the randomness for card draws. Both *rand.Rand
// from math/rand/v2 and fixed test sources satisfy it, which keeps
// draws reproducible under test.
type RandomSource interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}
