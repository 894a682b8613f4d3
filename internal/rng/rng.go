package rng

// Generator provides the randomness the engine needs: uniform integers for
// shuffling and seat order, uniform floats for the computer decision model
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Float64 will return a uniform random number in [0, 1)
	Float64() float64
}
