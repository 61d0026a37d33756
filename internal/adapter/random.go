package adapter

import "math/rand/v2"

// RandomSource yields uniformly distributed integers in [0, n).
// Implementations are not required to be safe for concurrent use.
type RandomSource interface {
	Intn(n int) int
}

// PCGRandomSource is a RandomSource backed by a PCG generator.
type PCGRandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a generator seeded from the runtime's entropy.
func NewRandomSource() *PCGRandomSource {
	return NewSeededRandomSource(rand.Uint64(), rand.Uint64())
}

// NewSeededRandomSource returns a generator whose sequence is fully
// determined by the two seed words.
func NewSeededRandomSource(seed1, seed2 uint64) *PCGRandomSource {
	return &PCGRandomSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *PCGRandomSource) Intn(n int) int {
	return r.rng.IntN(n)
}
