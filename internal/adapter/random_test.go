package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCGRandomSource_Deterministic(t *testing.T) {
	a := NewSeededRandomSource(7, 11)
	b := NewSeededRandomSource(7, 11)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d", i)
	}
}

func TestPCGRandomSource_Range(t *testing.T) {
	rng := NewRandomSource()

	for i := 0; i < 1000; i++ {
		v := rng.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}

	assert.Equal(t, 0, rng.Intn(1))
	assert.Panics(t, func() { rng.Intn(0) })
}
