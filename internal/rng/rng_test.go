package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_deterministic(t *testing.T) {
	a := NewSeeded(5)
	b := NewSeeded(5)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeeded_bounds(t *testing.T) {
	g := NewSeeded(1)
	for i := 0; i < 100; i++ {
		n := g.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)

		f := g.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestCrypto_bounds(t *testing.T) {
	g := Crypto{}
	for i := 0; i < 100; i++ {
		n := g.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)

		f := g.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
