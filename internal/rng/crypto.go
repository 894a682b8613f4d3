package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Float64 returns a uniform random number in [0, 1) with 53 bits of precision
func (c Crypto) Float64() float64 {
	b, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		panic(err)
	}

	return float64(b.Int64()) / (1 << 53)
}
