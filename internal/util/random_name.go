package util

import (
	"drawpoker/internal/rng"
)

var seatNames = []string{
	"Edwin", "Marie", "Stella", "Arthur", "Beatrice", "Clarence", "Dorothy", "Edgar",
	"Florence", "Gilbert", "Harriet", "Irving", "Josephine", "Klaus", "Lucille",
	"Mortimer", "Nadine", "Oswald", "Prudence", "Quentin", "Rosalind", "Silas",
	"Tabitha", "Ulysses", "Violet", "Wendell", "Xenia", "Yvette", "Zachary",
}

// RandomSeatNames returns count distinct names for computer-controlled seats
func RandomSeatNames(random rng.Generator, count int) []string {
	if count > len(seatNames) {
		panic("not enough seat names")
	}

	pool := make([]string, len(seatNames))
	copy(pool, seatNames)

	names := make([]string, count)
	for i := 0; i < count; i++ {
		j := i + random.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		names[i] = pool[i]
	}

	return names
}
