package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

//go:generate mockgen -source=random.go -destination=mocks/random.go -package=mocks Random

// Random is the source of every random decision the engine makes: dice,
// shuffles and random army placement.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a pseudo-random source seeded with seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// rollDice throws num six-sided dice.
func rollDice(r Random, num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = r.Intn(6) + 1
	}
	return rolls
}
