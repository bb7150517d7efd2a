// Package benchmark measures how often a probabilistic checker accepts words
// that an exact checker rejects.
package benchmark

import (
	"context"
	"errors"
	"math/rand"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Checker is anything that can judge a word.
type Checker interface {
	IsWordValid(word string) bool
}

type Config struct {
	Iterations int
	WordLength int
	Seed       int64
}

var DefaultConfig = Config{
	Iterations: 10000,
	WordLength: 5,
	Seed:       1,
}

type Result struct {
	Iterations     int
	FalsePositives int
}

// Rate returns the observed false positive rate.
func (r Result) Rate() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.FalsePositives) / float64(r.Iterations)
}

// RandomString returns a string of length uppercase letters A-Z.
func RandomString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// Run queries candidate and reference with cfg.Iterations random words and
// counts the words candidate accepts but reference rejects. It stops early
// with ctx's error if ctx is done.
func Run(ctx context.Context, candidate, reference Checker, cfg Config) (Result, error) {
	if cfg.Iterations < 0 || cfg.WordLength < 1 {
		return Result{}, errors.New("benchmark: iterations must be >= 0 and word length >= 1")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	res := Result{}
	for i := 0; i < cfg.Iterations; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		input := RandomString(rng, cfg.WordLength)
		if candidate.IsWordValid(input) && !reference.IsWordValid(input) {
			res.FalsePositives++
		}
		res.Iterations++
	}
	return res, nil
}
