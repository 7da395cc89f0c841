// Package sampling provides seeded shuffling, class balancing, and
// train/test splitting.
//
// Every function takes an explicit *rand.Rand rather than touching the
// global source, so a run is reproducible from its seed and independent
// callers cannot perturb each other's draws.
package sampling

import (
	"errors"
	"math/rand"
)

// ErrFraction indicates a test fraction outside [0,1].
var ErrFraction = errors.New("sampling: test fraction must be within [0,1]")

// Shuffle permutes items in place using rng.
func Shuffle[T any](items []T, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Balance equalizes two class sample sets: each is shuffled and then
// truncated to the size of the smaller one, discarding surplus samples of
// the majority class at random. The inputs are not modified.
func Balance[T any](a, b []T, rng *rand.Rand) (outA, outB []T) {
	outA = append([]T(nil), a...)
	outB = append([]T(nil), b...)
	Shuffle(outA, rng)
	Shuffle(outB, rng)
	n := len(outA)
	if len(outB) < n {
		n = len(outB)
	}
	return outA[:n], outB[:n]
}

// TrainTestSplit shuffles a copy of items and slices it into a training and
// a test portion. testFrac is the fraction assigned to the test portion,
// rounded down; the input is not modified.
func TrainTestSplit[T any](items []T, testFrac float64, rng *rand.Rand) (train, test []T, err error) {
	if testFrac < 0 || testFrac > 1 {
		return nil, nil, ErrFraction
	}
	shuffled := append([]T(nil), items...)
	Shuffle(shuffled, rng)
	nTest := int(float64(len(shuffled)) * testFrac)
	return shuffled[nTest:], shuffled[:nTest], nil
}
