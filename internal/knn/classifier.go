package knn

import (
	"errors"
	"fmt"
)

var (
	// ErrBadK indicates a non-positive neighbor count.
	ErrBadK = errors.New("knn: k must be positive")

	// ErrNotFitted indicates Predict was called before Fit.
	ErrNotFitted = errors.New("knn: classifier has not been fitted")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the training vectors.
	ErrDimensionMismatch = errors.New("knn: feature vector length mismatch")

	// ErrEmptyTrainingSet indicates Fit was called with no samples.
	ErrEmptyTrainingSet = errors.New("knn: training set is empty")
)

// Classifier is a k-nearest-neighbor model. The zero value is not usable;
// construct with New and call Fit before Predict.
type Classifier struct {
	k       int
	dim     int
	vectors [][]float64
	labels  []int
}

// New creates a classifier that votes among the k nearest training samples.
func New(k int) (*Classifier, error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	return &Classifier{k: k}, nil
}

// Fit stores the training matrix. Every row of x must have the same length,
// and labels must parallel x. The slices are retained, not copied; callers
// must not mutate them afterwards.
func (c *Classifier) Fit(x [][]float64, labels []int) error {
	if len(x) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(x) != len(labels) {
		return fmt.Errorf("knn: %d vectors but %d labels", len(x), len(labels))
	}
	dim := len(x[0])
	for i, row := range x {
		if len(row) != dim {
			return fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), dim)
		}
	}
	c.dim = dim
	c.vectors = x
	c.labels = labels
	return nil
}

// neighbor is one candidate during the k-best scan.
type neighbor struct {
	dist  float64
	label int
}

// Predict returns the majority label among the k nearest training samples.
// Ties between labels are broken in favor of the label of the single
// nearest neighbor, which keeps prediction deterministic.
func (c *Classifier) Predict(v []float64) (int, error) {
	if c.vectors == nil {
		return 0, ErrNotFitted
	}
	if len(v) != c.dim {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, len(v), c.dim)
	}

	k := c.k
	if k > len(c.vectors) {
		k = len(c.vectors)
	}

	// Maintain the k best seen so far as a sorted insertion buffer.
	best := make([]neighbor, 0, k)
	for i, row := range c.vectors {
		d := squaredDistance(v, row)
		if len(best) == k && d >= best[k-1].dist {
			continue
		}
		pos := len(best)
		for pos > 0 && best[pos-1].dist > d {
			pos--
		}
		if len(best) < k {
			best = append(best, neighbor{})
		}
		copy(best[pos+1:], best[pos:len(best)-1])
		best[pos] = neighbor{dist: d, label: c.labels[i]}
	}

	votes := make(map[int]int, 2)
	for _, n := range best {
		votes[n.label]++
	}
	winner := best[0].label
	for _, n := range best {
		if votes[n.label] > votes[winner] {
			winner = n.label
		}
	}
	return winner, nil
}

// PredictBatch predicts a label for every row of x.
func (c *Classifier) PredictBatch(x [][]float64) ([]int, error) {
	out := make([]int, len(x))
	for i, v := range x {
		label, err := c.Predict(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = label
	}
	return out, nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i, av := range a {
		d := av - b[i]
		sum += d * d
	}
	return sum
}
