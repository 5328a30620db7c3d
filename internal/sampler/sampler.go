// Package sampler implements O(1) weighted index selection with Vose's alias
// method. A Sampler is immutable after construction and may be shared by any
// number of goroutines; randomness always comes from the caller's Rand.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrConfiguration is returned when a weight vector cannot describe a
// distribution: it is empty, contains a negative or non-finite weight, or
// sums to zero.
var ErrConfiguration = errors.New("invalid sampler weights")

// Sampler holds the two parallel alias tables built from a weight vector.
type Sampler struct {
	prob  []float64
	alias []int
}

// New preprocesses weights into alias tables in O(n) time and space.
func New(weights []float64) (*Sampler, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty weight vector", ErrConfiguration)
	}

	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight #%d is %v", ErrConfiguration, i, w)
		}
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrConfiguration, sum)
	}

	s := &Sampler{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	// Scaled so the mean is exactly 1.
	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		s.prob[l] = scaled[l]
		s.alias[l] = g

		scaled[g] -= 1 - scaled[l]
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	// Leftovers on either side are floating-point drift; they keep their own column.
	for _, g := range large {
		s.prob[g] = 1
		s.alias[g] = g
	}
	for _, l := range small {
		s.prob[l] = 1
		s.alias[l] = l
	}

	return s, nil
}

// MustNew is like New but panics on invalid weights. Intended for
// package-level tables whose weights are compile-time constants.
func MustNew(weights []float64) *Sampler {
	s, err := New(weights)
	if err != nil {
		panic(err)
	}
	return s
}

// Sample returns an index in [0, Len()) drawn proportionally to the original
// weights. It consumes exactly one IntN and one Float64 draw from r.
func (s *Sampler) Sample(r Rand) int {
	i := r.IntN(len(s.prob))
	if r.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// Len returns the number of outcomes.
func (s *Sampler) Len() int { return len(s.prob) }

// Probabilities returns a copy of the per-column acceptance probabilities.
func (s *Sampler) Probabilities() []float64 { return slices.Clone(s.prob) }

// Aliases returns a copy of the per-column alias indices.
func (s *Sampler) Aliases() []int { return slices.Clone(s.alias) }
