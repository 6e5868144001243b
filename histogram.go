package tstep

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/montanaflynn/stats"
)

// Histogram accumulates value->duration weight and exposes Mean and
// Normalized over the accumulated buckets. Every Number is naturally a
// legal, orderable Go map key, so the fast path buckets directly on V.
type Histogram[V Number] struct {
	weights map[V]float64
	total   float64
}

// NewHistogram returns an empty weight accumulator.
func NewHistogram[V Number]() *Histogram[V] {
	return &Histogram[V]{weights: make(map[V]float64)}
}

// Add accumulates weight under bucket v.
func (h *Histogram[V]) Add(v V, weight float64) {
	h.weights[v] += weight
	h.total += weight
}

// Normalized returns each bucket's share of the total weight, keyed by a
// string rendering of the bucket value. Returns an empty map if no weight
// has been added.
func (h *Histogram[V]) Normalized() map[string]float64 {
	out := make(map[string]float64, len(h.weights))
	if h.total == 0 {
		return out
	}
	for v, w := range h.weights {
		out[fmt.Sprintf("%v", v)] = w / h.total
	}
	return out
}

// Mean returns the weight-weighted average bucket value. Returns
// ErrEmptyFloating if no weight was ever added.
func (h *Histogram[V]) Mean() (float64, error) {
	if h.total == 0 {
		return 0, fmt.Errorf("%w: histogram has no weight", ErrEmptyFloating)
	}
	var sum float64
	for v, w := range h.weights {
		sum += float64(v) * w
	}
	return sum / h.total, nil
}

// Samples returns the buckets expanded into a weight-proportional sample
// array, letting callers run a montanaflynn/stats reduction (Percentile,
// StandardDeviation, ...) over the distribution the way stats.go's
// PercCleaning/ZscoreCleaning do over a raw measurement array.
func (h *Histogram[V]) Samples(resolution int) stats.Float64Data {
	if h.total == 0 || resolution <= 0 {
		return nil
	}
	out := make(stats.Float64Data, 0, resolution)
	for v, w := range h.weights {
		n := int((w / h.total) * float64(resolution))
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, float64(v))
		}
	}
	return out
}

// HashHistogram is a hash-keyed fallback for values that are not mutually
// orderable. It is used when V cannot safely serve as a Go map key
// directly — any-typed values drawn from a MergeState, where the dynamic
// type underneath may itself be uncomparable (e.g. a slice), would panic
// a plain map[V]float64. HashHistogram instead keys buckets by the xxhash
// of a stable string rendering of v.
type HashHistogram[V any] struct {
	buckets map[uint64]*hashBucket[V]
	total   float64
}

type hashBucket[V any] struct {
	sample V
	weight float64
}

// NewHashHistogram returns an empty hash-keyed accumulator.
func NewHashHistogram[V any]() *HashHistogram[V] {
	return &HashHistogram[V]{buckets: make(map[uint64]*hashBucket[V])}
}

// Add accumulates weight under the bucket identified by v's string form.
func (h *HashHistogram[V]) Add(v V, weight float64) {
	key := xxhash.Sum64String(fmt.Sprintf("%v", v))
	b, ok := h.buckets[key]
	if !ok {
		b = &hashBucket[V]{sample: v}
		h.buckets[key] = b
	}
	b.weight += weight
	h.total += weight
}

// Normalized returns each bucket's share of total weight, keyed by the
// same string rendering used to hash it.
func (h *HashHistogram[V]) Normalized() map[string]float64 {
	out := make(map[string]float64, len(h.buckets))
	if h.total == 0 {
		return out
	}
	for _, b := range h.buckets {
		out[fmt.Sprintf("%v", b.sample)] = b.weight / h.total
	}
	return out
}

// Buckets returns (sample value, weight) pairs sorted by descending
// weight, for callers that want the mode or a ranked summary rather than
// a numeric mean (which HashHistogram, unlike Histogram, cannot compute
// in general since V need not be a Number).
func (h *HashHistogram[V]) Buckets() []struct {
	Value  V
	Weight float64
} {
	out := make([]struct {
		Value  V
		Weight float64
	}, 0, len(h.buckets))
	for _, b := range h.buckets {
		out = append(out, struct {
			Value  V
			Weight float64
		}{Value: b.sample, Weight: b.weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}
