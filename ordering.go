package lazyseq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// OrderedSequence is a sequence that produces the elements of an upstream sequence in sorted order.
// Further sort keys can be added using ThenBy and ThenByDescending.
//
// When an iteration starts, the upstream sequence is consumed entirely. The sort is stable: elements with equal keys
// are produced in the order of the upstream sequence.
type OrderedSequence[T any] struct {
	source     Sequence[T]
	parent     *OrderedSequence[T]
	level      orderLevel[T]
	descending bool

	values []T
	order  []int
	pos    int
	active bool
}

// orderLevel is a single sort key of an OrderedSequence.
type orderLevel[T any] interface {
	// bind computes the key of every element of values, and returns a comparison of two elements by their index.
	bind(values []T) func(a int, b int) int
}

type keyLevel[T any, K constraints.Ordered] struct {
	key Function[T, K]
}

// Order returns a sequence that produces the elements of seq in ascending order.
func Order[T constraints.Ordered](seq Sequence[T]) *OrderedSequence[T] {
	return OrderBy(seq, Identity[T]())
}

// OrderDescending returns a sequence that produces the elements of seq in descending order.
func OrderDescending[T constraints.Ordered](seq Sequence[T]) *OrderedSequence[T] {
	return OrderByDescending(seq, Identity[T]())
}

// OrderBy returns a sequence that produces the elements of seq in ascending order of their key.
func OrderBy[T any, K constraints.Ordered](seq Sequence[T], key Function[T, K]) *OrderedSequence[T] {
	return &OrderedSequence[T]{
		source: seq,
		level:  keyLevel[T, K]{key: key},
	}
}

// OrderByDescending returns a sequence that produces the elements of seq in descending order of their key.
func OrderByDescending[T any, K constraints.Ordered](seq Sequence[T], key Function[T, K]) *OrderedSequence[T] {
	return &OrderedSequence[T]{
		source:     seq,
		level:      keyLevel[T, K]{key: key},
		descending: true,
	}
}

// ThenBy returns a sequence that orders elements with equal keys in seq in ascending order of key.
// seq itself is not modified.
func ThenBy[T any, K constraints.Ordered](seq *OrderedSequence[T], key Function[T, K]) *OrderedSequence[T] {
	return seq.then(keyLevel[T, K]{key: key}, false)
}

// ThenByDescending returns a sequence that orders elements with equal keys in seq in descending order of key.
// seq itself is not modified.
func ThenByDescending[T any, K constraints.Ordered](seq *OrderedSequence[T], key Function[T, K]) *OrderedSequence[T] {
	return seq.then(keyLevel[T, K]{key: key}, true)
}

func (s *OrderedSequence[T]) then(level orderLevel[T], descending bool) *OrderedSequence[T] {
	return &OrderedSequence[T]{
		source:     s.source,
		parent:     s,
		level:      level,
		descending: descending,
	}
}

// Active implements Sequence.
func (s *OrderedSequence[T]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *OrderedSequence[T]) Start() {
	values := ToSlice(s.source)

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, s.comparator(values))

	s.values = values
	s.order = order
	s.pos = 0
	s.active = true
}

// Stop implements Sequence.
func (s *OrderedSequence[T]) Stop() {
	s.values = nil
	s.order = nil
	s.pos = 0
	s.active = false
}

// Next implements Sequence.
func (s *OrderedSequence[T]) Next() (T, bool) {
	if s.pos == len(s.order) {
		var zero T
		return zero, false
	}

	index := s.pos
	if s.root().descending {
		index = len(s.order) - 1 - s.pos
	}

	s.pos++

	return s.values[s.order[index]], true
}

func (s *OrderedSequence[T]) root() *OrderedSequence[T] {
	node := s
	for node.parent != nil {
		node = node.parent
	}

	return node
}

// comparator returns a less function over element indexes that compares the keys of all levels, primary first.
//
// The primary direction is applied by walking the sorted indexes backwards. Every other level, and the final
// comparison of the upstream indexes, is inverted relative to the primary direction, so that after a backwards
// walk each level ends up in its own direction and equal elements keep their upstream order.
func (s *OrderedSequence[T]) comparator(values []T) func(a int, b int) bool {
	nodes := []*OrderedSequence[T]{}
	for node := s; node != nil; node = node.parent {
		nodes = append(nodes, node)
	}

	primaryDescending := nodes[len(nodes)-1].descending

	compares := make([]func(a int, b int) int, 0, len(nodes))
	inverted := make([]bool, 0, len(nodes))

	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]

		compares = append(compares, node.level.bind(values))
		inverted = append(inverted, node.parent != nil && node.descending != primaryDescending)
	}

	return func(a int, b int) bool {
		for i, compare := range compares {
			c := compare(a, b)
			if inverted[i] {
				c = -c
			}

			if c != 0 {
				return c < 0
			}
		}

		if primaryDescending {
			return a > b
		}

		return a < b
	}
}

func (l keyLevel[T, K]) bind(values []T) func(a int, b int) int {
	keys := make([]K, len(values))
	for i, elem := range values {
		keys[i] = l.key(elem)
	}

	return func(a int, b int) int {
		return compareOrdered(keys[a], keys[b])
	}
}

// compareOrdered returns -1, 0, or +1 depending on whether a is less than, equal to, or greater than b.
// A NaN is considered less than any non-NaN, and equal to another NaN.
func compareOrdered[K constraints.Ordered](a K, b K) int {
	aNaN := a != a //nolint:gocritic // only true for NaN
	bNaN := b != b //nolint:gocritic // only true for NaN

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || a < b:
		return -1
	case bNaN || a > b:
		return 1
	default:
		return 0
	}
}
