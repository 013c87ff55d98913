package lazyseq

import (
	"iter"

	"golang.org/x/exp/maps"
)

type sliceSequence[T any] struct {
	slice  []T
	pos    int
	active bool
}

type mapSequence[K comparable, V any] struct {
	mapp   map[K]V
	keys   []K
	pos    int
	active bool
}

type generatorSequence[T any] struct {
	gen  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

type emptySequence[T any] struct{}

type rangeSequence struct {
	start  int
	count  int
	pos    int
	active bool
}

type repeatSequence[T any] struct {
	value  T
	count  int
	pos    int
	active bool
}

// From returns a sequence that produces the given values, in order.
func From[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromSlice returns a sequence that produces the elements of slice, in order.
// The slice is not copied, each iteration observes its current contents.
func FromSlice[T any](slice []T) Sequence[T] {
	return &sliceSequence[T]{
		slice: slice,
	}
}

// FromMap returns a sequence that produces the entries of mapp.
// The keys are captured when an iteration starts, the values are read when they are produced.
// The order of entries is undefined.
func FromMap[K comparable, V any](mapp map[K]V) Sequence[KeyValue[K, V]] {
	return &mapSequence[K, V]{
		mapp: mapp,
	}
}

// FromGenerator returns a sequence that produces the elements yielded by gen.
// Every iteration calls gen anew, and gen is resumed exactly once per element requested.
// An iteration that is abandoned must be stopped to release gen.
func FromGenerator[T any](gen iter.Seq[T]) Sequence[T] {
	return &generatorSequence[T]{
		gen: gen,
	}
}

// Empty returns a sequence that produces no elements.
func Empty[T any]() Sequence[T] {
	return emptySequence[T]{}
}

// Range returns a sequence that produces count consecutive integers, beginning with start.
// It panics if count is negative.
func Range(start int, count int) Sequence[int] {
	checkCount("count", count)

	if count == 0 {
		return Empty[int]()
	}

	return &rangeSequence{
		start: start,
		count: count,
	}
}

// Repeat returns a sequence that produces value count times.
// It panics if count is negative.
func Repeat[T any](value T, count int) Sequence[T] {
	checkCount("count", count)

	if count == 0 {
		return Empty[T]()
	}

	return &repeatSequence[T]{
		value: value,
		count: count,
	}
}

// Active implements Sequence.
func (s *sliceSequence[T]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *sliceSequence[T]) Start() {
	s.pos = 0
	s.active = true
}

// Stop implements Sequence.
func (s *sliceSequence[T]) Stop() {
	s.pos = 0
	s.active = false
}

// Next implements Sequence.
func (s *sliceSequence[T]) Next() (T, bool) {
	if s.pos >= len(s.slice) {
		var zero T
		return zero, false
	}

	elem := s.slice[s.pos]
	s.pos++

	return elem, true
}

// Active implements Sequence.
func (s *mapSequence[K, V]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *mapSequence[K, V]) Start() {
	s.keys = maps.Keys(s.mapp)
	s.pos = 0
	s.active = true
}

// Stop implements Sequence.
func (s *mapSequence[K, V]) Stop() {
	s.keys = nil
	s.pos = 0
	s.active = false
}

// Next implements Sequence.
func (s *mapSequence[K, V]) Next() (KeyValue[K, V], bool) {
	for s.pos < len(s.keys) {
		key := s.keys[s.pos]
		s.pos++

		// skip keys deleted since the iteration started
		value, ok := s.mapp[key]
		if !ok {
			continue
		}

		return KeyValue[K, V]{Key: key, Value: value}, true
	}

	return KeyValue[K, V]{}, false
}

// Active implements Sequence.
func (s *generatorSequence[T]) Active() bool {
	return s.next != nil
}

// Start implements Sequence.
func (s *generatorSequence[T]) Start() {
	s.next, s.stop = iter.Pull(s.gen)
}

// Stop implements Sequence.
func (s *generatorSequence[T]) Stop() {
	if s.stop != nil {
		s.stop()
	}

	s.next = nil
	s.stop = nil
}

// Next implements Sequence.
func (s *generatorSequence[T]) Next() (T, bool) {
	return s.next()
}

// Active implements Sequence.
func (emptySequence[T]) Active() bool {
	return false
}

// Start implements Sequence.
func (emptySequence[T]) Start() {}

// Stop implements Sequence.
func (emptySequence[T]) Stop() {}

// Next implements Sequence.
func (emptySequence[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Active implements Sequence.
func (s *rangeSequence) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *rangeSequence) Start() {
	s.pos = 0
	s.active = true
}

// Stop implements Sequence.
func (s *rangeSequence) Stop() {
	s.pos = 0
	s.active = false
}

// Next implements Sequence.
func (s *rangeSequence) Next() (int, bool) {
	if s.pos == s.count {
		return 0, false
	}

	elem := s.start + s.pos
	s.pos++

	return elem, true
}

// Active implements Sequence.
func (s *repeatSequence[T]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *repeatSequence[T]) Start() {
	s.pos = 0
	s.active = true
}

// Stop implements Sequence.
func (s *repeatSequence[T]) Stop() {
	s.pos = 0
	s.active = false
}

// Next implements Sequence.
func (s *repeatSequence[T]) Next() (T, bool) {
	if s.pos == s.count {
		var zero T
		return zero, false
	}

	s.pos++

	return s.value, true
}
