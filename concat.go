package lazyseq

type concatSequence[T any] struct {
	source Sequence[T]
	after  Sequence[T]
	second bool
	active bool
}

type apPrependSequence[T any] struct {
	pipe[T]
	value         T
	prepend       bool
	valueReturned bool
	finished      bool
}

type zipSequence[T any, U any, R any] struct {
	first  Sequence[T]
	second Sequence[U]
	result func(T, U) R
	active bool
}

// Concat returns a sequence that produces the elements of source, followed by the elements of after.
func Concat[T any](source Sequence[T], after Sequence[T]) Sequence[T] {
	return &concatSequence[T]{
		source: source,
		after:  after,
	}
}

// Append returns a sequence that produces the elements of seq, followed by value.
func Append[T any](seq Sequence[T], value T) Sequence[T] {
	return &apPrependSequence[T]{
		pipe:  pipe[T]{source: seq},
		value: value,
	}
}

// Prepend returns a sequence that produces value, followed by the elements of seq.
func Prepend[T any](seq Sequence[T], value T) Sequence[T] {
	return &apPrependSequence[T]{
		pipe:    pipe[T]{source: seq},
		value:   value,
		prepend: true,
	}
}

// Zip returns a sequence that produces pairs of elements of first and second, in order.
// The new sequence ends as soon as either first or second ends.
func Zip[T any, U any](first Sequence[T], second Sequence[U]) Sequence[Pair[T, U]] {
	return ZipWith(first, second, func(a T, b U) Pair[T, U] {
		return Pair[T, U]{First: a, Second: b}
	})
}

// ZipWith returns a sequence that calls result for each pair of elements of first and second, in order.
// The new sequence ends as soon as either first or second ends. If first ends, second is not pulled.
func ZipWith[T any, U any, R any](first Sequence[T], second Sequence[U], result func(T, U) R) Sequence[R] {
	return &zipSequence[T, U, R]{
		first:  first,
		second: second,
		result: result,
	}
}

// Active implements Sequence.
func (s *concatSequence[T]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *concatSequence[T]) Start() {
	Begin(s.source)

	s.second = false
	s.active = true
}

// Stop implements Sequence.
func (s *concatSequence[T]) Stop() {
	halt(s.source)
	halt(s.after)

	s.second = false
	s.active = false
}

// Next implements Sequence.
func (s *concatSequence[T]) Next() (T, bool) {
	if !s.second {
		if elem, ok := Advance(s.source); ok {
			return elem, true
		}

		s.second = true
		Begin(s.after)
	}

	return Advance(s.after)
}

// Start implements Sequence.
func (s *apPrependSequence[T]) Start() {
	s.begin()
	s.valueReturned = false
	s.finished = false
}

// Stop implements Sequence.
func (s *apPrependSequence[T]) Stop() {
	s.end()
	s.valueReturned = false
	s.finished = false
}

// Next implements Sequence.
func (s *apPrependSequence[T]) Next() (T, bool) {
	if s.prepend && !s.valueReturned {
		s.valueReturned = true
		return s.value, true
	}

	if s.finished {
		var zero T
		return zero, false
	}

	elem, _, ok := s.pull()
	if ok {
		return elem, true
	}

	s.finished = true

	if !s.prepend && !s.valueReturned {
		s.valueReturned = true
		return s.value, true
	}

	return elem, false
}

// Active implements Sequence.
func (s *zipSequence[T, U, R]) Active() bool {
	return s.active
}

// Start implements Sequence.
func (s *zipSequence[T, U, R]) Start() {
	Begin(s.first)
	Begin(s.second)

	s.active = true
}

// Stop implements Sequence.
func (s *zipSequence[T, U, R]) Stop() {
	halt(s.first)
	halt(s.second)

	s.active = false
}

// Next implements Sequence.
func (s *zipSequence[T, U, R]) Next() (R, bool) {
	var zero R

	a, ok := Advance(s.first)
	if !ok {
		return zero, false
	}

	b, ok := Advance(s.second)
	if !ok {
		return zero, false
	}

	return s.result(a, b), true
}
