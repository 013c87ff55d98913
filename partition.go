package lazyseq

type takeSequence[T any] struct {
	pipe[T]
	count int
	taken int
}

type skipSequence[T any] struct {
	pipe[T]
	count   int
	skipped bool
}

type takeWhileSequence[T any] struct {
	pipe[T]
	pred PredicateFunc[T]
	done bool
}

type skipWhileSequence[T any] struct {
	pipe[T]
	pred     PredicateFunc[T]
	skipping bool
}

type takeLastSequence[T any] struct {
	source Sequence[T]
	count  int
	buf    *ring[T]
}

type skipLastSequence[T any] struct {
	pipe[T]
	count int
	buf   *ring[T]
}

// Take returns a sequence that produces the same elements as seq, in order, up to count elements.
// Once count elements have been produced, seq is not pulled again.
func Take[T any](seq Sequence[T], count int) Sequence[T] {
	if count <= 0 {
		return Empty[T]()
	}

	return &takeSequence[T]{
		pipe:  pipe[T]{source: seq},
		count: count,
	}
}

// Skip returns a sequence that produces the same elements as seq, in order, skipping the first count elements.
// If count is 0 or negative, seq itself is returned.
func Skip[T any](seq Sequence[T], count int) Sequence[T] {
	if count <= 0 {
		return seq
	}

	return &skipSequence[T]{
		pipe:  pipe[T]{source: seq},
		count: count,
	}
}

// TakeWhile returns a sequence that produces the elements of seq, in order, as long as pred returns true.
func TakeWhile[T any](seq Sequence[T], pred Function[T, bool]) Sequence[T] {
	return TakeWhileIndexed(seq, FuncPredicate(pred))
}

// TakeWhileIndexed returns a sequence that produces the elements of seq, in order, as long as pred returns true.
// The element for which pred first returns false is not produced, and seq is not pulled after it.
func TakeWhileIndexed[T any](seq Sequence[T], pred PredicateFunc[T]) Sequence[T] {
	return &takeWhileSequence[T]{
		pipe: pipe[T]{source: seq},
		pred: pred,
	}
}

// SkipWhile returns a sequence that skips the elements of seq as long as pred returns true, and then produces the remaining
// elements.
func SkipWhile[T any](seq Sequence[T], pred Function[T, bool]) Sequence[T] {
	return SkipWhileIndexed(seq, FuncPredicate(pred))
}

// SkipWhileIndexed is like SkipWhile, but passes the index of each element to pred.
func SkipWhileIndexed[T any](seq Sequence[T], pred PredicateFunc[T]) Sequence[T] {
	return &skipWhileSequence[T]{
		pipe: pipe[T]{source: seq},
		pred: pred,
	}
}

// TakeLast returns a sequence that produces the last count elements of seq, in order.
// When an iteration starts, seq is consumed entirely, keeping at most count elements in memory.
// If count <= 0, seq is never consumed.
func TakeLast[T any](seq Sequence[T], count int) Sequence[T] {
	if count <= 0 {
		return Empty[T]()
	}

	return &takeLastSequence[T]{
		source: seq,
		count:  count,
	}
}

// SkipLast returns a sequence that produces the elements of seq, in order, leaving out the last count elements.
// It stays count elements behind seq. If count is 0 or negative, seq itself is returned.
func SkipLast[T any](seq Sequence[T], count int) Sequence[T] {
	if count <= 0 {
		return seq
	}

	return &skipLastSequence[T]{
		pipe:  pipe[T]{source: seq},
		count: count,
	}
}

// Start implements Sequence.
func (s *takeSequence[T]) Start() {
	s.begin()
	s.taken = 0
}

// Stop implements Sequence.
func (s *takeSequence[T]) Stop() {
	s.end()
	s.taken = 0
}

// Next implements Sequence.
func (s *takeSequence[T]) Next() (T, bool) {
	if s.taken == s.count {
		var zero T
		return zero, false
	}

	elem, _, ok := s.pull()
	if !ok {
		return elem, false
	}

	s.taken++

	return elem, true
}

// Start implements Sequence.
func (s *skipSequence[T]) Start() {
	s.begin()
	s.skipped = false
}

// Stop implements Sequence.
func (s *skipSequence[T]) Stop() {
	s.end()
	s.skipped = false
}

// Next implements Sequence.
func (s *skipSequence[T]) Next() (T, bool) {
	if !s.skipped {
		s.skipped = true

		for i := 0; i < s.count; i++ {
			if elem, _, ok := s.pull(); !ok {
				return elem, false
			}
		}
	}

	elem, _, ok := s.pull()

	return elem, ok
}

// Start implements Sequence.
func (s *takeWhileSequence[T]) Start() {
	s.begin()
	s.done = false
}

// Stop implements Sequence.
func (s *takeWhileSequence[T]) Stop() {
	s.end()
	s.done = false
}

// Next implements Sequence.
func (s *takeWhileSequence[T]) Next() (T, bool) {
	var zero T

	if s.done {
		return zero, false
	}

	elem, index, ok := s.pull()
	if !ok {
		s.done = true
		return zero, false
	}

	if !s.pred(elem, index) {
		s.done = true
		return zero, false
	}

	return elem, true
}

// Start implements Sequence.
func (s *skipWhileSequence[T]) Start() {
	s.begin()
	s.skipping = true
}

// Stop implements Sequence.
func (s *skipWhileSequence[T]) Stop() {
	s.end()
	s.skipping = true
}

// Next implements Sequence.
func (s *skipWhileSequence[T]) Next() (T, bool) {
	for {
		elem, index, ok := s.pull()
		if !ok {
			return elem, false
		}

		if s.skipping && s.pred(elem, index) {
			continue
		}

		s.skipping = false

		return elem, true
	}
}

// Active implements Sequence.
func (s *takeLastSequence[T]) Active() bool {
	return s.buf != nil
}

// Start implements Sequence.
func (s *takeLastSequence[T]) Start() {
	buf := newRing[T](s.count)

	for elem := range Values(s.source) {
		buf.push(elem)
	}

	s.buf = buf
}

// Stop implements Sequence.
func (s *takeLastSequence[T]) Stop() {
	s.buf = nil
}

// Next implements Sequence.
func (s *takeLastSequence[T]) Next() (T, bool) {
	return s.buf.shift()
}

// Start implements Sequence.
func (s *skipLastSequence[T]) Start() {
	s.begin()
	s.buf = newRing[T](s.count)
}

// Stop implements Sequence.
func (s *skipLastSequence[T]) Stop() {
	s.end()
	s.buf = nil
}

// Next implements Sequence.
func (s *skipLastSequence[T]) Next() (T, bool) {
	for {
		elem, _, ok := s.pull()
		if !ok {
			return elem, false
		}

		if oldest, evicted := s.buf.push(elem); evicted {
			return oldest, true
		}
	}
}
