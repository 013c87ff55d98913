package lazyseq

// pipe holds the state shared by operators that pull from a single upstream sequence.
// The index counts upstream elements pulled during the current iteration.
type pipe[T any] struct {
	source Sequence[T]
	index  int
	active bool
}

type whereSequence[T any] struct {
	pipe[T]
	filter PredicateFunc[T]
}

type selectSequence[T any, U any] struct {
	pipe[T]
	mapp MapperFunc[T, U]
}

type selectManySequence[T any, U any] struct {
	pipe[T]
	mapp  MapperFunc[T, Sequence[U]]
	inner Sequence[U]
}

type ofTypeSequence[T any, U any] struct {
	pipe[T]
}

type distinctSequence[T any, K comparable] struct {
	pipe[T]
	key  Function[T, K]
	seen map[K]struct{}
}

type defaultIfEmptySequence[T any] struct {
	pipe[T]
	value    T
	produced bool
	done     bool
}

type peekSequence[T any] struct {
	pipe[T]
	peek ConsumerFunc[T]
}

// Where returns a sequence that produces the elements of seq for which filter returns true.
func Where[T any](seq Sequence[T], filter Function[T, bool]) Sequence[T] {
	return WhereIndexed(seq, FuncPredicate(filter))
}

// WhereIndexed returns a sequence that calls filter for each element produced by seq, and only produces elements for which
// filter returns true.
// The index passed to filter counts the elements of seq, not the elements produced.
func WhereIndexed[T any](seq Sequence[T], filter PredicateFunc[T]) Sequence[T] {
	return &whereSequence[T]{
		pipe:   pipe[T]{source: seq},
		filter: filter,
	}
}

// Select returns a sequence that calls mapp for each element produced by seq, mapping it to type U.
func Select[T any, U any](seq Sequence[T], mapp Function[T, U]) Sequence[U] {
	return SelectIndexed(seq, FuncMapper(mapp))
}

// SelectIndexed returns a sequence that calls mapp for each element produced by seq, mapping it to type U.
func SelectIndexed[T any, U any](seq Sequence[T], mapp MapperFunc[T, U]) Sequence[U] {
	return &selectSequence[T, U]{
		pipe: pipe[T]{source: seq},
		mapp: mapp,
	}
}

// SelectMany returns a sequence that calls mapp for each element produced by seq, mapping it to an intermediate sequence
// of elements of type U.
// The new sequence produces all elements produced by the intermediate sequences, in order.
func SelectMany[T any, U any](seq Sequence[T], mapp Function[T, Sequence[U]]) Sequence[U] {
	return SelectManyIndexed(seq, FuncMapper(mapp))
}

// SelectManyIndexed is like SelectMany, but passes the index of each element of seq to mapp.
func SelectManyIndexed[T any, U any](seq Sequence[T], mapp MapperFunc[T, Sequence[U]]) Sequence[U] {
	return &selectManySequence[T, U]{
		pipe: pipe[T]{source: seq},
		mapp: mapp,
	}
}

// OfType returns a sequence that produces the elements of seq whose dynamic type is U.
func OfType[U any, T any](seq Sequence[T]) Sequence[U] {
	return &ofTypeSequence[T, U]{
		pipe: pipe[T]{source: seq},
	}
}

// Distinct returns a sequence that produces the elements of seq, in order, leaving out elements that have already been produced.
func Distinct[T comparable](seq Sequence[T]) Sequence[T] {
	return DistinctBy(seq, Identity[T]())
}

// DistinctBy returns a sequence that produces the elements of seq, in order, leaving out elements whose key has already
// been seen.
func DistinctBy[T any, K comparable](seq Sequence[T], key Function[T, K]) Sequence[T] {
	return &distinctSequence[T, K]{
		pipe: pipe[T]{source: seq},
		key:  key,
	}
}

// DefaultIfEmpty returns a sequence that produces the elements of seq, or value if seq does not produce any elements.
func DefaultIfEmpty[T any](seq Sequence[T], value T) Sequence[T] {
	return &defaultIfEmptySequence[T]{
		pipe:  pipe[T]{source: seq},
		value: value,
	}
}

// Peek returns a sequence that calls peek for each element produced by seq, in order, and produces the same elements.
func Peek[T any](seq Sequence[T], peek ConsumerFunc[T]) Sequence[T] {
	return &peekSequence[T]{
		pipe: pipe[T]{source: seq},
		peek: peek,
	}
}

// Active implements Sequence.
func (p *pipe[T]) Active() bool {
	return p.active
}

func (p *pipe[T]) begin() {
	Begin(p.source)

	p.index = 0
	p.active = true
}

func (p *pipe[T]) end() {
	halt(p.source)

	p.index = 0
	p.active = false
}

// pull returns the next upstream element and its index.
func (p *pipe[T]) pull() (T, int, bool) {
	elem, ok := Advance(p.source)
	if !ok {
		return elem, 0, false
	}

	index := p.index
	p.index++

	return elem, index, true
}

// Start implements Sequence.
func (s *whereSequence[T]) Start() {
	s.begin()
}

// Stop implements Sequence.
func (s *whereSequence[T]) Stop() {
	s.end()
}

// Next implements Sequence.
func (s *whereSequence[T]) Next() (T, bool) {
	for {
		elem, index, ok := s.pull()
		if !ok {
			return elem, false
		}

		if s.filter(elem, index) {
			return elem, true
		}
	}
}

// Start implements Sequence.
func (s *selectSequence[T, U]) Start() {
	s.begin()
}

// Stop implements Sequence.
func (s *selectSequence[T, U]) Stop() {
	s.end()
}

// Next implements Sequence.
func (s *selectSequence[T, U]) Next() (U, bool) {
	elem, index, ok := s.pull()
	if !ok {
		var zero U
		return zero, false
	}

	return s.mapp(elem, index), true
}

// Start implements Sequence.
func (s *selectManySequence[T, U]) Start() {
	s.begin()
	s.inner = nil
}

// Stop implements Sequence.
func (s *selectManySequence[T, U]) Stop() {
	if s.inner != nil {
		halt(s.inner)
		s.inner = nil
	}

	s.end()
}

// Next implements Sequence.
func (s *selectManySequence[T, U]) Next() (U, bool) {
	for {
		if s.inner != nil {
			if elem, ok := Advance(s.inner); ok {
				return elem, true
			}

			s.inner = nil
		}

		elem, index, ok := s.pull()
		if !ok {
			var zero U
			return zero, false
		}

		s.inner = s.mapp(elem, index)
		Begin(s.inner)
	}
}

// Start implements Sequence.
func (s *ofTypeSequence[T, U]) Start() {
	s.begin()
}

// Stop implements Sequence.
func (s *ofTypeSequence[T, U]) Stop() {
	s.end()
}

// Next implements Sequence.
func (s *ofTypeSequence[T, U]) Next() (U, bool) {
	for {
		elem, _, ok := s.pull()
		if !ok {
			var zero U
			return zero, false
		}

		if u, ok := any(elem).(U); ok {
			return u, true
		}
	}
}

// Start implements Sequence.
func (s *distinctSequence[T, K]) Start() {
	s.begin()
	s.seen = map[K]struct{}{}
}

// Stop implements Sequence.
func (s *distinctSequence[T, K]) Stop() {
	s.end()
	s.seen = nil
}

// Next implements Sequence.
func (s *distinctSequence[T, K]) Next() (T, bool) {
	for {
		elem, _, ok := s.pull()
		if !ok {
			return elem, false
		}

		key := s.key(elem)
		if _, ok := s.seen[key]; ok {
			continue
		}

		s.seen[key] = struct{}{}

		return elem, true
	}
}

// Start implements Sequence.
func (s *defaultIfEmptySequence[T]) Start() {
	s.begin()
	s.produced = false
	s.done = false
}

// Stop implements Sequence.
func (s *defaultIfEmptySequence[T]) Stop() {
	s.end()
	s.produced = false
	s.done = false
}

// Next implements Sequence.
func (s *defaultIfEmptySequence[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}

	elem, _, ok := s.pull()
	if ok {
		s.produced = true
		return elem, true
	}

	s.done = true

	if s.produced {
		return elem, false
	}

	s.produced = true

	return s.value, true
}

// Start implements Sequence.
func (s *peekSequence[T]) Start() {
	s.begin()
}

// Stop implements Sequence.
func (s *peekSequence[T]) Stop() {
	s.end()
}

// Next implements Sequence.
func (s *peekSequence[T]) Next() (T, bool) {
	elem, index, ok := s.pull()
	if !ok {
		return elem, false
	}

	s.peek(elem, index)

	return elem, true
}
