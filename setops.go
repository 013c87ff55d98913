package lazyseq

type unionSequence[T any, K comparable] struct {
	first    Sequence[T]
	second   Sequence[T]
	key      Function[T, K]
	seen     map[K]struct{}
	isSecond bool
}

// membershipSequence filters its upstream by the keys of a target sequence,
// keeping elements that are in the target (Intersect) or that are not (Except).
type membershipSequence[T any, K comparable] struct {
	pipe[T]
	target  Sequence[T]
	key     Function[T, K]
	include bool
	set     map[K]struct{}
}

// Union returns a sequence that produces the distinct elements of first, followed by the distinct elements of second
// that were not produced from first.
func Union[T comparable](first Sequence[T], second Sequence[T]) Sequence[T] {
	return UnionBy(first, second, Identity[T]())
}

// UnionBy is like Union, but compares elements by their key.
func UnionBy[T any, K comparable](first Sequence[T], second Sequence[T], key Function[T, K]) Sequence[T] {
	return &unionSequence[T, K]{
		first:  first,
		second: second,
		key:    key,
	}
}

// Except returns a sequence that produces the elements of source that are not produced by target.
// target is consumed entirely when an iteration starts.
func Except[T comparable](source Sequence[T], target Sequence[T]) Sequence[T] {
	return ExceptBy(source, target, Identity[T]())
}

// ExceptBy is like Except, but compares elements by their key.
func ExceptBy[T any, K comparable](source Sequence[T], target Sequence[T], key Function[T, K]) Sequence[T] {
	return &membershipSequence[T, K]{
		pipe:   pipe[T]{source: source},
		target: target,
		key:    key,
	}
}

// Intersect returns a sequence that produces the elements of source that are also produced by target.
// target is consumed entirely when an iteration starts.
func Intersect[T comparable](source Sequence[T], target Sequence[T]) Sequence[T] {
	return IntersectBy(source, target, Identity[T]())
}

// IntersectBy is like Intersect, but compares elements by their key.
func IntersectBy[T any, K comparable](source Sequence[T], target Sequence[T], key Function[T, K]) Sequence[T] {
	return &membershipSequence[T, K]{
		pipe:    pipe[T]{source: source},
		target:  target,
		key:     key,
		include: true,
	}
}

// Active implements Sequence.
func (s *unionSequence[T, K]) Active() bool {
	return s.seen != nil
}

// Start implements Sequence.
func (s *unionSequence[T, K]) Start() {
	Begin(s.first)

	s.seen = map[K]struct{}{}
	s.isSecond = false
}

// Stop implements Sequence.
func (s *unionSequence[T, K]) Stop() {
	halt(s.first)
	halt(s.second)

	s.seen = nil
	s.isSecond = false
}

// Next implements Sequence.
func (s *unionSequence[T, K]) Next() (T, bool) {
	for {
		current := s.first
		if s.isSecond {
			current = s.second
		}

		elem, ok := Advance(current)
		if !ok {
			if s.isSecond {
				return elem, false
			}

			s.isSecond = true
			Begin(s.second)

			continue
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
func (s *membershipSequence[T, K]) Start() {
	set := map[K]struct{}{}
	for elem := range Values(s.target) {
		set[s.key(elem)] = struct{}{}
	}

	s.set = set
	s.begin()
}

// Stop implements Sequence.
func (s *membershipSequence[T, K]) Stop() {
	s.end()
	s.set = nil
}

// Next implements Sequence.
func (s *membershipSequence[T, K]) Next() (T, bool) {
	for {
		elem, _, ok := s.pull()
		if !ok {
			return elem, false
		}

		if _, ok := s.set[s.key(elem)]; ok == s.include {
			return elem, true
		}
	}
}
