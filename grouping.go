package lazyseq

import "fmt"

// Grouping is a sequence of elements that share the same key.
// It can be iterated any number of times.
type Grouping[K comparable, V any] struct {
	key    K
	values []V
	pos    int
	active bool
}

// Lookup is a sequence of groupings, in the order in which their keys were first seen.
// Each key occurs exactly once.
type Lookup[K comparable, V any] struct {
	keys   []K
	groups map[K]*Grouping[K, V]
	pos    int
	active bool
}

type groupBySequence[T any, K comparable, V any] struct {
	source Sequence[T]
	key    Function[T, K]
	value  Function[T, V]
	lookup *Lookup[K, V]
}

type joinSequence[O any, I any, K comparable, R any] struct {
	pipe[O]
	inner    Sequence[I]
	outerKey Function[O, K]
	innerKey Function[I, K]
	result   func(O, I) R

	lookup  *Lookup[K, I]
	current O
	group   *Grouping[K, I]
	pos     int
}

type groupJoinSequence[O any, I any, K comparable, R any] struct {
	pipe[O]
	inner    Sequence[I]
	outerKey Function[O, K]
	innerKey Function[I, K]
	result   func(O, Sequence[I]) R

	lookup *Lookup[K, I]
}

// ToLookup consumes seq and returns a Lookup of its elements, grouped by key.
func ToLookup[T any, K comparable](seq Sequence[T], key Function[T, K]) *Lookup[K, T] {
	return ToLookupSelect(seq, key, Identity[T]())
}

// ToLookupSelect consumes seq and returns a Lookup of its elements, grouped by key and mapped using value.
// Within each group, values are in the order produced by seq.
func ToLookupSelect[T any, K comparable, V any](seq Sequence[T], key Function[T, K], value Function[T, V]) *Lookup[K, V] {
	lookup := &Lookup[K, V]{
		groups: map[K]*Grouping[K, V]{},
	}

	for elem := range Values(seq) {
		lookup.add(key(elem), value(elem))
	}

	return lookup
}

// GroupBy returns a sequence that produces the elements of seq grouped by key.
// When an iteration starts, seq is consumed entirely.
func GroupBy[T any, K comparable](seq Sequence[T], key Function[T, K]) Sequence[*Grouping[K, T]] {
	return GroupBySelect(seq, key, Identity[T]())
}

// GroupBySelect returns a sequence that produces the elements of seq grouped by key and mapped using value.
func GroupBySelect[T any, K comparable, V any](seq Sequence[T], key Function[T, K], value Function[T, V]) Sequence[*Grouping[K, V]] {
	return &groupBySequence[T, K, V]{
		source: seq,
		key:    key,
		value:  value,
	}
}

// GroupByResult returns a sequence that groups the elements of seq like GroupBySelect does, and calls result for each
// group.
func GroupByResult[T any, K comparable, V any, R any](seq Sequence[T], key Function[T, K], value Function[T, V],
	result func(key K, values Sequence[V]) R,
) Sequence[R] {
	return Select(GroupBySelect(seq, key, value), func(group *Grouping[K, V]) R {
		return result(group.Key(), group)
	})
}

// Join returns a sequence that calls result for each pair of elements of outer and inner that have equal keys.
// Pairs are produced in the order of outer, then in the order of inner. inner is consumed entirely when an iteration
// starts.
func Join[O any, I any, K comparable, R any](outer Sequence[O], inner Sequence[I], outerKey Function[O, K],
	innerKey Function[I, K], result func(O, I) R,
) Sequence[R] {
	return &joinSequence[O, I, K, R]{
		pipe:     pipe[O]{source: outer},
		inner:    inner,
		outerKey: outerKey,
		innerKey: innerKey,
		result:   result,
	}
}

// GroupJoin returns a sequence that calls result for each element of outer and the sequence of elements of inner that
// have an equal key. inner is consumed entirely when an iteration starts.
func GroupJoin[O any, I any, K comparable, R any](outer Sequence[O], inner Sequence[I], outerKey Function[O, K],
	innerKey Function[I, K], result func(O, Sequence[I]) R,
) Sequence[R] {
	return &groupJoinSequence[O, I, K, R]{
		pipe:     pipe[O]{source: outer},
		inner:    inner,
		outerKey: outerKey,
		innerKey: innerKey,
		result:   result,
	}
}

// Key returns the key shared by the elements of g.
func (g *Grouping[K, V]) Key() K {
	return g.key
}

// Len returns the number of elements of g.
func (g *Grouping[K, V]) Len() int {
	return len(g.values)
}

// At returns the element of g at index. It panics if index is out of range.
func (g *Grouping[K, V]) At(index int) V {
	if index < 0 || index >= len(g.values) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(g.values)))
	}

	return g.values[index]
}

// Values returns a copy of the elements of g.
func (g *Grouping[K, V]) Values() []V {
	values := make([]V, len(g.values))
	copy(values, g.values)

	return values
}

// clone returns a grouping over the same elements as g, with its own iteration state.
func (g *Grouping[K, V]) clone() *Grouping[K, V] {
	return &Grouping[K, V]{
		key:    g.key,
		values: g.values,
	}
}

// Active implements Sequence.
func (g *Grouping[K, V]) Active() bool {
	return g.active
}

// Start implements Sequence.
func (g *Grouping[K, V]) Start() {
	g.pos = 0
	g.active = true
}

// Stop implements Sequence.
func (g *Grouping[K, V]) Stop() {
	g.pos = 0
	g.active = false
}

// Next implements Sequence.
func (g *Grouping[K, V]) Next() (V, bool) {
	if g.pos == len(g.values) {
		var zero V
		return zero, false
	}

	value := g.values[g.pos]
	g.pos++

	return value, true
}

// Len returns the number of keys in l.
func (l *Lookup[K, V]) Len() int {
	return len(l.keys)
}

// Contains returns true if l has a grouping for key.
func (l *Lookup[K, V]) Contains(key K) bool {
	_, ok := l.groups[key]
	return ok
}

// Get returns the elements for key. If l has no grouping for key, it returns an empty sequence.
// Every call returns a new sequence that can be iterated independently of the others.
func (l *Lookup[K, V]) Get(key K) Sequence[V] {
	if group, ok := l.groups[key]; ok {
		return group.clone()
	}

	return Empty[V]()
}

func (l *Lookup[K, V]) add(key K, value V) {
	group, ok := l.groups[key]
	if !ok {
		group = &Grouping[K, V]{key: key}
		l.groups[key] = group
		l.keys = append(l.keys, key)
	}

	group.values = append(group.values, value)
}

// Active implements Sequence.
func (l *Lookup[K, V]) Active() bool {
	return l.active
}

// Start implements Sequence.
func (l *Lookup[K, V]) Start() {
	l.pos = 0
	l.active = true
}

// Stop implements Sequence.
func (l *Lookup[K, V]) Stop() {
	l.pos = 0
	l.active = false
}

// Next implements Sequence.
func (l *Lookup[K, V]) Next() (*Grouping[K, V], bool) {
	if l.pos == len(l.keys) {
		return nil, false
	}

	group := l.groups[l.keys[l.pos]]
	l.pos++

	return group, true
}

// Active implements Sequence.
func (s *groupBySequence[T, K, V]) Active() bool {
	return s.lookup != nil
}

// Start implements Sequence.
func (s *groupBySequence[T, K, V]) Start() {
	lookup := ToLookupSelect(s.source, s.key, s.value)
	Begin[*Grouping[K, V]](lookup)

	s.lookup = lookup
}

// Stop implements Sequence.
func (s *groupBySequence[T, K, V]) Stop() {
	s.lookup = nil
}

// Next implements Sequence.
func (s *groupBySequence[T, K, V]) Next() (*Grouping[K, V], bool) {
	return Advance[*Grouping[K, V]](s.lookup)
}

// Start implements Sequence.
func (s *joinSequence[O, I, K, R]) Start() {
	s.lookup = ToLookup(s.inner, s.innerKey)
	s.group = nil
	s.pos = 0
	s.begin()
}

// Stop implements Sequence.
func (s *joinSequence[O, I, K, R]) Stop() {
	var zero O

	s.end()
	s.lookup = nil
	s.current = zero
	s.group = nil
	s.pos = 0
}

// Next implements Sequence.
func (s *joinSequence[O, I, K, R]) Next() (R, bool) {
	for {
		if s.group != nil && s.pos < len(s.group.values) {
			value := s.group.values[s.pos]
			s.pos++

			return s.result(s.current, value), true
		}

		elem, _, ok := s.pull()
		if !ok {
			var zero R
			return zero, false
		}

		s.current = elem
		s.group = s.lookup.groups[s.outerKey(elem)]
		s.pos = 0
	}
}

// Start implements Sequence.
func (s *groupJoinSequence[O, I, K, R]) Start() {
	s.lookup = ToLookup(s.inner, s.innerKey)
	s.begin()
}

// Stop implements Sequence.
func (s *groupJoinSequence[O, I, K, R]) Stop() {
	s.end()
	s.lookup = nil
}

// Next implements Sequence.
func (s *groupJoinSequence[O, I, K, R]) Next() (R, bool) {
	elem, _, ok := s.pull()
	if !ok {
		var zero R
		return zero, false
	}

	return s.result(elem, s.lookup.Get(s.outerKey(elem))), true
}
