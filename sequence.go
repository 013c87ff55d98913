package lazyseq

import "iter"

// Sequence is a lazily evaluated, restartable source of elements.
//
// Implementations are state machines driven by Begin and Advance. Start prepares a new iteration
// (and usually starts upstream sequences), Next produces the next element or reports exhaustion by
// returning false, and Stop resets all iteration-local state so that the sequence can be started again.
// Active reports whether an iteration is in progress.
//
// A Sequence is not safe for concurrent iteration. Starting a new iteration while one is in progress
// resets the sequence.
type Sequence[T any] interface {
	// Active returns true if the sequence is in the middle of an iteration.
	Active() bool

	// Start begins a new iteration.
	Start()

	// Stop ends the current iteration and releases all iteration-local state.
	// Stop must be safe to call on a sequence that is not active.
	Stop()

	// Next returns the next element, or false if the sequence is exhausted.
	Next() (T, bool)
}

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type MapperFunc[T any, U any] func(elem T, index int) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type PredicateFunc[T any] func(elem T, index int) bool

// KeyValue is an entry of a map.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Pair holds two elements produced side by side.
type Pair[T any, U any] struct {
	First  T
	Second U
}

// Begin starts a new iteration of seq. If seq is already active, it is stopped first.
func Begin[T any](seq Sequence[T]) {
	halt(seq)
	seq.Start()
}

// Advance returns the next element of seq, starting seq first if it is not active.
// When seq is exhausted, it is stopped and Advance returns false.
// If seq panics, it is stopped before the panic continues.
func Advance[T any](seq Sequence[T]) (elem T, ok bool) {
	defer func() {
		if !ok {
			halt(seq)
		}
	}()

	if !seq.Active() {
		seq.Start()
	}

	return seq.Next()
}

// Values returns an iterator over the elements of seq, for use with range.
// Each call of the iterator starts a new iteration of seq. Breaking out of the loop stops seq.
func Values[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		Begin(seq)
		defer halt(seq)

		for {
			elem, ok := Advance(seq)
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ int) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(elem T, _ int) bool {
		return pred(elem)
	}
}

// Identity returns a function that returns the same element it receives.
func Identity[T any]() Function[T, T] {
	return func(elem T) T {
		return elem
	}
}

// halt stops seq if it is active.
func halt[T any](seq Sequence[T]) {
	if seq.Active() {
		seq.Stop()
	}
}
