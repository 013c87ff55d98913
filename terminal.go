package lazyseq

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type ConsumerFunc[T any] func(elem T, index int)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type AccumulatorFunc[T any, A any] func(elem T, index int, acc A) A

// Number is a type that can be summed and averaged.
type Number interface {
	constraints.Integer | constraints.Float
}

// Each calls each for each element produced by seq.
func Each[T any](seq Sequence[T], each ConsumerFunc[T]) {
	index := 0

	for elem := range Values(seq) {
		each(elem, index)
		index++
	}
}

// Reduce calls reduce for each element produced by seq, folding it into accumulator acc, returning the final accumulator.
func Reduce[T any, A any](seq Sequence[T], acc A, reduce AccumulatorFunc[T, A]) A {
	Each(seq, func(elem T, index int) {
		acc = reduce(elem, index, acc)
	})

	return acc
}

// ReduceResult is like Reduce, but calls result with the final accumulator and returns its result.
func ReduceResult[T any, A any, R any](seq Sequence[T], acc A, reduce AccumulatorFunc[T, A],
	result Function[A, R],
) R {
	return result(Reduce(seq, acc, reduce))
}

// Count returns the number of elements produced by seq.
func Count[T any](seq Sequence[T]) int {
	count := 0

	for range Values(seq) {
		count++
	}

	return count
}

// CountMatch returns the number of elements produced by seq for which pred returns true.
func CountMatch[T any](seq Sequence[T], pred Function[T, bool]) int {
	return Count(Where(seq, pred))
}

// Any returns true if seq produces at least one element. It pulls at most one element.
func Any[T any](seq Sequence[T]) bool {
	for range Values(seq) {
		return true
	}

	return false
}

// AnyMatch returns true as soon as pred returns true for an element produced by seq, that is, an element matches.
func AnyMatch[T any](seq Sequence[T], pred Function[T, bool]) bool {
	return Any(Where(seq, pred))
}

// AllMatch returns true if pred returns true for all elements produced by seq, that is, all elements match.
// It returns false as soon as an element does not match.
func AllMatch[T any](seq Sequence[T], pred Function[T, bool]) bool {
	for elem := range Values(seq) {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Contains returns true as soon as seq produces an element equal to value.
func Contains[T comparable](seq Sequence[T], value T) bool {
	return AnyMatch(seq, func(elem T) bool {
		return elem == value
	})
}

// SequenceEqual returns true if a and b produce equal elements, in the same order, and the same number of them.
func SequenceEqual[T comparable](a Sequence[T], b Sequence[T]) bool {
	Begin(a)
	defer halt(a)

	Begin(b)
	defer halt(b)

	for {
		elemA, okA := Advance(a)
		elemB, okB := Advance(b)

		if okA != okB || elemA != elemB {
			return false
		}

		if !okA {
			return true
		}
	}
}

// Sum returns the sum of the elements produced by seq. It returns 0 for an empty sequence.
func Sum[T Number](seq Sequence[T]) T {
	return Reduce(seq, T(0), func(elem T, _ int, acc T) T {
		return acc + elem
	})
}

// Average returns the arithmetic mean of the elements produced by seq.
// It returns ErrNoElements if seq does not produce any elements.
func Average[T Number](seq Sequence[T]) (float64, error) {
	sum := 0.0
	count := 0

	for elem := range Values(seq) {
		sum += float64(elem)
		count++
	}

	if count == 0 {
		return 0, ErrNoElements
	}

	return sum / float64(count), nil
}

// Min returns the smallest element produced by seq.
// It returns ErrNoElements if seq does not produce any elements.
func Min[T constraints.Ordered](seq Sequence[T]) (T, error) {
	return MinBy(seq, Identity[T]())
}

// Max returns the largest element produced by seq.
// It returns ErrNoElements if seq does not produce any elements.
func Max[T constraints.Ordered](seq Sequence[T]) (T, error) {
	return MaxBy(seq, Identity[T]())
}

// MinBy returns the first element produced by seq with the smallest key.
// It returns ErrNoElements if seq does not produce any elements.
func MinBy[T any, K constraints.Ordered](seq Sequence[T], key Function[T, K]) (T, error) {
	return extremeBy(seq, key, -1)
}

// MaxBy returns the first element produced by seq with the largest key.
// It returns ErrNoElements if seq does not produce any elements.
func MaxBy[T any, K constraints.Ordered](seq Sequence[T], key Function[T, K]) (T, error) {
	return extremeBy(seq, key, 1)
}

// extremeBy returns the first element whose key compares to all others with the sign of want.
func extremeBy[T any, K constraints.Ordered](seq Sequence[T], key Function[T, K], want int) (T, error) {
	var (
		result    T
		resultKey K
		found     bool
	)

	for elem := range Values(seq) {
		elemKey := key(elem)

		if !found || compareOrdered(elemKey, resultKey) == want {
			result = elem
			resultKey = elemKey
			found = true
		}
	}

	if !found {
		return result, ErrNoElements
	}

	return result, nil
}

// First returns the first element produced by seq.
// It returns ErrNoElements if seq does not produce any elements.
func First[T any](seq Sequence[T]) (T, error) {
	for elem := range Values(seq) {
		return elem, nil
	}

	var zero T

	return zero, ErrNoElements
}

// FirstWhere returns the first element produced by seq for which pred returns true.
// It returns ErrNoElements if no element matches.
func FirstWhere[T any](seq Sequence[T], pred Function[T, bool]) (T, error) {
	return First(Where(seq, pred))
}

// FirstOrDefault returns the first element produced by seq, or def if seq does not produce any elements.
func FirstOrDefault[T any](seq Sequence[T], def T) T {
	elem, err := First(seq)
	if err != nil {
		return def
	}

	return elem
}

// Last returns the last element produced by seq.
// It returns ErrNoElements if seq does not produce any elements.
func Last[T any](seq Sequence[T]) (T, error) {
	var (
		last  T
		found bool
	)

	for elem := range Values(seq) {
		last = elem
		found = true
	}

	if !found {
		return last, ErrNoElements
	}

	return last, nil
}

// LastWhere returns the last element produced by seq for which pred returns true.
// It returns ErrNoElements if no element matches.
func LastWhere[T any](seq Sequence[T], pred Function[T, bool]) (T, error) {
	return Last(Where(seq, pred))
}

// LastOrDefault returns the last element produced by seq, or def if seq does not produce any elements.
func LastOrDefault[T any](seq Sequence[T], def T) T {
	elem, err := Last(seq)
	if err != nil {
		return def
	}

	return elem
}

// Single returns the only element produced by seq.
// It returns ErrNoElements if seq does not produce any elements, and ErrMoreThanOneElement if it produces more than one.
// It pulls at most two elements.
func Single[T any](seq Sequence[T]) (T, error) {
	var (
		single T
		found  bool
	)

	for elem := range Values(seq) {
		if found {
			var zero T
			return zero, ErrMoreThanOneElement
		}

		single = elem
		found = true
	}

	if !found {
		return single, ErrNoElements
	}

	return single, nil
}

// SingleWhere returns the only element produced by seq for which pred returns true.
// It returns ErrNoElements if no element matches, and ErrMoreThanOneElement if more than one element matches.
func SingleWhere[T any](seq Sequence[T], pred Function[T, bool]) (T, error) {
	return Single(Where(seq, pred))
}

// SingleOrDefault returns the only element produced by seq, or def if seq does not produce any elements.
// It returns ErrMoreThanOneElement if seq produces more than one element.
func SingleOrDefault[T any](seq Sequence[T], def T) (T, error) {
	elem, err := Single(seq)
	if errors.Is(err, ErrNoElements) {
		return def, nil
	}

	return elem, err
}

// ElementAt returns the element produced by seq at index.
// It returns an error wrapping ErrInvalidArgument if index is negative, without consuming seq, and an error wrapping
// ErrIndexOutOfRange if seq produces fewer elements.
func ElementAt[T any](seq Sequence[T], index int) (T, error) {
	var zero T

	if index < 0 {
		return zero, fmt.Errorf("%w: index must be 0 or positive, got %d", ErrInvalidArgument, index)
	}

	for elem := range Values(Skip(seq, index)) {
		return elem, nil
	}

	return zero, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, index)
}

// ElementAtOrDefault returns the element produced by seq at index, or def if index is negative or seq produces fewer
// elements.
func ElementAtOrDefault[T any](seq Sequence[T], index int, def T) T {
	elem, err := ElementAt(seq, index)
	if err != nil {
		return def
	}

	return elem
}
