package lazyseq

import (
	"strconv"
)

// tracked wraps a sequence and counts how often it is started and how many elements it produced.
type tracked[T any] struct {
	Sequence[T]

	starts int
	pulls  int
}

type person struct {
	id   int
	name string
}

func track[T any](seq Sequence[T]) *tracked[T] {
	return &tracked[T]{
		Sequence: seq,
	}
}

func (t *tracked[T]) Start() {
	t.starts++
	t.Sequence.Start()
}

func (t *tracked[T]) Next() (T, bool) {
	elem, ok := t.Sequence.Next()
	if ok {
		t.pulls++
	}

	return elem, ok
}

// recoverError calls f and returns the error it panicked with, or nil.
func recoverError(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()

	f()

	return nil
}

func even(elem int) bool {
	return elem%2 == 0
}

func ints(start int, end int) []int {
	return ToSlice(Range(start, end-start))
}

func itoa(elem int) string {
	return strconv.Itoa(elem)
}

func people() []person {
	return []person{
		{3, "Takahashi"},
		{4, "Ito"},
		{2, "Tanaka"},
		{4, "Sato"},
		{2, "Yamada"},
		{1, "Sato"},
		{3, "Kino"},
		{2, "Ando"},
	}
}

func personID(p person) int {
	return p.id
}

func personName(p person) string {
	return p.name
}
