package lazyseq

import (
	"testing"

	"github.com/matryer/is"
)

func TestBegin_Restart(t *testing.T) {
	is := is.New(t)

	seq := FromSlice([]int{1, 2, 3})

	Begin(seq)

	elem, _ := Advance(seq)
	is.Equal(elem, 1)

	elem, _ = Advance(seq)
	is.Equal(elem, 2)

	Begin(seq)

	elem, ok := Advance(seq)
	is.True(ok)
	is.Equal(elem, 1)
}

func TestAdvance(t *testing.T) {
	is := is.New(t)

	seq := Range(0, 2)
	is.True(!seq.Active())

	elem, ok := Advance(seq)
	is.True(ok)
	is.Equal(elem, 0)
	is.True(seq.Active())

	elem, ok = Advance(seq)
	is.True(ok)
	is.Equal(elem, 1)

	_, ok = Advance(seq)
	is.True(!ok)
	is.True(!seq.Active())

	// advancing an exhausted sequence restarts it
	elem, ok = Advance(seq)
	is.True(ok)
	is.Equal(elem, 0)
}

func TestAdvance_Panic(t *testing.T) {
	is := is.New(t)

	src := track(Range(0, 5))

	seq := Select[int](src, func(elem int) int {
		if elem == 2 {
			panic("boom")
		}

		return elem * 10
	})

	Begin(seq)

	elem, _ := Advance(seq)
	is.Equal(elem, 0)

	elem, _ = Advance(seq)
	is.Equal(elem, 10)

	func() {
		defer func() {
			is.Equal(recover(), "boom")
		}()

		Advance(seq)
	}()

	is.True(!seq.Active())
	is.True(!src.Active())

	is.Equal(ToSlice(Take(seq, 2)), []int{0, 10})
}

func TestValues(t *testing.T) {
	is := is.New(t)

	result := []int{}
	for elem := range Values(Range(1, 5)) {
		result = append(result, elem)
	}

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestValues_Break(t *testing.T) {
	is := is.New(t)

	src := track(Range(0, 10))

	for elem := range Values[int](src) {
		if elem == 3 {
			break
		}
	}

	is.Equal(src.pulls, 4)
	is.True(!src.Active())
}

func TestSequence_Restartable(t *testing.T) {
	is := is.New(t)

	src := track(Range(0, 10))

	seq := Select(OrderByDescending(Where[int](src, even), Identity[int]()), itoa)

	first := ToSlice(seq)
	second := ToSlice(seq)

	is.Equal(first, []string{"8", "6", "4", "2", "0"})
	is.Equal(first, second)
	is.Equal(src.starts, 2)
	is.Equal(src.pulls, 20)
}

func TestFuncMapper(t *testing.T) {
	is := is.New(t)

	mapp := FuncMapper(itoa)

	is.Equal(mapp(42, 7), "42")
}

func TestFuncPredicate(t *testing.T) {
	is := is.New(t)

	pred := FuncPredicate(even)

	is.True(pred(2, 1))
	is.True(!pred(3, 0))
}
