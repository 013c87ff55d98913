package lazyseq

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/exp/slices"
)

func TestFromSlice(t *testing.T) {
	is := is.New(t)

	seq := FromSlice([]int{1, 2, 3, 4, 5})

	is.Equal(ToSlice(seq), []int{1, 2, 3, 4, 5})
	is.Equal(ToSlice(seq), []int{1, 2, 3, 4, 5})
}

func TestFrom(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(From("a", "b", "c")), []string{"a", "b", "c"})
	is.Equal(ToSlice(From[int]()), []int{})
}

func TestFromMap(t *testing.T) {
	is := is.New(t)

	mapp := map[string]int{
		"a": 1,
		"b": 2,
		"c": 3,
	}

	seq := FromMap(mapp)

	is.Equal(Count(seq), 3)

	keys := ToSlice(Select(seq, func(kv KeyValue[string, int]) string {
		return kv.Key
	}))
	slices.Sort(keys)

	is.Equal(keys, []string{"a", "b", "c"})

	result := ToMap(seq, func(kv KeyValue[string, int]) string {
		return kv.Key
	}, func(kv KeyValue[string, int]) int {
		return kv.Value
	})

	is.Equal(result, mapp)
}

func TestFromMap_DeleteDuringIteration(t *testing.T) {
	is := is.New(t)

	mapp := map[int]string{
		1: "1",
		2: "2",
		3: "3",
	}

	seq := FromMap(mapp)

	count := 0

	for kv := range Values(seq) {
		count++

		// delete every other entry, one of them is not produced anymore
		for key := range mapp {
			if key != kv.Key {
				delete(mapp, key)
				break
			}
		}
	}

	is.True(count < 3)
}

func TestFromGenerator(t *testing.T) {
	is := is.New(t)

	calls := 0
	produced := 0

	seq := FromGenerator(func(yield func(int) bool) {
		calls++

		for i := 1; i <= 5; i++ {
			produced++

			if !yield(i) {
				return
			}
		}
	})

	is.Equal(ToSlice(seq), []int{1, 2, 3, 4, 5})
	is.Equal(ToSlice(seq), []int{1, 2, 3, 4, 5})
	is.Equal(calls, 2)

	produced = 0

	is.Equal(ToSlice(Take(seq, 2)), []int{1, 2})
	is.Equal(produced, 2)
	is.True(!seq.Active())
}

func TestEmpty(t *testing.T) {
	is := is.New(t)

	seq := Empty[int]()

	is.Equal(ToSlice(seq), []int{})
	is.True(!Any(seq))
}

func TestRange(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Range(-2, 5)), []int{-2, -1, 0, 1, 2})
	is.Equal(ToSlice(Range(10, 0)), []int{})
}

func TestRange_NegativeCount(t *testing.T) {
	is := is.New(t)

	err := recoverError(func() {
		Range(0, -1)
	})

	is.True(errors.Is(err, ErrInvalidArgument))
}

func TestRepeat(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Repeat("4", 3)), []string{"4", "4", "4"})
	is.Equal(ToSlice(Repeat("4", 0)), []string{})
}

func TestRepeat_NegativeCount(t *testing.T) {
	is := is.New(t)

	err := recoverError(func() {
		Repeat(1, -5)
	})

	is.True(errors.Is(err, ErrInvalidArgument))
}
