package lazyseq

import (
	"math"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func atoi(elem string) int {
	i, _ := strconv.Atoi(elem)
	return i
}

func TestOrder(t *testing.T) {
	is := is.New(t)

	seq := Order(FromSlice([]int{1, 0, 5, 3, 6, 4, 7}))

	is.Equal(ToSlice[int](seq), []int{0, 1, 3, 4, 5, 6, 7})
}

func TestOrderBy(t *testing.T) {
	is := is.New(t)

	seq := OrderBy(FromSlice([]string{"1", "0", "5", "3", "6", "4", "7"}), atoi)

	is.Equal(ToSlice[string](seq), []string{"0", "1", "3", "4", "5", "6", "7"})
}

func TestOrderDescending(t *testing.T) {
	is := is.New(t)

	seq := OrderDescending(FromSlice([]int{1, 0, 5, 3, 6, 4, 7}))

	is.Equal(ToSlice[int](seq), []int{7, 6, 5, 4, 3, 1, 0})
}

func TestOrderByDescending(t *testing.T) {
	is := is.New(t)

	seq := OrderByDescending(FromSlice([]string{"1", "0", "5", "3", "6", "4", "7"}), atoi)

	is.Equal(ToSlice[string](seq), []string{"7", "6", "5", "4", "3", "1", "0"})
}

func TestOrderBy_Stable(t *testing.T) {
	tests := []struct {
		given func(seq Sequence[person]) *OrderedSequence[person]
		want  []person
	}{
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return OrderBy(seq, personID)
			},
			want: []person{
				{1, "Sato"}, {2, "Tanaka"}, {2, "Yamada"}, {2, "Ando"},
				{3, "Takahashi"}, {3, "Kino"}, {4, "Ito"}, {4, "Sato"},
			},
		},
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return OrderByDescending(seq, personID)
			},
			want: []person{
				{4, "Ito"}, {4, "Sato"}, {3, "Takahashi"}, {3, "Kino"},
				{2, "Tanaka"}, {2, "Yamada"}, {2, "Ando"}, {1, "Sato"},
			},
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			seq := test.given(FromSlice(people()))

			is.Equal(ToSlice[person](seq), test.want)
		})
	}
}

func TestThenBy(t *testing.T) {
	tests := []struct {
		given func(seq Sequence[person]) *OrderedSequence[person]
		want  []person
	}{
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return ThenBy(OrderBy(seq, personID), personName)
			},
			want: []person{
				{1, "Sato"}, {2, "Ando"}, {2, "Tanaka"}, {2, "Yamada"},
				{3, "Kino"}, {3, "Takahashi"}, {4, "Ito"}, {4, "Sato"},
			},
		},
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return ThenByDescending(OrderBy(seq, personID), personName)
			},
			want: []person{
				{1, "Sato"}, {2, "Yamada"}, {2, "Tanaka"}, {2, "Ando"},
				{3, "Takahashi"}, {3, "Kino"}, {4, "Sato"}, {4, "Ito"},
			},
		},
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return ThenBy(OrderByDescending(seq, personID), personName)
			},
			want: []person{
				{4, "Ito"}, {4, "Sato"}, {3, "Kino"}, {3, "Takahashi"},
				{2, "Ando"}, {2, "Tanaka"}, {2, "Yamada"}, {1, "Sato"},
			},
		},
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return ThenByDescending(OrderByDescending(seq, personID), personName)
			},
			want: []person{
				{4, "Sato"}, {4, "Ito"}, {3, "Takahashi"}, {3, "Kino"},
				{2, "Yamada"}, {2, "Tanaka"}, {2, "Ando"}, {1, "Sato"},
			},
		},
		{
			given: func(seq Sequence[person]) *OrderedSequence[person] {
				return ThenBy(OrderBy(seq, personName), personID)
			},
			want: []person{
				{2, "Ando"}, {4, "Ito"}, {3, "Kino"}, {1, "Sato"},
				{4, "Sato"}, {3, "Takahashi"}, {2, "Tanaka"}, {2, "Yamada"},
			},
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			seq := test.given(FromSlice(people()))

			is.Equal(ToSlice[person](seq), test.want)
		})
	}
}

func TestThenBy_ThreeLevels(t *testing.T) {
	is := is.New(t)

	type row struct {
		a, b, c int
	}

	rows := []row{
		{1, 2, 1}, {1, 1, 2}, {0, 2, 2}, {1, 2, 3}, {1, 1, 1}, {0, 2, 1},
	}

	seq := ThenByDescending(ThenBy(OrderByDescending(FromSlice(rows), func(r row) int {
		return r.a
	}), func(r row) int {
		return r.b
	}), func(r row) int {
		return r.c
	})

	is.Equal(ToSlice[row](seq), []row{
		{1, 1, 2}, {1, 1, 1}, {1, 2, 3}, {1, 2, 1}, {0, 2, 2}, {0, 2, 1},
	})
}

func TestThenBy_ParentUnchanged(t *testing.T) {
	is := is.New(t)

	ordered := OrderBy(FromSlice(people()), personID)
	_ = ThenByDescending(ordered, personName)

	is.Equal(ToSlice[person](ordered), []person{
		{1, "Sato"}, {2, "Tanaka"}, {2, "Yamada"}, {2, "Ando"},
		{3, "Takahashi"}, {3, "Kino"}, {4, "Ito"}, {4, "Sato"},
	})
}

func TestOrderBy_MaterializesPerIteration(t *testing.T) {
	is := is.New(t)

	src := track(FromSlice([]int{3, 1, 2}))
	keys := 0

	seq := ThenBy(OrderBy[int](src, func(elem int) int {
		keys++
		return elem
	}), Identity[int]())

	is.Equal(ToSlice[int](seq), []int{1, 2, 3})
	is.Equal(ToSlice[int](seq), []int{1, 2, 3})
	is.Equal(src.starts, 2)

	// each key is computed once per element and iteration
	is.Equal(keys, 6)
}

func TestOrder_Lazy(t *testing.T) {
	is := is.New(t)

	src := track(FromSlice([]int{3, 1, 2}))

	seq := Order[int](src)
	is.Equal(src.starts, 0)

	elem, err := First[int](seq)
	is.NoErr(err)
	is.Equal(elem, 1)
	is.Equal(src.pulls, 3)
	is.True(!seq.Active())
}

func TestCompareOrdered(t *testing.T) {
	is := is.New(t)

	nan := math.NaN()

	is.Equal(compareOrdered(1, 2), -1)
	is.Equal(compareOrdered(2, 1), 1)
	is.Equal(compareOrdered("a", "a"), 0)
	is.Equal(compareOrdered(nan, 1.0), -1)
	is.Equal(compareOrdered(1.0, nan), 1)
	is.Equal(compareOrdered(nan, nan), 0)
}
