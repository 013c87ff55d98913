package lazyseq

// ring is a bounded FIFO buffer backed by a circular slice.
// Pushing into a full ring evicts the oldest element.
// The backing slice grows on demand up to limit, so a large limit does not allocate up front.
type ring[T any] struct {
	buf   []T
	head  int
	size  int
	limit int
}

func newRing[T any](limit int) *ring[T] {
	return &ring[T]{
		limit: limit,
	}
}

// push appends elem. If the ring was full, the oldest element is removed and returned.
func (r *ring[T]) push(elem T) (T, bool) {
	var evicted T

	if r.size < r.limit {
		if r.size == len(r.buf) {
			r.grow()
		}

		r.buf[(r.head+r.size)%len(r.buf)] = elem
		r.size++

		return evicted, false
	}

	evicted = r.buf[r.head]
	r.buf[r.head] = elem
	r.head = (r.head + 1) % len(r.buf)

	return evicted, true
}

// shift removes and returns the oldest element.
func (r *ring[T]) shift() (T, bool) {
	var zero T

	if r.size == 0 {
		return zero, false
	}

	elem := r.buf[r.head]
	r.buf[r.head] = zero // clear reference
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return elem, true
}

func (r *ring[T]) len() int {
	return r.size
}

// grow enlarges the backing slice, unwrapping the elements to its start.
func (r *ring[T]) grow() {
	newLen := min(r.limit, max(2*len(r.buf), 16))

	buf := make([]T, newLen)

	n := copy(buf, r.buf[r.head:])
	copy(buf[n:], r.buf[:r.head])

	r.buf = buf
	r.head = 0
}
