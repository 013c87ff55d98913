// Package lazyseq provides lazily evaluated, composable queries over sequences of elements.
// Operations form a pipeline that elements are pulled through, one at a time.
//
// Pipelines are constructed by creating an initial Sequence, which can produce elements from slices,
// maps, generators (iter.Seq), or any arbitrary source implementing Sequence.
//
// Elements may then be operated upon using filtering, mapping, partitioning, ordering, grouping, joining,
// and set operations. Every operation returns a new Sequence and leaves its upstream sequence untouched.
// Nothing is computed until the sequence is consumed.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into slices or maps,
// looking up single elements, checking for matching elements, or simply iterating over them using Values.
//
// Sequences are always lazy, meaning that an operation will pull a new element from its upstream sequence only after
// a downstream operation or consumer has requested one. Operations that need to see all elements first, such as
// ordering, grouping, TakeLast, or the target of set operations, consume their upstream sequence when an iteration
// starts.
//
// Sequences can be consumed any number of times. Each iteration starts from scratch, pulling all upstream sequences
// again. A sequence must not be iterated by multiple goroutines, and starting a new iteration while one is in
// progress restarts it.
package lazyseq
