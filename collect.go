package lazyseq

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, _ int, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, _ int, acc map[K]V) map[K]V {
		acc[key(elem)] = value(elem)
		return acc
	}
}

// CollectSet returns an accumulator that collects elements into a set.
func CollectSet[T comparable]() AccumulatorFunc[T, map[T]struct{}] {
	return func(elem T, _ int, acc map[T]struct{}) map[T]struct{} {
		acc[elem] = struct{}{}
		return acc
	}
}

// ToSlice returns the elements produced by seq, in order. It never returns nil.
func ToSlice[T any](seq Sequence[T]) []T {
	return Reduce(seq, []T{}, CollectSlice[T]())
}

// ToMap returns a map of the elements produced by seq, mapped using key and value, respectively.
// If multiple elements have the same key, the last one wins.
func ToMap[T any, K comparable, V any](seq Sequence[T], key Function[T, K], value Function[T, V]) map[K]V {
	return Reduce(seq, map[K]V{}, CollectMap(key, value))
}

// ToMapNoDuplicateKeys returns a map of the elements produced by seq, mapped using key and value, respectively.
// If multiple elements have the same key, it stops consuming seq and returns the map so far, and a DuplicateKeyError.
func ToMapNoDuplicateKeys[T any, K comparable, V any](seq Sequence[T], key Function[T, K], value Function[T, V]) (map[K]V, error) {
	mapp := map[K]V{}

	for elem := range Values(seq) {
		elemKey := key(elem)

		if _, ok := mapp[elemKey]; ok {
			return mapp, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     elemKey,
			}
		}

		mapp[elemKey] = value(elem)
	}

	return mapp, nil
}

// ToSet returns the distinct elements produced by seq.
func ToSet[T comparable](seq Sequence[T]) map[T]struct{} {
	return Reduce(seq, map[T]struct{}{}, CollectSet[T]())
}
