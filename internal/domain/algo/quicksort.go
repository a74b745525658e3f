package algo

import "cmp"

// Sort returns a new ascending copy of s using the textbook quicksort:
// pivot at the middle index, three-way partition, recursion on the outer
// partitions. The input is never mutated; for len(s) <= 1 the input slice is
// returned as-is.
//
// Equal elements keep their input order (the equal partition collects them
// verbatim), so SortFunc is stable for comparators that treat distinct
// values as equal.
func Sort[T cmp.Ordered](s []T) []T {
	return SortFunc(s, cmp.Compare[T])
}

// SortFunc is Sort with an explicit comparator. compare must return a
// negative number when a orders before b, zero when they are equal, and a
// positive number when a orders after b.
func SortFunc[T any](s []T, compare func(a, b T) int) []T {
	if len(s) <= 1 {
		return s
	}

	pivot := s[len(s)/2]

	var less, equal, greater []T

	for _, v := range s {
		switch c := compare(v, pivot); {
		case c < 0:
			less = append(less, v)
		case c > 0:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	sorted := SortFunc(less, compare)
	sorted = append(sorted, equal...)

	return append(sorted, SortFunc(greater, compare)...)
}
