package set

import "github.com/samber/lo"

// HasIntersection reports whether any element of b is also in a.
func HasIntersection[E comparable](a, b []E) bool {
	if len(a) <= 0 || len(b) <= 0 {
		return false
	}
	lookup := lo.SliceToMap(a, func(e E) (E, struct{}) {
		return e, struct{}{}
	})
	return lo.ContainsBy(b, func(e E) bool {
		_, ok := lookup[e]
		return ok
	})
}

// Intersect returns the distinct elements in both a and b, in the order of b.
func Intersect[E comparable](a, b []E) []E {
	return lo.Uniq(lo.Intersect(a, b))
}
