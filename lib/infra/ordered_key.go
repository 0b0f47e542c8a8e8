package infra

import "errors"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
// If future releases of Go add new predeclared integer types,
// this constraint will be modified to include them.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// If future releases of Go add new predeclared floating-point types,
// this constraint will be modified to include them.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator is a three-way comparison over the element type.
// Assume i is the new element.
//  1. i == j (return 0)
//  2. i > j (return positive), turn to right part.
//  3. i < j (return negative), turn to left part.
//
// The order must be total, otherwise the containers built on
// top of it lose their ordering guarantees.
type Comparator[E any] func(i, j E) int64

// OrderedKeyCompare is the natural ascending order of builtin ordered keys.
// NaN compares greater than anything, itself included. Keep it out of ordered containers.
func OrderedKeyCompare[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

// ReverseComparator flips the order of cmp.
func ReverseComparator[E any](cmp Comparator[E]) Comparator[E] {
	if cmp == nil {
		return nil
	}
	return func(i, j E) int64 {
		return cmp(j, i)
	}
}

// ErrNilComparator reports a container constructed without an order.
var ErrNilComparator = errors.New("nil comparator")
