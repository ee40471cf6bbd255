package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Less reports whether i must be placed before j.
// It has to be a strict weak ordering:
//  1. Less(i, i) is false.
//  2. Less(i, j) and Less(j, k) implies Less(i, k).
//  3. Equivalence (neither Less(i, j) nor Less(j, i)) is transitive.
//
// Two keys are equivalent when neither is less than the other. Equivalent
// keys may still differ under ==, the containers only look at ordering.
type Less[K any] func(i, j K) bool

// OrderedLess is the natural ascending order of ordered keys.
// NaN is treated as less than any other float, same as cmp.Less.
func OrderedLess[K OrderedKey](i, j K) bool {
	return (isNaN(i) && !isNaN(j)) || i < j
}

// Reverse swaps the operands of less, so the order becomes descending.
func Reverse[K any](less Less[K]) Less[K] {
	return func(i, j K) bool {
		return less(j, i)
	}
}

// Equivalent reports i and j as indistinguishable for ordering purposes.
func Equivalent[K any](less Less[K], i, j K) bool {
	return !less(i, j) && !less(j, i)
}

func isNaN[K OrderedKey](k K) bool {
	return k != k
}
