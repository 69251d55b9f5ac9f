package exact

// Fold left-folds op over first and rest in argument order:
// op(op(op(first, rest[0]), rest[1]), ...). With no rest it returns first.
func Fold[T any](op func(T, T) T, first T, rest ...T) T {
	acc := first
	for _, v := range rest {
		acc = op(acc, v)
	}
	return acc
}
