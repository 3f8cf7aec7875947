package iterator

import "iter"

func Collect[T any](it iter.Seq[T]) []T {
	p := []T{}
	for value := range it {
		p = append(p, value)
	}
	return p
}

// CollectUntilError gathers the values of it up to the first non-nil error
// and returns them together with that error.
func CollectUntilError[T any](it iter.Seq2[T, error]) ([]T, error) {
	p := []T{}
	for value, err := range it {
		if err != nil {
			return p, err
		}
		p = append(p, value)
	}
	return p, nil
}

// Map applies f to every value of it.
func Map[T, U any](it iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for value := range it {
			if !yield(f(value)) {
				return
			}
		}
	}
}
