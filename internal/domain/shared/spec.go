package shared

// Specification is a query predicate with no side effects.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecFunc adapts a plain function to Specification.
type SpecFunc[T any] func(candidate T) bool

func (f SpecFunc[T]) IsSatisfiedBy(candidate T) bool { return f(candidate) }

// And is satisfied when every spec is; an empty And is always satisfied.
func And[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(c T) bool {
		for _, s := range specs {
			if !s.IsSatisfiedBy(c) {
				return false
			}
		}
		return true
	})
}

// Or is satisfied when any spec is; an empty Or is never satisfied.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(c T) bool {
		for _, s := range specs {
			if s.IsSatisfiedBy(c) {
				return true
			}
		}
		return false
	})
}

func Not[T any](spec Specification[T]) Specification[T] {
	return SpecFunc[T](func(c T) bool { return !spec.IsSatisfiedBy(c) })
}
