package catalog

import "fmt"

// Optional carries a parameter that may be absent, present but empty
// (the zero value), or present with a value.
//
// Query builders only emit a parameter when it is [Optional.Present]:
// absent and present-but-zero both leave it out, so Page(0) behaves like
// no page at all rather than requesting page 0.
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Page is shorthand for Some(n) on page parameters.
func Page(n int) Optional[int] { return Some(n) }

// NoPage requests the bare endpoint without a page parameter.
func NoPage() Optional[int] { return None[int]() }

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was supplied, even the zero value.
func (o Optional[T]) IsSet() bool { return o.set }

// Present reports whether a non-zero value was supplied.
func (o Optional[T]) Present() bool {
	var zero T
	return o.set && o.value != zero
}

// String renders the value, or "<none>" when absent.
func (o Optional[T]) String() string {
	if !o.set {
		return "<none>"
	}
	return fmt.Sprint(o.value)
}
