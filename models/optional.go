package models

import "fmt"

// Opt holds either a parsed value or an explicit "absent" marker.
// The zero value is absent.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None returns the absent marker
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is held
func (o Opt[T]) Present() bool {
	return o.ok
}

// Absent reports whether no value is held
func (o Opt[T]) Absent() bool {
	return !o.ok
}

// OrElse returns the held value, or def when absent
func (o Opt[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Opt[T]) String() string {
	if !o.ok {
		return "<absent>"
	}
	return fmt.Sprint(o.value)
}
