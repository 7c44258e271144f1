// Package optional separates "leave the field as it is" from "set the field
// to this value", including the zero value.
package optional

type Value[T any] struct {
	value T
	set   bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

func (v Value[T]) IsSet() bool {
	return v.set
}

func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// OrElse returns the held value or fallback when nothing is set.
func (v Value[T]) OrElse(fallback T) T {
	if !v.set {
		return fallback
	}
	return v.value
}
