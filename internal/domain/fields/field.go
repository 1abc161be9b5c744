package fields

// State distinguishes the three ways a form field can arrive at the engine
// boundary: not submitted at all, submitted empty, or submitted with a value.
// "Missing means don't touch": an Unset field never overwrites a persisted
// value, while a Clear field is an explicit request to reset it.
type State int

const (
	Unset State = iota
	Clear
	Set
)

// Field is a three-state optional value.
type Field[T any] struct {
	state State
	value T
}

// None returns an Unset field.
func None[T any]() Field[T] { return Field[T]{state: Unset} }

// Cleared returns a Clear field.
func Cleared[T any]() Field[T] { return Field[T]{state: Clear} }

// Value returns a Set field holding v.
func Value[T any](v T) Field[T] { return Field[T]{state: Set, value: v} }

func (f Field[T]) State() State  { return f.state }
func (f Field[T]) IsUnset() bool { return f.state == Unset }
func (f Field[T]) IsClear() bool { return f.state == Clear }
func (f Field[T]) IsSet() bool   { return f.state == Set }

// Get returns the held value and whether the field is Set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == Set
}

// Or resolves the field against a fallback: Set wins over the fallback,
// Clear forces the zero value, Unset keeps the fallback untouched.
func (f Field[T]) Or(fallback T) T {
	switch f.state {
	case Set:
		return f.value
	case Clear:
		var zero T
		return zero
	default:
		return fallback
	}
}
