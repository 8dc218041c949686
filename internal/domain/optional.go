package domain

import "encoding/json"

// Optional is a three-state value for partial updates: a field is either
// absent from the request (unset), explicitly null, or carries a value. The
// zero value is unset, so decoding a JSON body into a struct of Optional
// fields leaves untouched fields unset; UnmarshalJSON only runs for keys
// that were present.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present and null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether a non-null value is held.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
