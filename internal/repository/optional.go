// internal/repository/optional.go
package repository

import "encoding/json"

// Optional distinguishes a JSON key that was absent from one that was
// explicitly provided, including zero values and null. Update inputs use
// it so a field is applied iff the caller included the key: "progress": 0
// overwrites, while an omitted key retains the stored value, and an
// explicit null clears a nullable column.
type Optional[T any] struct {
	value T
	set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	return json.Unmarshal(data, &o.value)
}

// Get returns the decoded value and whether the key was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Provided reports whether the key was present in the request.
func (o Optional[T]) Provided() bool {
	return o.set
}

// Of returns an Optional holding v, as if the key had been provided.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// apply overwrites dst when the field was provided.
func apply[T any](dst *T, o Optional[T]) {
	if o.set {
		*dst = o.value
	}
}
