package repository

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent JSON key from an explicit null, so a
// partial update can clear a nullable column. An absent key leaves Set
// false and the field untouched; "key": null arrives with Set true and a
// nil Value, which is applied.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Present builds a set Optional carrying v, for patches assembled in code.
func Present[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null builds a set Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
