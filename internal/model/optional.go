package model

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Optional tracks whether a JSON field was present in a partial update, and
// whether it was explicitly null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Apply writes the value into dst when the field was supplied with a value.
func (o Optional[T]) Apply(dst *T) {
	if o.Set && !o.Null {
		*dst = o.Value
	}
}

// ApplyPtr writes the value into a nullable dst, clearing it on explicit null.
func (o Optional[T]) ApplyPtr(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}
