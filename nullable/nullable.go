// Package nullable holds optional filter values. A null Value is absent to
// the specification builder, so optional form fields can be passed as they
// are.
package nullable

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type Value[T any] struct {
	sql.Null[T]
}

type (
	String  = Value[string]
	Int64   = Value[int64]
	Float64 = Value[float64]
	Bool    = Value[bool]
	Time    = Value[time.Time]
)

// From creates a valid Value.
func From[T any](v T) Value[T] {
	return Value[T]{Null: sql.Null[T]{V: v, Valid: true}}
}

// FromPtr creates a null Value for a nil pointer.
func FromPtr[T any](v *T) Value[T] {
	if v == nil {
		return Value[T]{}
	}
	return From(*v)
}

func (v Value[T]) IsNull() bool {
	return !v.Valid
}

func (v Value[T]) Ptr() *T {
	if !v.Valid {
		return nil
	}
	return &v.V
}

func (v Value[T]) GetOrElse(value T) T {
	if v.Valid {
		return v.V
	}
	return value
}

func (v Value[T]) String() string {
	if !v.Valid {
		return "<nil>"
	}

	switch val := any(v.V).(type) {
	case time.Time:
		return val.Format(time.DateTime)
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = Value[T]{}
		return nil
	}

	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*v = From(val)
	return nil
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}
