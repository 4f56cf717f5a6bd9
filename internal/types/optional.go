package types

import "encoding/json"

// Optional distinguishes "field absent from the payload" from "field
// explicitly set to null". Patch endpoints use it for fields that can
// be cleared, e.g. a submission's feedback.
type Optional[T any] struct {
	Value   *T
	Defined bool
}

// UnmarshalJSON is implemented by deferring to the wrapped type (T).
// It will be called only if the value is defined in the JSON payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true
	return json.Unmarshal(data, &o.Value)
}

func (o *Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Defined {
		return nil, nil
	}

	return json.Marshal(o.Value)
}

func NewFromVal[T any](v T) Optional[T] {
	return Optional[T]{Defined: true, Value: &v}
}

func NewFromPtr[T any](v *T) Optional[T] {
	return Optional[T]{Defined: true, Value: v}
}
