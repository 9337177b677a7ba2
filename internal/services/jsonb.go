package services

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb stores the value behind ptr in a JSONB column.
type jsonb[T any] struct {
	ptr *T
}

func asJSON[T any](ptr *T) jsonb[T] {
	return jsonb[T]{ptr: ptr}
}

func (j jsonb[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.ptr)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

func (j jsonb[T]) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		var zero T
		*j.ptr = zero
		return nil
	case []byte:
		return json.Unmarshal(src, j.ptr)
	case string:
		return json.Unmarshal([]byte(src), j.ptr)
	default:
		return fmt.Errorf("cannot scan %T into jsonb", src)
	}
}
