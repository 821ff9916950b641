// Package jsonutil wraps encoding/json decoding with context-carrying errors.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArray unmarshals a JSON array into a slice. An empty array or a
// literal null yields an empty, non-nil slice.
func UnmarshalArray[T any](data []byte, context string) ([]T, error) {
	entries := []T{}
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}
