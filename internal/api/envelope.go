package api

import (
	"encoding/json"
	"strings"
)

// decodeCollection normalizes the two collection shapes the API produces:
// a bare JSON array, or a HAL envelope nesting the array under
// _embedded.<key> (some endpoints also use a top-level <key> field).
// The result is always a non-nil slice; an envelope without the expected
// key yields an empty one. The shape is resolved once here so callers
// never re-check it.
func decodeCollection[T any](data []byte, key string) ([]T, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var out []T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}

	var env struct {
		Embedded map[string]json.RawMessage `json:"_embedded"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	raw, ok := env.Embedded[key]
	if !ok {
		// Some endpoints skip _embedded and nest the collection directly
		// under its name.
		var top map[string]json.RawMessage
		if err := json.Unmarshal(data, &top); err != nil {
			return nil, err
		}
		raw, ok = top[key]
		if !ok {
			return []T{}, nil
		}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
