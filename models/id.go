package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque backend identifier. The backend uses integer primary keys
// while client-generated ids (messages) are UUID strings, so ID accepts both
// JSON numbers and JSON strings and always marshals as a string.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as used in URL paths.
func (id ID) String() string {
	return string(id)
}

// IDFromInt formats an integer key as an [ID].
func IDFromInt(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}
