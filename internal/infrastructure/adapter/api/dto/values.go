package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecimalString is a monetary amount received as a JSON string or a JSON number.
// Numbers are kept as their literal text so no binary float is involved.
type DecimalString string

// UnmarshalJSON implements json.Unmarshaler
func (d *DecimalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*d = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DecimalString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a decimal string or number")
		}
		*d = DecimalString(n.String())
	}
	return nil
}

// String returns the raw amount text
func (d DecimalString) String() string {
	return string(d)
}

// FlexibleID is a numeric identifier received as a JSON number or a numeric string
type FlexibleID uint64

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = FlexibleID(v)
	return nil
}

// DeadlineValue keeps a deadline as received: a string, or a number as json.Number
type DeadlineValue struct {
	Value any
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DeadlineValue) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return err
	}
	d.Value = v
	return nil
}
