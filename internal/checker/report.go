package checker

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Report maps each check to whether it was found. Keys keep insertion
// order; setting an existing key overwrites the value in place.
type Report struct {
	keys   []string
	values map[string]bool
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{values: make(map[string]bool)}
}

// Set records the result for check
func (r *Report) Set(check string, present bool) {
	if _, ok := r.values[check]; !ok {
		r.keys = append(r.keys, check)
	}
	r.values[check] = present
}

// Get returns the result for check and whether it is present in the report
func (r *Report) Get(check string) (present, ok bool) {
	present, ok = r.values[check]
	return present, ok
}

// Keys returns the checks in insertion order
func (r *Report) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of distinct checks
func (r *Report) Len() int {
	return len(r.keys)
}

// Passed returns the number of checks that were found
func (r *Report) Passed() int {
	n := 0
	for _, v := range r.values {
		if v {
			n++
		}
	}
	return n
}

// Map returns the results as an unordered map
func (r *Report) Map() map[string]bool {
	m := make(map[string]bool, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the report as a JSON object in insertion order
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if r.values[k] {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeKey writes k as a JSON string without escaping <, > and &, which
// are common in selectors.
func writeKey(buf *bytes.Buffer, k string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(k); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// UnmarshalJSON decodes a JSON object of booleans, keeping key order
func (r *Report) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("report must be a JSON object, got %v", tok)
	}

	out := NewReport()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}

		var present bool
		if err := dec.Decode(&present); err != nil {
			return fmt.Errorf("value for %q: %w", key, err)
		}
		out.Set(key, present)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = *out
	return nil
}
