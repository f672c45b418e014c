// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
)

// ErrNotJSONObject is returned when a configuration document is valid JSON but
// not an object.
var ErrNotJSONObject = errors.New("configuration document is not a JSON object")

// Configurations is a string-to-string mapping that remembers the order in
// which keys were first inserted. Overwriting a key keeps its original
// position. The zero value is an empty, ready-to-use mapping.
type Configurations struct {
	keys   []string
	values map[string]string
}

// NewConfigurations builds a mapping from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewConfigurations(pairs ...string) *Configurations {
	c := &Configurations{}
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

// Set stores value under key.
func (c *Configurations) Set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *Configurations) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of keys.
func (c *Configurations) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the keys in insertion order.
func (c *Configurations) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All iterates over key/value pairs in insertion order.
func (c *Configurations) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if c == nil {
			return
		}
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// Merge copies every entry of other into c. Entries of other win on
// collision.
func (c *Configurations) Merge(other *Configurations) {
	for k, v := range other.All() {
		c.Set(k, v)
	}
}

// Map returns a plain map copy of the configuration.
func (c *Configurations) Map() map[string]string {
	out := make(map[string]string, c.Len())
	for k, v := range c.All() {
		out[k] = v
	}
	return out
}

// UnmarshalJSON decodes a JSON object keeping its key order. String values are
// stored unquoted, null becomes an empty string and any other value is stored
// as its compact JSON text.
func (c *Configurations) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read configuration document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotJSONObject
	}

	decoded := &Configurations{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("read configuration key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected configuration key %v", tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return fmt.Errorf("read configuration value for %q: %w", key, err)
		}

		value, err := rawToString(raw)
		if err != nil {
			return fmt.Errorf("decode configuration value for %q: %w", key, err)
		}
		decoded.Set(key, value)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("read configuration document end: %w", err)
	}

	*c = *decoded
	return nil
}

// MarshalJSON encodes the configuration as a JSON object in insertion order.
func (c *Configurations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func rawToString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return "", nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}
