package domain

import "strconv"

// Key is the opaque identifier used for stations, trains, and cross-store
// references. Both stores serialize identity exclusively through String so
// that the relational and graph sides always agree on the join key.
type Key struct {
	value string
}

func NewKey(v string) Key { return Key{value: v} }

// NewIntKey builds a Key from a numeric identifier using its decimal form.
func NewIntKey(v int64) Key { return Key{value: strconv.FormatInt(v, 10)} }

// String returns the canonical form shared by both write paths.
func (k Key) String() string { return k.value }

// IsZero reports whether the key carries no identifier.
func (k Key) IsZero() bool { return k.value == "" }

// MarshalText serializes the canonical form.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.value), nil }

// UnmarshalText restores a key from its canonical form.
func (k *Key) UnmarshalText(b []byte) error {
	k.value = string(b)
	return nil
}
