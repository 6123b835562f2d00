// Package codec encodes parameter snapshots.
//
// A snapshot records the name of the codec that wrote it. Lookup maps that
// name back to a Codec, so a reader without prior knowledge of the writer
// can decode it.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownCodec is returned by Lookup for a name with no built-in codec.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec turns values into bytes and back. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Name is the stable identifier stored in snapshots.
	Name() string
}

// ByName returns the built-in codec registered under name.
func ByName(name string) (Codec, bool) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup is ByName with an error. An empty name selects Default.
func Lookup(name string) (Codec, error) {
	if name == "" {
		return Default, nil
	}
	c, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// MustMarshal marshals v with c (Default when nil) and panics on failure.
// Intended for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: marshal: %w", c.Name(), err))
	}
	return b
}
