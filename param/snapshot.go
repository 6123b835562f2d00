package param

import (
	"fmt"

	"github.com/hupe1980/rvlike/codec"
)

// Named is one entry of a Snapshot.
type Named struct {
	Name string `json:"name"`
	Parameter
}

// Snapshot is a serialisable copy of a Vector in slot order.
type Snapshot struct {
	Codec      string  `json:"codec,omitempty"`
	Parameters []Named `json:"parameters"`
}

// Snapshot captures the current table.
func (v *Vector) Snapshot() Snapshot {
	s := Snapshot{Parameters: make([]Named, len(v.slots))}
	for i, p := range v.slots {
		s.Parameters[i] = Named{Name: v.names[i], Parameter: p}
	}
	return s
}

// FromSnapshot rebuilds a Vector with the slot order of s.
func FromSnapshot(s Snapshot) (*Vector, error) {
	v := NewVector()
	for _, p := range s.Parameters {
		if v.Has(p.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, p.Name)
		}
		v.Add(p.Name, p.Parameter)
	}
	return v, nil
}

// Encode serialises v with c (codec.Default when nil).
func Encode(c codec.Codec, v *Vector) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	s := v.Snapshot()
	s.Codec = c.Name()
	b, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode rebuilds a Vector from bytes produced by Encode. With a nil c the
// codec recorded in the snapshot is used; snapshots without a codec name
// are read with codec.Default.
func Decode(c codec.Codec, data []byte) (*Vector, error) {
	if c != nil {
		return decode(c, data)
	}

	// Both built-in codecs read the same JSON header.
	var header struct {
		Codec string `json:"codec"`
	}
	if err := codec.Default.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode snapshot header: %w", err)
	}
	c, err := codec.Lookup(header.Codec)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return decode(c, data)
}

func decode(c codec.Codec, data []byte) (*Vector, error) {
	var s Snapshot
	if err := c.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromSnapshot(s)
}
