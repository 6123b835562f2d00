package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Vary  bool    `json:"vary"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name)
			require.True(t, ok)
			assert.Equal(t, name, c.Name())
		})
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	in := []record{{"per1", 12.5, true}, {"gamma", -3.25, false}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data := MustMarshal(c, in)

			var out []record
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestMustMarshalDefault(t *testing.T) {
	b := MustMarshal(nil, record{Name: "jit"})
	assert.Contains(t, string(b), `"jit"`)
}

func TestLookup(t *testing.T) {
	c, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Default, c)

	c, err = Lookup("json")
	require.NoError(t, err)
	assert.Equal(t, JSON{}, c)

	_, err = Lookup("msgpack")
	assert.ErrorIs(t, err, ErrUnknownCodec)
}
