package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWire(t *testing.T) {
	assert := assert.New(t)

	for _, spec := range []string{"7,6,5,4", "7:4 -> 3:0, 3:0 -> 7:4", "12 -> 0, 3 -> 40"} {
		m := MustParse(spec)

		data, err := Marshal(m)
		assert.NoError(err)

		back, err := Unmarshal(data)
		assert.NoError(err)
		assert.True(m.Equal(back), spec)
		assert.Equal(m.Runs(), back.Runs())
	}
}

func TestWire_Canonical(t *testing.T) {
	assert := assert.New(t)

	a, err := Marshal(MustParse("7,6,5,4"))
	assert.NoError(err)
	b, err := Marshal(MustParse("7:4 to 3:0"))
	assert.NoError(err)

	assert.Equal(a, b)

	// [[4, 0, 4]]
	assert.Equal([]byte{0x81, 0x83, 0x04, 0x00, 0x04}, a)
}

func TestWire_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Unmarshal([]byte{0xff})
	assert.Error(err)

	overlap, err := cborEncMode.Marshal([]wireRun{
		{Read: 0, Write: 0, Length: 2},
		{Read: 1, Write: 5, Length: 1},
	})
	assert.NoError(err)
	_, err = Unmarshal(overlap)
	assert.ErrorIs(err, ErrRunInvalid)

	huge, err := cborEncMode.Marshal([]wireRun{{Read: 0, Write: 0, Length: 1 << 40}})
	assert.NoError(err)
	_, err = Unmarshal(huge)
	assert.ErrorIs(err, ErrRunInvalid)

	empty, err := cborEncMode.Marshal([]wireRun{})
	assert.NoError(err)
	_, err = Unmarshal(empty)
	assert.ErrorIs(err, ErrEmpty)
}
