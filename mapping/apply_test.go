package mapping

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Word(t *testing.T) {
	assert := assert.New(t)

	m := MustParse("7,6,5,4")

	value, err := m.ApplyWord(0b1010_0000)
	assert.NoError(err)
	assert.Equal(uint64(0xa), value)

	result, err := m.Apply(Word(0b1010_0000))
	assert.NoError(err)
	assert.Equal(OPERAND_WORD, result.Kind)
	assert.Equal(uint64(0xa), result.Word)
}

func TestApply_NibbleSwap(t *testing.T) {
	assert := assert.New(t)

	m := MustParse("7:4 -> 3:0, 3:0 -> 7:4")

	value, err := m.ApplyWord(0x12)
	assert.NoError(err)
	assert.Equal(uint64(0x21), value)

	// Unmapped bits are dropped.
	value, err = m.ApplyWord(0xf12)
	assert.NoError(err)
	assert.Equal(uint64(0x21), value)
}

func TestApply_SinglePair(t *testing.T) {
	values := []uint64{0, 1, 0x80, 0xdeadbeef, 0xffffffffffffffff, 0x8000000000000000}

	for _, pair := range [][2]uint{{0, 0}, {0, 63}, {63, 0}, {5, 17}, {40, 2}} {
		m, err := FromTable(map[uint]uint{pair[0]: pair[1]})
		assert.NoError(t, err)
		for _, x := range values {
			got, err := m.ApplyWord(x)
			assert.NoError(t, err)
			expected := ((x >> pair[0]) & 1) << pair[1]
			assert.Equal(t, expected, got, "pair %v value %#x", pair, x)
		}
	}
}

func TestApply_Identity(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []uint{1, 4, 8, 13, 32, 63} {
		table := make(map[uint]uint)
		for i := range n {
			table[i] = i
		}
		m, err := FromTable(table)
		assert.NoError(err)

		for _, x := range []uint64{0, 0x5a5a5a5a5a5a5a5a, 0xffffffffffffffff, 0x1234} {
			got, err := m.ApplyWord(x)
			assert.NoError(err)
			assert.Equal(x&(uint64(1)<<n-1), got)
		}
	}
}

func TestApply_WordOverflow(t *testing.T) {
	assert := assert.New(t)

	m := MustParse("0 -> 64")

	value, err := m.ApplyWord(1)
	assert.ErrorIs(err, ErrWordOverflow)
	assert.Equal(uint64(0), value)

	// Clear bits never overflow.
	value, err = m.ApplyWord(2)
	assert.NoError(err)
	assert.Equal(uint64(0), value)

	// Bits above 63 read as zero.
	value, err = MustParse("64 -> 0").ApplyWord(0xffffffffffffffff)
	assert.NoError(err)
	assert.Equal(uint64(0), value)
}

func TestApply_Wide(t *testing.T) {
	assert := assert.New(t)

	m := MustParse("64 -> 0, 0 -> 100")

	in := new(big.Int).Lsh(big.NewInt(1), 64)
	in.SetBit(in, 0, 1)

	out, err := m.ApplyWide(in)
	assert.NoError(err)

	expected := new(big.Int).Lsh(big.NewInt(1), 100)
	expected.SetBit(expected, 0, 1)
	assert.Equal(0, expected.Cmp(out))

	// Input is left untouched.
	assert.Equal(uint(0), in.Bit(1))
	assert.Equal(uint(1), in.Bit(64))

	result, err := m.Apply(Wide(big.NewInt(1)))
	assert.NoError(err)
	assert.Equal(OPERAND_WIDE, result.Kind)
	assert.Equal(0, expected.Cmp(new(big.Int).Add(result.Wide, big.NewInt(1))))

	_, err = m.ApplyWide(big.NewInt(-1))
	assert.ErrorIs(err, ErrNegative)
}

func TestApply_Unsupported(t *testing.T) {
	assert := assert.New(t)

	m := MustParse("3:0")

	result, err := m.Apply(Operand{})
	assert.Equal(Operand{}, result)
	var unsupported *UnsupportedOperandError
	assert.True(errors.As(err, &unsupported))
	if unsupported != nil {
		assert.Equal(OPERAND_NONE, unsupported.Kind)
	}

	_, err = m.Apply(Operand{Kind: OperandKind(42)})
	assert.True(errors.As(err, &unsupported))
	assert.Equal("OperandKind(42)", OperandKind(42).String())

	_, err = m.Apply(Wide(nil))
	assert.True(errors.As(err, &unsupported))

	_, err = m.Apply(Relation(nil))
	assert.True(errors.As(err, &unsupported))
}

func TestCompose_Identity(t *testing.T) {
	assert := assert.New(t)

	outer := MustParse("7:4 -> 3:0")
	inner := MustParse("3:0 -> 7:4")

	net, err := outer.Compose(inner)
	assert.NoError(err)
	assert.True(net.Equal(MustParse("3:0 -> 3:0")))

	for x := range uint64(16) {
		got, err := net.ApplyWord(x)
		assert.NoError(err)
		assert.Equal(x, got)
	}

	result, err := outer.Apply(Relation(inner))
	assert.NoError(err)
	assert.Equal(OPERAND_MAPPING, result.Kind)
	assert.True(net.Equal(result.Mapping))
}

func TestCompose_Partial(t *testing.T) {
	assert := assert.New(t)

	outer := MustParse("3:0 -> 11:8")
	inner := MustParse("7:0 -> 7:0")

	net, err := outer.Compose(inner)
	assert.NoError(err)
	assert.True(net.Equal(MustParse("3:0 -> 11:8")))

	// Inner must reach at least one outer bit.
	net, err = outer.Compose(MustParse("7:4 -> 7:4"))
	assert.Nil(net)
	assert.ErrorIs(err, ErrEmpty)
}

func TestCompose_Ambiguous(t *testing.T) {
	assert := assert.New(t)

	inner, err := FromTable(map[uint]uint{0: 5, 1: 5})
	assert.NoError(err)

	net, err := MustParse("5 -> 0").Compose(inner)
	assert.Nil(net)
	var ambiguous *AmbiguousMappingError
	assert.True(errors.As(err, &ambiguous))
	if ambiguous != nil {
		assert.Equal(uint(0), ambiguous.Value)
		assert.Equal([2]uint{0, 1}, ambiguous.Keys)
	}
}

func TestCompose_Associative(t *testing.T) {
	assert := assert.New(t)

	a := MustParse("0,1,2,3,4,5,6,7")
	b := MustParse("7:4 -> 3:0, 3:0 -> 7:4")
	c := MustParse("5,7,1,3,0,2,4,6")

	bc, err := b.Compose(c)
	assert.NoError(err)
	left, err := a.Compose(bc)
	assert.NoError(err)

	ab, err := a.Compose(b)
	assert.NoError(err)
	right, err := ab.Compose(c)
	assert.NoError(err)

	assert.True(left.Equal(right))

	for x := range uint64(256) {
		l, err := left.ApplyWord(x)
		assert.NoError(err)
		r, err := right.ApplyWord(x)
		assert.NoError(err)
		assert.Equal(l, r)

		// Composition agrees with applying each stage in turn.
		cx, _ := c.ApplyWord(x)
		bcx, _ := b.ApplyWord(cx)
		abcx, _ := a.ApplyWord(bcx)
		assert.Equal(abcx, l)
	}
}
