package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpander_Eval(t *testing.T) {
	assert := assert.New(t)

	ex := &Expander{}
	assert.NoError(ex.Define("XLEN", "32"))
	assert.NoError(ex.Define("MASK", "0xff"))
	assert.NoError(ex.Define("BUS", "insn"))

	value, err := ex.Eval("XLEN-1")
	assert.NoError(err)
	assert.Equal(int64(31), value)

	value, err = ex.Eval("MASK + 1")
	assert.NoError(err)
	assert.Equal(int64(256), value)

	value, err = ex.Eval("XLEN // 4 * 3")
	assert.NoError(err)
	assert.Equal(int64(24), value)

	_, err = ex.Eval("XLEN / 2")
	var parse ErrParseExpression
	assert.True(errors.As(err, &parse))

	_, err = ex.Eval("BUS + 1")
	var eval *ErrExpression
	assert.True(errors.As(err, &eval))

	_, err = ex.Eval("1 +")
	assert.True(errors.As(err, &eval))
}

func TestExpander_Expand(t *testing.T) {
	assert := assert.New(t)

	ex := &Expander{Equates: map[string]string{"XLEN": "64"}}

	out, err := ex.Expand("$(XLEN-1):$(XLEN-8) -> 7:0")
	assert.NoError(err)
	assert.Equal("63:56 -> 7:0", out)

	out, err = ex.Expand("$((XLEN-1)//2):0")
	assert.NoError(err)
	assert.Equal("31:0", out)

	out, err = ex.Expand("7:4 -> 3:0")
	assert.NoError(err)
	assert.Equal("7:4 -> 3:0", out)

	out, err = ex.Expand("$(NOPE):0")
	assert.Error(err)
	assert.Equal("", out)
}

func TestExpander_Define(t *testing.T) {
	assert := assert.New(t)

	ex := &Expander{}
	assert.ErrorIs(ex.Define("1BAD", "1"), ErrEquateName)
	assert.NoError(ex.Define("A", "1"))
	assert.NoError(ex.Define("A", "2"))
	assert.Equal("2", ex.Equates["A"])

	clone := ex.Clone()
	assert.NoError(clone.Define("B", "3"))
	_, ok := ex.Equates["B"]
	assert.False(ok)

	var names []string
	for name := range clone.Defines() {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "B"}, names)
}

func TestParseDefine(t *testing.T) {
	assert := assert.New(t)

	equ, value, err := ParseDefine("XLEN=32")
	assert.NoError(err)
	assert.Equal("XLEN", equ)
	assert.Equal("32", value)

	equ, value, err = ParseDefine("EMPTY=")
	assert.NoError(err)
	assert.Equal("EMPTY", equ)
	assert.Equal("", value)

	_, _, err = ParseDefine("XLEN")
	assert.ErrorIs(err, ErrEquateSyntax)

	_, _, err = ParseDefine("=32")
	assert.ErrorIs(err, ErrEquateSyntax)

	_, _, err = ParseDefine("X-LEN=32")
	assert.ErrorIs(err, ErrEquateName)
}
