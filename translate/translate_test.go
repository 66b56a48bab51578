package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("syntax", From("syntax"))
	assert.Equal("bit 7 missing", From("bit %v missing", 7))
	assert.Equal("'3:' not a spec", From("'%v' not a spec", "3:"))
}

func TestLocales(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_ENV, "en-GB, fr ,")
	assert.Equal([]string{"en-GB", "fr"}, Locales())

	t.Setenv(LANG_ENV, "")
	assert.NotEmpty(Locales())
}
