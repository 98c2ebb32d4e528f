package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pc 0x01000 div", From("pc 0x%05x %v", 0x1000, "div"))
	assert.Equal("illegal instruction 0xbe", From("illegal instruction 0x%02x", uint8(0xbe)))
	assert.Equal("variable 7 not available", From("variable %d not available", 7))
}
