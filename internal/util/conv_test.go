package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint("-3"))
}

func TestParsePagination(t *testing.T) {
	page, limit := ParsePagination("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = ParsePagination("3", "50")
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	page, limit = ParsePagination("0", "9999")
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)
}
