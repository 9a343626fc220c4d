package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/meal", nil)

	opts := ParseQueryOptions(r)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, 0.0, opts.MinPrice)
	assert.Equal(t, 500.0, opts.MaxPrice)
	assert.Empty(t, opts.Search)
	assert.Empty(t, opts.Category)
	assert.Nil(t, opts.Upcoming)
	assert.Equal(t, int64(0), opts.Skip())
}

func TestParseQueryOptionsAllSet(t *testing.T) {
	r := httptest.NewRequest("GET", "/meal?search=rice&category=Breakfast&minPrice=5&maxPrice=20&page=3&limit=2&upcoming=true", nil)

	opts := ParseQueryOptions(r)

	assert.Equal(t, "rice", opts.Search)
	assert.Equal(t, "Breakfast", opts.Category)
	assert.Equal(t, 5.0, opts.MinPrice)
	assert.Equal(t, 20.0, opts.MaxPrice)
	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 2, opts.Limit)
	require.NotNil(t, opts.Upcoming)
	assert.True(t, *opts.Upcoming)
	assert.Equal(t, int64(4), opts.Skip())
}

func TestParseQueryOptionsGarbageNumbers(t *testing.T) {
	r := httptest.NewRequest("GET", "/meal?page=-2&limit=abc&minPrice=x&maxPrice=y&upcoming=false", nil)

	opts := ParseQueryOptions(r)

	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, 0.0, opts.MinPrice)
	assert.Equal(t, 500.0, opts.MaxPrice)
	require.NotNil(t, opts.Upcoming)
	assert.False(t, *opts.Upcoming)
}
