package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{12.34, 1234},
		{12.999, 1299}, // truncated, not rounded
		{0.005, 0},
		{499.99, 49999},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AmountInCents(c.price), "price %v", c.price)
	}
}
