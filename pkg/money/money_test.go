package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.56, Round2(1.555))
	assert.Equal(t, 1.55, Round2(1.554))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "205.00", Format(205))
	assert.Equal(t, "10.25", Format(10.25))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "-5.00", Format(-5))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(10.00, 10.00))
	assert.True(t, Equal(10.00, 10.01))
	assert.True(t, Equal(10.01, 10.00))
	assert.False(t, Equal(10.00, 10.02))
}

func TestMul(t *testing.T) {
	assert.Equal(t, 120.0, Mul(2, 60))
	assert.Equal(t, 40.0, Mul(0.5, 80))
	// Float-hostile values stay exact through decimal math.
	assert.Equal(t, 0.03, Mul(0.1, 0.3))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 350.50, Sum(100.00, 250.50))
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 205.0, Sum(205, 0, -0))
}
