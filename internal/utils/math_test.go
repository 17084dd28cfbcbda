package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(0), Lerp(0, 10, 0))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(16), Clamp(40, -16, 16))
	assert.Equal(t, float32(-16), Clamp(-40, -16, 16))
	assert.Equal(t, float32(3), Clamp(3, -16, 16))
}

func TestPRNGRangeIsDeterministicAndBounded(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		x := a.Range(1, 4)
		assert.Equal(t, x, b.Range(1, 4))
		assert.GreaterOrEqual(t, x, float32(1))
		assert.Less(t, x, float32(4))
	}
	assert.Equal(t, float32(2), a.Range(2, 2))
}
