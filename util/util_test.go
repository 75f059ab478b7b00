package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFloat(t *testing.T) {
	assert.Equal(t, 0.0, CleanFloat(math.NaN()))
	assert.Equal(t, 0.0, CleanFloat(math.Inf(1)))
	assert.Equal(t, 0.0, CleanFloat(math.Inf(-1)))
	assert.Equal(t, 1.25, CleanFloat(1.25))
}

func TestGetValueAsString(t *testing.T) {
	assert.Equal(t, "c1", GetValueAsString("c1"))
	// JSON numbers decode as float64; integral ids must not grow a decimal point.
	assert.Equal(t, "118", GetValueAsString(float64(118)))
	assert.Equal(t, "118.5", GetValueAsString(118.5))
	assert.Equal(t, "7", GetValueAsString(7))
	assert.Equal(t, "true", GetValueAsString(true))
	assert.Equal(t, "", GetValueAsString(nil))
	assert.Equal(t, "", GetValueAsString(map[string]interface{}{}))
}

func TestGetValueAsFloat64(t *testing.T) {
	assert.Equal(t, 0.6, GetValueAsFloat64(0.6, 0))
	assert.Equal(t, 3.0, GetValueAsFloat64(3, 0))
	assert.Equal(t, 0.5, GetValueAsFloat64("0.5", 0))
	assert.Equal(t, 1.5, GetValueAsFloat64("not-a-number", 1.5))
	assert.Equal(t, 1.5, GetValueAsFloat64(nil, 1.5))
	assert.Equal(t, 1.5, GetValueAsFloat64([]interface{}{}, 1.5))
}
