package urine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForScale(t *testing.T) {
	tests := []struct {
		scale int
		want  Category
	}{
		{1, CategoryOptimal},
		{2, CategoryOptimal},
		{3, CategoryGood},
		{4, CategoryGood},
		{5, CategoryWarning},
		{6, CategoryWarning},
		{7, CategoryCritical},
		{8, CategoryCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryForScale(tt.scale).Category, "scale %d", tt.scale)
	}
}

func TestXPForScale(t *testing.T) {
	assert.Equal(t, 10, XPForScale(1))
	assert.Equal(t, 10, XPForScale(2))
	assert.Equal(t, 5, XPForScale(3))
	assert.Equal(t, 5, XPForScale(4))
	assert.Equal(t, 2, XPForScale(5))
	assert.Equal(t, 2, XPForScale(8))
	assert.Equal(t, 2, XPForScale(99), "unknown scales fall back to the minimum award")
}

func TestColorForScale(t *testing.T) {
	assert.Equal(t, "#FFFDD8", ColorForScale(1))
	assert.Equal(t, "#898253", ColorForScale(8))
	assert.Equal(t, "#E0E0E0", ColorForScale(0))
}
