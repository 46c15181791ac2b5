package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWaterGoal(t *testing.T) {
	assert.Equal(t, 2450, CalculateWaterGoal(70, "kg"))
	assert.Equal(t, 2445, CalculateWaterGoal(154, "lbs"))
}

func TestConvertToKg(t *testing.T) {
	assert.Equal(t, 70.0, ConvertToKg(70, "kg"))
	assert.Equal(t, 69.9, ConvertToKg(154, "lbs"))
}

func TestLevelFromXP(t *testing.T) {
	assert.Equal(t, 1, LevelFromXP(0))
	assert.Equal(t, 1, LevelFromXP(99))
	assert.Equal(t, 2, LevelFromXP(100))
	assert.Equal(t, 3, LevelFromXP(250))
}
