package utils

import "math"

// CalculateWaterGoal returns the daily water goal in ml: 35ml per kg of body
// weight.
func CalculateWaterGoal(weight float64, weightUnit string) int {
	weightKg := weight
	if weightUnit == "lbs" {
		weightKg = weightKg * 0.453592
	}
	return int(math.Round(weightKg * 35))
}

// ConvertToKg normalizes a weight to kg, rounding to 1 decimal place for lbs
// input.
func ConvertToKg(weight float64, weightUnit string) float64 {
	if weightUnit == "lbs" {
		return math.Round(weight*0.453592*10) / 10
	}
	return weight
}

// LevelFromXP maps XP to a level: every 100 XP is one level, starting at 1.
func LevelFromXP(xp int) int {
	return xp/100 + 1
}
