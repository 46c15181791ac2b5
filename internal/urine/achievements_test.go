package urine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hydroQuestAPI/internal/achievement"
	"hydroQuestAPI/internal/hydration"
)

func TestCheckLogAchievementsFirstLog(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{logAt(4, now)}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyFirstLog)
}

func TestCheckLogAchievementsExistingUnlocksFiltered(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{logAt(4, now)}
	existing := []achievement.Unlock{{Key: achievement.KeyFirstLog}}

	keys := CheckLogAchievements(nil, weekly, existing)

	assert.NotContains(t, keys, achievement.KeyFirstLog)
}

func TestCheckLogAchievementsOptimalRuns(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	var weekly []Log
	for i := 0; i < 7; i++ {
		weekly = append(weekly, logAt(2, now.Add(time.Duration(i)*time.Hour)))
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyHydrationStreak3)
	assert.Contains(t, keys, achievement.KeyGoldenFlow)
}

func TestCheckLogAchievementsRunBrokenByDarkReading(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(2, now),
		logAt(1, now.Add(1*time.Hour)),
		logAt(5, now.Add(2*time.Hour)),
		logAt(2, now.Add(3*time.Hour)),
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.NotContains(t, keys, achievement.KeyHydrationStreak3)
}

func TestCheckLogAchievementsRehydrationMaster(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(6, now),
		logAt(2, now.Add(90*time.Minute)),
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyRehydrationMaster)
}

func TestCheckLogAchievementsRehydrationWindowExpires(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(6, now),
		logAt(2, now.Add(3*time.Hour)),
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.NotContains(t, keys, achievement.KeyRehydrationMaster)
}

func TestCheckLogAchievementsConsistencyKing(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	var weekly []Log
	for i := 6; i >= 0; i-- {
		weekly = append(weekly, logAt(3, now.AddDate(0, 0, -i)))
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyConsistencyKing)
}

func TestCheckLogAchievementsEarlyBirdAndNightOwl(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	var weekly []Log
	for i := 0; i < 5; i++ {
		weekly = append(weekly, logAt(3, day.AddDate(0, 0, i).Add(7*time.Hour)))
		weekly = append(weekly, logAt(3, day.AddDate(0, 0, i).Add(23*time.Hour)))
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyEarlyBird)
	assert.Contains(t, keys, achievement.KeyNightOwl)
}

func TestCheckLogAchievementsWeekWarrior(t *testing.T) {
	day := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	var weekly []Log
	for d := 0; d < 7; d++ {
		for l := 0; l < 6; l++ {
			weekly = append(weekly, logAt(3, day.AddDate(0, 0, d).Add(time.Duration(l)*time.Hour)))
		}
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyWeekWarrior)
}

func TestCheckLogAchievementsColorRainbow(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	var weekly []Log
	for scale := 1; scale <= 8; scale++ {
		weekly = append(weekly, logAt(scale, now.Add(time.Duration(scale)*time.Hour)))
	}

	keys := CheckLogAchievements(nil, weekly, nil)

	assert.Contains(t, keys, achievement.KeyColorRainbow)
}

func TestCheckHydrationAchievementsGoalReached(t *testing.T) {
	keys := CheckHydrationAchievements(2500, 2450, nil, nil)

	assert.Contains(t, keys, achievement.KeyHydroGoal)
	assert.NotContains(t, keys, achievement.KeyHydroStreak3)
}

func TestCheckHydrationAchievementsStreak(t *testing.T) {
	totals := []hydration.DailyTotal{
		{Date: "2025-03-08", AmountMl: 2500},
		{Date: "2025-03-09", AmountMl: 2600},
		{Date: "2025-03-10", AmountMl: 2450},
	}

	keys := CheckHydrationAchievements(2450, 2450, totals, nil)

	assert.Contains(t, keys, achievement.KeyHydroStreak3)
}

func TestCheckHydrationAchievementsStreakNeedsThreeDays(t *testing.T) {
	totals := []hydration.DailyTotal{
		{Date: "2025-03-09", AmountMl: 2600},
		{Date: "2025-03-10", AmountMl: 2450},
	}

	keys := CheckHydrationAchievements(2450, 2450, totals, nil)

	assert.NotContains(t, keys, achievement.KeyHydroStreak3)
}

func TestCheckHydrationAchievementsStreakBrokenByShortDay(t *testing.T) {
	totals := []hydration.DailyTotal{
		{Date: "2025-03-08", AmountMl: 2500},
		{Date: "2025-03-09", AmountMl: 1000},
		{Date: "2025-03-10", AmountMl: 2450},
	}

	keys := CheckHydrationAchievements(2450, 2450, totals, nil)

	assert.NotContains(t, keys, achievement.KeyHydroStreak3)
}
