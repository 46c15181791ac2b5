package urine

import (
	"time"

	"hydroQuestAPI/internal/achievement"
	"hydroQuestAPI/internal/hydration"
)

func unlockedSet(existing []achievement.Unlock) map[achievement.Key]bool {
	set := make(map[achievement.Key]bool, len(existing))
	for _, u := range existing {
		set[u.Key] = true
	}
	return set
}

// CheckLogAchievements evaluates every log-based unlock predicate against the
// 7-day window and returns the keys that newly qualify. Keys in existing are
// never re-returned; persisting the unlocks is the caller's job.
func CheckLogAchievements(todayLogs, weeklyLogs []Log, existing []achievement.Unlock) []achievement.Key {
	_ = todayLogs

	unlocked := unlockedSet(existing)
	var newKeys []achievement.Key
	allLogs := sortedAscending(weeklyLogs)

	if !unlocked[achievement.KeyFirstLog] && len(allLogs) >= 1 {
		newKeys = append(newKeys, achievement.KeyFirstLog)
	}

	if !unlocked[achievement.KeyHydrationStreak3] && hasOptimalRun(allLogs, 3) {
		newKeys = append(newKeys, achievement.KeyHydrationStreak3)
	}

	if !unlocked[achievement.KeyGoldenFlow] && hasOptimalRun(allLogs, 7) {
		newKeys = append(newKeys, achievement.KeyGoldenFlow)
	}

	if !unlocked[achievement.KeyRehydrationMaster] && hasRehydrationPair(allLogs) {
		newKeys = append(newKeys, achievement.KeyRehydrationMaster)
	}

	if !unlocked[achievement.KeyConsistencyKing] && hasConsecutiveDays(allLogs, 7) {
		newKeys = append(newKeys, achievement.KeyConsistencyKing)
	}

	if !unlocked[achievement.KeyEarlyBird] && countByHour(allLogs, func(h int) bool { return h < 8 }) >= 5 {
		newKeys = append(newKeys, achievement.KeyEarlyBird)
	}

	if !unlocked[achievement.KeyWeekWarrior] && countFullDays(allLogs, 6) >= 7 {
		newKeys = append(newKeys, achievement.KeyWeekWarrior)
	}

	if !unlocked[achievement.KeyColorRainbow] && distinctScales(allLogs) >= 8 {
		newKeys = append(newKeys, achievement.KeyColorRainbow)
	}

	if !unlocked[achievement.KeyNightOwl] && countByHour(allLogs, func(h int) bool { return h >= 22 }) >= 5 {
		newKeys = append(newKeys, achievement.KeyNightOwl)
	}

	return newKeys
}

// CheckHydrationAchievements evaluates the water-goal predicates. weeklyTotals
// is the trailing daily-total series, oldest first.
func CheckHydrationAchievements(dailyTotalMl, goalMl int, weeklyTotals []hydration.DailyTotal, existing []achievement.Unlock) []achievement.Key {
	unlocked := unlockedSet(existing)
	var newKeys []achievement.Key

	if !unlocked[achievement.KeyHydroGoal] && dailyTotalMl >= goalMl {
		newKeys = append(newKeys, achievement.KeyHydroGoal)
	}

	// The streak needs three full days of data; two qualifying days are not
	// enough.
	if !unlocked[achievement.KeyHydroStreak3] && len(weeklyTotals) >= 3 {
		lastThree := weeklyTotals[len(weeklyTotals)-3:]
		qualified := true
		for _, d := range lastThree {
			if d.AmountMl < goalMl {
				qualified = false
				break
			}
		}
		if qualified {
			newKeys = append(newKeys, achievement.KeyHydroStreak3)
		}
	}

	return newKeys
}

// hasOptimalRun reports whether the chronological log sequence contains n
// consecutive entries with scale <= 2.
func hasOptimalRun(allLogs []Log, n int) bool {
	streak := 0
	for _, l := range allLogs {
		if l.ColorScale <= 2 {
			streak++
			if streak >= n {
				return true
			}
		} else {
			streak = 0
		}
	}
	return false
}

// hasRehydrationPair looks for a dark reading (scale >= 6) followed by a
// clear one (scale <= 2) within two hours.
func hasRehydrationPair(allLogs []Log) bool {
	for i := 0; i < len(allLogs)-1; i++ {
		if allLogs[i].ColorScale < 6 {
			continue
		}
		for j := i + 1; j < len(allLogs); j++ {
			if allLogs[j].CreatedAt.Sub(allLogs[i].CreatedAt) > 2*time.Hour {
				break
			}
			if allLogs[j].ColorScale <= 2 {
				return true
			}
		}
	}
	return false
}

// hasConsecutiveDays reports whether n calendar days in a row each have at
// least one log.
func hasConsecutiveDays(allLogs []Log, n int) bool {
	seen := make(map[string]bool)
	var days []string
	for _, l := range allLogs {
		key := dayKey(l.CreatedAt)
		if !seen[key] {
			seen[key] = true
			days = append(days, key)
		}
	}
	// allLogs is chronological, so days is already sorted.

	consecutive := 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse(dayFormat, days[i-1])
		curr, _ := time.Parse(dayFormat, days[i])
		if curr.Sub(prev) == 24*time.Hour {
			consecutive++
		} else {
			consecutive = 1
		}
		if consecutive >= n {
			return true
		}
	}
	return len(days) > 0 && n == 1
}

func countByHour(allLogs []Log, match func(hour int) bool) int {
	count := 0
	for _, l := range allLogs {
		if match(l.CreatedAt.Hour()) {
			count++
		}
	}
	return count
}

// countFullDays counts calendar days carrying at least minLogs entries.
func countFullDays(allLogs []Log, minLogs int) int {
	perDay := make(map[string]int)
	for _, l := range allLogs {
		perDay[dayKey(l.CreatedAt)]++
	}
	full := 0
	for _, c := range perDay {
		if c >= minLogs {
			full++
		}
	}
	return full
}

func distinctScales(allLogs []Log) int {
	seen := make(map[int]bool)
	for _, l := range allLogs {
		seen[l.ColorScale] = true
	}
	return len(seen)
}
