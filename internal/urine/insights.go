package urine

import "fmt"

type bracket struct {
	name  string
	total int
	count int
}

func bracketIndex(hour int) int {
	switch {
	case hour >= 6 && hour <= 9:
		return 0
	case hour >= 10 && hour <= 12:
		return 1
	case hour >= 13 && hour <= 16:
		return 2
	case hour >= 17 && hour <= 20:
		return 3
	default:
		return 4
	}
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ComputePredictiveInsights distills the 7-day window into pattern statements:
// worst and best time-of-day bracket, worst weekday, and a frequency nudge.
// Fewer than 5 logs is too little signal and yields nothing. A bracket or day
// needs at least 2 logs before it is reported on.
func ComputePredictiveInsights(weeklyLogs []Log) []string {
	if len(weeklyLogs) < 5 {
		return nil
	}

	var insights []string

	brackets := []bracket{
		{name: "morning (6-9 AM)"},
		{name: "mid-morning (10 AM-12 PM)"},
		{name: "afternoon (1-4 PM)"},
		{name: "evening (5-8 PM)"},
		{name: "night (9 PM+)"},
	}
	for _, l := range weeklyLogs {
		idx := bracketIndex(l.CreatedAt.Hour())
		brackets[idx].total += l.ColorScale
		brackets[idx].count++
	}

	worstBracket, bestBracket := "", ""
	worstAvg, bestAvg := 0.0, 9.0
	for _, b := range brackets {
		if b.count < 2 {
			continue
		}
		avg := float64(b.total) / float64(b.count)
		if avg > worstAvg {
			worstAvg = avg
			worstBracket = b.name
		}
		if avg < bestAvg {
			bestAvg = avg
			bestBracket = b.name
		}
	}

	if worstBracket != "" && worstAvg >= 4.5 {
		insights = append(insights, fmt.Sprintf("You tend to be more dehydrated in the %s. Try drinking extra water beforehand.", worstBracket))
	}
	if bestBracket != "" && bestAvg <= 2.5 {
		insights = append(insights, fmt.Sprintf("Your %s readings show great hydration - keep it up!", bestBracket))
	}

	var dayTotal, dayCount [7]int
	for _, l := range weeklyLogs {
		wd := int(l.CreatedAt.Weekday())
		dayTotal[wd] += l.ColorScale
		dayCount[wd]++
	}

	worstDay := -1
	worstDayAvg := 0.0
	for wd := 0; wd < 7; wd++ {
		if dayCount[wd] < 2 {
			continue
		}
		avg := float64(dayTotal[wd]) / float64(dayCount[wd])
		if avg > worstDayAvg {
			worstDayAvg = avg
			worstDay = wd
		}
	}
	if worstDay >= 0 && worstDayAvg >= 4.5 {
		insights = append(insights, fmt.Sprintf("%s seems to be your driest day. Plan extra hydration!", weekdayNames[worstDay]))
	}

	perDay := make(map[string]int)
	for _, l := range weeklyLogs {
		perDay[dayKey(l.CreatedAt)]++
	}
	totalLogs := 0
	for _, c := range perDay {
		totalLogs += c
	}
	avgFreq := float64(totalLogs) / float64(len(perDay))
	if avgFreq < 4 {
		insights = append(insights, fmt.Sprintf("You're averaging %d logs/day. Try to track 6-8 times for better insights.", int(avgFreq+0.5)))
	}

	return insights
}
