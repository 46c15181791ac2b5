package urine

import (
	"math"
	"time"
)

var heatmapDayLabels = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

type HeatmapEntry struct {
	Hour       int `json:"hour"`
	ColorScale int `json:"color_scale"`
}

type HeatmapDay struct {
	Date         string         `json:"date"`
	DayLabel     string         `json:"dayLabel"`
	Logs         []HeatmapEntry `json:"logs"`
	AverageColor float64        `json:"averageColor"`
}

// ComputeWeeklyHeatmap buckets the 7-day window into day-by-hour cells for
// the grid view. It always returns the 7 calendar days ending today, oldest
// first; empty days carry an average of 0.
func ComputeWeeklyHeatmap(weeklyLogs []Log, now time.Time) []HeatmapDay {
	days := make([]HeatmapDay, 0, 7)

	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		dateStr := dayKey(d)

		var entries []HeatmapEntry
		sum := 0
		for _, l := range weeklyLogs {
			if dayKey(l.CreatedAt) != dateStr {
				continue
			}
			entries = append(entries, HeatmapEntry{Hour: l.CreatedAt.Hour(), ColorScale: l.ColorScale})
			sum += l.ColorScale
		}

		avg := 0.0
		if len(entries) > 0 {
			avg = math.Round(float64(sum)/float64(len(entries))*10) / 10
		}

		days = append(days, HeatmapDay{
			Date:         dateStr,
			DayLabel:     heatmapDayLabels[int(d.Weekday())],
			Logs:         entries,
			AverageColor: avg,
		})
	}

	return days
}
