package urine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWeeklyHeatmapAlwaysReturnsSevenDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) // a Monday

	days := ComputeWeeklyHeatmap(nil, now)

	require.Len(t, days, 7)
	assert.Equal(t, "2025-03-04", days[0].Date)
	assert.Equal(t, "2025-03-10", days[6].Date)
	assert.Equal(t, "TUE", days[0].DayLabel)
	assert.Equal(t, "MON", days[6].DayLabel)
	for _, d := range days {
		assert.Empty(t, d.Logs)
		assert.Equal(t, 0.0, d.AverageColor)
	}
}

func TestComputeWeeklyHeatmapBucketsAndAverages(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(3, now.Add(-12*time.Hour)), // today, 8 AM
		logAt(4, now.Add(-2*time.Hour)),  // today, 6 PM
		logAt(6, now.AddDate(0, 0, -1)),  // yesterday
	}

	days := ComputeWeeklyHeatmap(weekly, now)

	require.Len(t, days, 7)

	today := days[6]
	require.Len(t, today.Logs, 2)
	assert.Equal(t, 8, today.Logs[0].Hour)
	assert.Equal(t, 18, today.Logs[1].Hour)
	assert.Equal(t, 3.5, today.AverageColor)

	yesterday := days[5]
	require.Len(t, yesterday.Logs, 1)
	assert.Equal(t, 6.0, yesterday.AverageColor)
}

func TestComputeWeeklyHeatmapRoundsToOneDecimal(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(2, now.Add(-3*time.Hour)),
		logAt(3, now.Add(-2*time.Hour)),
		logAt(3, now.Add(-1*time.Hour)),
	}

	days := ComputeWeeklyHeatmap(weekly, now)

	// 8/3 = 2.666... rounds to 2.7
	assert.Equal(t, 2.7, days[6].AverageColor)
}
