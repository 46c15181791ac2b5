package urine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePredictiveInsightsNeedsEnoughLogs(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(5, now),
		logAt(5, now.Add(time.Hour)),
		logAt(5, now.Add(2*time.Hour)),
		logAt(5, now.Add(3*time.Hour)),
	}

	assert.Nil(t, ComputePredictiveInsights(weekly))
}

func TestComputePredictiveInsightsWorstAndBestBrackets(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	weekly := []Log{
		logAt(6, day.Add(7*time.Hour)),
		logAt(6, day.Add(8*time.Hour)),
		logAt(6, day.Add(9*time.Hour)),
		logAt(2, day.Add(14*time.Hour)),
		logAt(2, day.Add(15*time.Hour)),
	}

	insights := ComputePredictiveInsights(weekly)

	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "morning (6-9 AM)")
	assert.Contains(t, insights[1], "afternoon (1-4 PM)")
}

func TestComputePredictiveInsightsWorstWeekday(t *testing.T) {
	// Monday carries the dark readings, spread across brackets so no
	// single bracket reaches the reporting threshold.
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	weekly := []Log{
		logAt(6, monday.Add(7*time.Hour)),
		logAt(6, monday.Add(11*time.Hour)),
		logAt(6, monday.Add(14*time.Hour)),
		logAt(2, tuesday.Add(8*time.Hour)),
		logAt(2, tuesday.Add(18*time.Hour)),
	}

	insights := ComputePredictiveInsights(weekly)

	assert.Contains(t, insights, "Monday seems to be your driest day. Plan extra hydration!")
}

func TestComputePredictiveInsightsFrequencyNudge(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	weekly := []Log{
		logAt(3, monday.Add(8*time.Hour)),
		logAt(3, monday.Add(12*time.Hour)),
		logAt(3, monday.Add(18*time.Hour)),
		logAt(3, tuesday.Add(8*time.Hour)),
		logAt(3, tuesday.Add(18*time.Hour)),
	}

	insights := ComputePredictiveInsights(weekly)

	require.Len(t, insights, 1)
	assert.Equal(t, "You're averaging 3 logs/day. Try to track 6-8 times for better insights.", insights[0])
}
