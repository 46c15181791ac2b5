// Package urine holds the rule engine behind the urine tracker: color
// taxonomy, contextual feedback, health alerts, achievement predicates and
// weekly pattern analysis. Everything in this package is a pure function of
// its inputs; the current time and any randomness are passed in explicitly so
// the rules stay deterministic under test.
package urine

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Volume string

const (
	VolumeSmall  Volume = "small"
	VolumeMedium Volume = "medium"
	VolumeLarge  Volume = "large"
)

// Log is a single observation on the 8-point color scale (1 = clearest).
// Logs are append-only; the engine never mutates them.
type Log struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	ColorScale int       `json:"color_scale" db:"color_scale"`
	Volume     *Volume   `json:"volume,omitempty" db:"volume"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

const dayFormat = "2006-01-02"

func dayKey(t time.Time) string {
	return t.Format(dayFormat)
}

func averageScale(logs []Log) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.ColorScale
	}
	return float64(sum) / float64(len(logs))
}

func sortedAscending(logs []Log) []Log {
	sorted := make([]Log, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

func sortedDescending(logs []Log) []Log {
	sorted := make([]Log, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
