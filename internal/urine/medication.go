package urine

import (
	"fmt"
	"strings"

	"hydroQuestAPI/internal/medication"
)

// Keyword matching is a deliberate heuristic over free-text medication names.
// Substring matches (including false positives like a brand name containing
// "vitamin") are part of the documented behavior.
var diureticKeywords = []string{"furosemide", "hydrochlorothiazide", "diuretic", "lasix", "spironolactone"}
var vitaminKeywords = []string{"vitamin", "b-complex", "b12", "multivitamin", "b2", "riboflavin"}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func HasDiuretics(medications []medication.Medication) bool {
	for _, m := range medications {
		if matchesAny(m.Name, diureticKeywords) {
			return true
		}
	}
	return false
}

func HasVitamins(medications []medication.Medication) bool {
	for _, m := range medications {
		if matchesAny(m.Name, vitaminKeywords) {
			return true
		}
	}
	return false
}

// MedicationNote returns an advisory note for the active medication list, or
// "" when nothing relevant is present.
func MedicationNote(medications []medication.Medication) string {
	hasVitamins := HasVitamins(medications)
	hasDiuretics := HasDiuretics(medications)

	switch {
	case hasVitamins && hasDiuretics:
		return "Note: Vitamins can cause bright yellow urine (normal), and diuretics increase frequency."
	case hasVitamins:
		return "Note: Vitamins (especially B-complex) can make urine bright yellow - this is normal!"
	case hasDiuretics:
		return "Note: Your diuretic may increase urination frequency. 8-10+ times/day can be expected."
	default:
		return ""
	}
}

type FrequencyLevel string

const (
	FrequencyLow    FrequencyLevel = "low"
	FrequencyNormal FrequencyLevel = "normal"
	FrequencyHigh   FrequencyLevel = "high"
)

type FrequencyStatus struct {
	Label  string         `json:"label"`
	Status FrequencyLevel `json:"status"`
}

// Frequency rates today's log count against the expected daily range, which
// shifts from 6-8 to 8-12 when a diuretic is active.
func Frequency(count int, hasDiuretics bool) FrequencyStatus {
	normalMin, normalMax := 6, 8
	if hasDiuretics {
		normalMin, normalMax = 8, 12
	}

	status := FrequencyNormal
	if count < normalMin {
		status = FrequencyLow
	} else if count > normalMax {
		status = FrequencyHigh
	}

	return FrequencyStatus{
		Label:  fmt.Sprintf("%d/%d-%d", count, normalMin, normalMax),
		Status: status,
	}
}
