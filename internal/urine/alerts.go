package urine

import (
	"fmt"
	"time"

	"hydroQuestAPI/internal/medication"
)

type AlertType string

const (
	AlertDarkDespiteHydration AlertType = "dark_despite_hydration"
	AlertExcessiveFrequency   AlertType = "excessive_frequency"
	AlertNoUrination          AlertType = "no_urination"
	AlertMedicationNote       AlertType = "medication_note"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

type Alert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// CriticalAlerts filters to the alerts worth a persistent notification; the
// info and warning tiers stay in the transient health-summary view only.
func CriticalAlerts(alerts []Alert) []Alert {
	var critical []Alert
	for _, a := range alerts {
		if a.Severity == SeverityCritical {
			critical = append(critical, a)
		}
	}
	return critical
}

// ComputeHealthAlerts evaluates every alert rule independently against the
// day and week snapshots; all qualifying alerts are returned.
func ComputeHealthAlerts(todayLogs, weeklyLogs []Log, dailyHydrationMl int, medications []medication.Medication, now time.Time) []Alert {
	var alerts []Alert

	// Dark urine despite high water intake.
	if len(todayLogs) >= 2 && dailyHydrationMl > 1500 {
		if averageScale(todayLogs) >= 5 {
			alerts = append(alerts, Alert{
				Type:     AlertDarkDespiteHydration,
				Severity: SeverityWarning,
				Message:  "Your urine is dark despite good water intake. This could indicate other factors. Consider talking to your doctor.",
			})
		}
	}

	// Excessive frequency, unless a diuretic explains it.
	if len(todayLogs) > 10 && !HasDiuretics(medications) {
		alerts = append(alerts, Alert{
			Type:     AlertExcessiveFrequency,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("You've logged %d times today (normal: 6-8). If this persists, consult a healthcare provider.", len(todayLogs)),
		})
	}

	// No log in 8+ hours. The latest log is found by timestamp, not by
	// position in the slice.
	if len(todayLogs) > 0 {
		latest := todayLogs[0]
		for _, l := range todayLogs[1:] {
			if l.CreatedAt.After(latest.CreatedAt) {
				latest = l
			}
		}
		hoursSince := now.Sub(latest.CreatedAt).Hours()
		if hoursSince >= 8 {
			alerts = append(alerts, Alert{
				Type:     AlertNoUrination,
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("No log in %d hours. Ensure you're drinking enough water. If you can't urinate, seek medical attention.", int(hoursSince)),
			})
		}
	}

	// Medication notes fire independently of each other.
	if HasDiuretics(medications) {
		alerts = append(alerts, Alert{
			Type:     AlertMedicationNote,
			Severity: SeverityInfo,
			Message:  "You're taking a diuretic. Increased frequency (8-10+ times/day) may be expected.",
		})
	}
	if HasVitamins(medications) {
		alerts = append(alerts, Alert{
			Type:     AlertMedicationNote,
			Severity: SeverityInfo,
			Message:  "Vitamins (especially B-complex) can make urine bright yellow. This is normal!",
		})
	}

	// Persistently dark across the week.
	if len(weeklyLogs) >= 10 && averageScale(weeklyLogs) >= 5.0 {
		alerts = append(alerts, Alert{
			Type:     AlertDarkDespiteHydration,
			Severity: SeverityCritical,
			Message:  "Your weekly average shows persistent significant dehydration. Please increase your baseline fluid intake.",
		})
	}

	return alerts
}
