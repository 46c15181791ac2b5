package urine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydroQuestAPI/internal/medication"
)

func alertTypes(alerts []Alert) []AlertType {
	types := make([]AlertType, 0, len(alerts))
	for _, a := range alerts {
		types = append(types, a.Type)
	}
	return types
}

func TestComputeHealthAlertsDarkDespiteHydration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{
		logAt(5, now.Add(-2*time.Hour)),
		logAt(6, now.Add(-1*time.Hour)),
	}

	alerts := ComputeHealthAlerts(today, nil, 1600, nil, now)

	assert.Contains(t, alertTypes(alerts), AlertDarkDespiteHydration)
}

func TestComputeHealthAlertsDarkRequiresHighIntake(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{
		logAt(5, now.Add(-2*time.Hour)),
		logAt(6, now.Add(-1*time.Hour)),
	}

	alerts := ComputeHealthAlerts(today, nil, 1500, nil, now)

	assert.NotContains(t, alertTypes(alerts), AlertDarkDespiteHydration)
}

func TestComputeHealthAlertsExcessiveFrequency(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	var today []Log
	for i := 0; i < 11; i++ {
		today = append(today, logAt(3, now.Add(-time.Duration(i)*time.Hour)))
	}

	alerts := ComputeHealthAlerts(today, nil, 0, nil, now)

	assert.Contains(t, alertTypes(alerts), AlertExcessiveFrequency)
}

func TestComputeHealthAlertsDiureticSuppressesFrequencyAlert(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	var today []Log
	for i := 0; i < 11; i++ {
		today = append(today, logAt(3, now.Add(-time.Duration(i)*time.Hour)))
	}
	meds := []medication.Medication{{Name: "Lasix 40mg"}}

	alerts := ComputeHealthAlerts(today, nil, 0, meds, now)

	types := alertTypes(alerts)
	assert.NotContains(t, types, AlertExcessiveFrequency)
	assert.Contains(t, types, AlertMedicationNote)
}

func TestComputeHealthAlertsNoUrination(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	// Logs out of chronological order: the rule must find the latest one.
	today := []Log{
		logAt(3, now.Add(-9*time.Hour)),
		logAt(3, now.Add(-12*time.Hour)),
	}

	alerts := ComputeHealthAlerts(today, nil, 0, nil, now)

	var found *Alert
	for i := range alerts {
		if alerts[i].Type == AlertNoUrination {
			found = &alerts[i]
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, SeverityCritical, found.Severity)
		assert.Contains(t, found.Message, "9 hours")
	}
}

func TestComputeHealthAlertsNoUrinationBoundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	today := []Log{logAt(3, now.Add(-(7*time.Hour + 59*time.Minute)))}

	alerts := ComputeHealthAlerts(today, nil, 0, nil, now)

	assert.NotContains(t, alertTypes(alerts), AlertNoUrination)
}

func TestComputeHealthAlertsBothMedicationNotes(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meds := []medication.Medication{
		{Name: "Furosemide"},
		{Name: "Multivitamin"},
	}

	alerts := ComputeHealthAlerts(nil, nil, 0, meds, now)

	noteCount := 0
	for _, a := range alerts {
		if a.Type == AlertMedicationNote {
			noteCount++
			assert.Equal(t, SeverityInfo, a.Severity)
		}
	}
	assert.Equal(t, 2, noteCount)
}

func TestComputeHealthAlertsWeeklyPersistentDehydration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	var weekly []Log
	for i := 0; i < 10; i++ {
		weekly = append(weekly, logAt(5, now.Add(-time.Duration(i*12)*time.Hour)))
	}

	alerts := ComputeHealthAlerts(nil, weekly, 0, nil, now)

	var found *Alert
	for i := range alerts {
		if alerts[i].Severity == SeverityCritical {
			found = &alerts[i]
		}
	}
	if assert.NotNil(t, found) {
		assert.Contains(t, found.Message, "weekly average")
	}
}

func TestCriticalAlertsFiltersBySeverity(t *testing.T) {
	alerts := []Alert{
		{Type: AlertMedicationNote, Severity: SeverityInfo, Message: "info"},
		{Type: AlertExcessiveFrequency, Severity: SeverityWarning, Message: "warning"},
		{Type: AlertNoUrination, Severity: SeverityCritical, Message: "critical"},
	}

	critical := CriticalAlerts(alerts)

	require.Len(t, critical, 1)
	assert.Equal(t, AlertNoUrination, critical[0].Type)

	assert.Empty(t, CriticalAlerts(alerts[:2]))
}

func TestComputeHealthAlertsQuietDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{logAt(2, now.Add(-1 * time.Hour))}

	alerts := ComputeHealthAlerts(today, today, 500, nil, now)

	assert.Empty(t, alerts)
}
