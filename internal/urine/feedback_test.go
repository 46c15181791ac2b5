package urine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hydroQuestAPI/internal/medication"
)

func logAt(scale int, t time.Time) Log {
	return Log{ColorScale: scale, CreatedAt: t}
}

func firstPick(n int) int { return 0 }

func TestGenerateFeedbackSevereDehydration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	fb := GenerateFeedback(7, nil, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackWarning, fb.Type)
	assert.Contains(t, fb.Message, "SEVERE DEHYDRATION")
}

func TestGenerateFeedbackSignificantDehydration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	fb := GenerateFeedback(5, nil, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackWarning, fb.Type)
	assert.Contains(t, fb.Message, "SIGNIFICANT DEHYDRATION")
}

func TestGenerateFeedbackOptimalStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{
		logAt(2, now.Add(-3*time.Hour)),
		logAt(1, now.Add(-1*time.Hour)),
	}

	fb := GenerateFeedback(2, today, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackStreak, fb.Type)
	assert.Contains(t, fb.Message, "OPTIMAL STREAK")
}

func TestGenerateFeedbackStreakOutranksReminder(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	// Last log is 5 hours old, which would also satisfy the reminder rule.
	today := []Log{
		logAt(1, now.Add(-7*time.Hour)),
		logAt(2, now.Add(-5*time.Hour)),
	}

	fb := GenerateFeedback(1, today, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackStreak, fb.Type)
}

func TestGenerateFeedbackMedicationNote(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meds := []medication.Medication{{Name: "Vitamin B Complex"}}

	fb := GenerateFeedback(4, nil, nil, now, meds, firstPick)

	assert.Equal(t, FeedbackMedNote, fb.Type)
	assert.Contains(t, fb.Message, "bright yellow")
}

func TestGenerateFeedbackMedicationNoteIgnoredOutsideMidRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meds := []medication.Medication{{Name: "Vitamin B Complex"}}

	fb := GenerateFeedback(7, nil, nil, now, meds, firstPick)

	assert.Equal(t, FeedbackWarning, fb.Type)
}

func TestGenerateFeedbackReminder(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{logAt(3, now.Add(-5 * time.Hour))}

	fb := GenerateFeedback(3, today, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackReminder, fb.Type)
	assert.Contains(t, fb.Message, "5 hours")
}

func TestGenerateFeedbackEncouragementUsesPicker(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i, want := range encouragementMessages {
		idx := i
		fb := GenerateFeedback(1, nil, nil, now, nil, func(n int) int { return idx })
		assert.Equal(t, FeedbackEncouragement, fb.Type)
		assert.Equal(t, want, fb.Message)
	}
}

func TestGenerateFeedbackMinimalDehydration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := []Log{logAt(3, now.Add(-1 * time.Hour))}

	fb := GenerateFeedback(4, today, nil, now, nil, firstPick)

	assert.Equal(t, FeedbackEncouragement, fb.Type)
	assert.Contains(t, fb.Message, "Minimal dehydration")
}
