package urine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"hydroQuestAPI/internal/medication"
)

type FeedbackClass string

const (
	FeedbackWarning       FeedbackClass = "warning"
	FeedbackStreak        FeedbackClass = "streak"
	FeedbackMedNote       FeedbackClass = "med_note"
	FeedbackReminder      FeedbackClass = "reminder"
	FeedbackEncouragement FeedbackClass = "encouragement"
)

// Feedback is the single contextual message shown after a log is submitted.
type Feedback struct {
	Message string        `json:"message"`
	Type    FeedbackClass `json:"type"`
	Icon    string        `json:"icon"`
}

var encouragementMessages = []string{
	"PERFECT HYDRATION! Your kidneys are running at full power!",
	"CRYSTAL CLEAR! Your filtration system is in peak condition!",
	"OPTIMAL LEVELS! You're a hydration superhero!",
}

// Picker selects an index in [0, n). Inject a fixed picker in tests to pin
// down the encouragement message.
type Picker func(n int) int

func RandomPicker(n int) int {
	return rand.IntN(n)
}

type feedbackInput struct {
	scale   int
	recent  []Log // today's logs, newest first
	now     time.Time
	medNote string
	pick    Picker
}

type feedbackRule struct {
	match   func(in feedbackInput) bool
	produce func(in feedbackInput) Feedback
}

// feedbackRules is evaluated top to bottom, first match wins. The ordering is
// the priority policy: severity outranks streaks, streaks outrank medication
// notes, and encouragement is only reached when nothing else applies.
var feedbackRules = []feedbackRule{
	{
		match: func(in feedbackInput) bool { return in.scale >= 7 },
		produce: func(in feedbackInput) Feedback {
			return Feedback{
				Message: "SEVERE DEHYDRATION! Drink at least 500ml of water immediately. Your body is in a water-saving crisis.",
				Type:    FeedbackWarning,
				Icon:    "\U0001F6A8",
			}
		},
	},
	{
		match: func(in feedbackInput) bool { return in.scale >= 5 },
		produce: func(in feedbackInput) Feedback {
			return Feedback{
				Message: "SIGNIFICANT DEHYDRATION DETECTED. Drink water soon to rehydrate and avoid fatigue or headaches.",
				Type:    FeedbackWarning,
				Icon:    "⚠️",
			}
		},
	},
	{
		match: func(in feedbackInput) bool {
			if in.scale > 2 || len(in.recent) < 2 {
				return false
			}
			return in.recent[0].ColorScale <= 2 && in.recent[1].ColorScale <= 2
		},
		produce: func(in feedbackInput) Feedback {
			return Feedback{
				Message: "OPTIMAL STREAK! 3+ perfect readings in a row! Keep it flowing!",
				Type:    FeedbackStreak,
				Icon:    "\U0001F525",
			}
		},
	},
	{
		match: func(in feedbackInput) bool {
			return in.medNote != "" && in.scale >= 3 && in.scale <= 5
		},
		produce: func(in feedbackInput) Feedback {
			return Feedback{Message: in.medNote, Type: FeedbackMedNote, Icon: "\U0001F48A"}
		},
	},
	{
		match: func(in feedbackInput) bool {
			return len(in.recent) > 0 && in.now.Sub(in.recent[0].CreatedAt).Hours() >= 4
		},
		produce: func(in feedbackInput) Feedback {
			hours := int(in.now.Sub(in.recent[0].CreatedAt).Hours())
			return Feedback{
				Message: fmt.Sprintf("CHECK-IN TIME! It's been %d hours since your last log.", hours),
				Type:    FeedbackReminder,
				Icon:    "⏰",
			}
		},
	},
	{
		match: func(in feedbackInput) bool { return in.scale <= 2 },
		produce: func(in feedbackInput) Feedback {
			return Feedback{
				Message: encouragementMessages[in.pick(len(encouragementMessages))],
				Type:    FeedbackEncouragement,
				Icon:    "\U0001F4AA",
			}
		},
	},
	{
		match: func(in feedbackInput) bool { return in.scale <= 4 },
		produce: func(in feedbackInput) Feedback {
			return Feedback{
				Message: "Minimal dehydration detected. Keep sipping to return to the optimal green zone.",
				Type:    FeedbackEncouragement,
				Icon:    "✅",
			}
		},
	},
}

var feedbackFallback = Feedback{
	Message: "Your body is signaling dehydration. Time to drink up!",
	Type:    FeedbackWarning,
	Icon:    "\U0001F4A7",
}

// GenerateFeedback produces the contextual message for a freshly submitted
// scale value. todayLogs are the prior logs of the local calendar day (any
// order); weeklyLogs are accepted for signature parity with the other engines
// but no current rule consults them.
func GenerateFeedback(scale int, todayLogs, weeklyLogs []Log, now time.Time, medications []medication.Medication, pick Picker) Feedback {
	_ = weeklyLogs

	in := feedbackInput{
		scale:   scale,
		recent:  sortedDescending(todayLogs),
		now:     now,
		medNote: MedicationNote(medications),
		pick:    pick,
	}

	for _, rule := range feedbackRules {
		if rule.match(in) {
			return rule.produce(in)
		}
	}
	return feedbackFallback
}
