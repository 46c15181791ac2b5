package urine

import "hydroQuestAPI/internal/achievement"

type AddLogRequest struct {
	ColorScale int     `json:"colorScale" validate:"required,min=1,max=8"`
	Volume     *Volume `json:"volume,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// LogResult is the full response to a submitted log: the persisted entry plus
// everything the rule engine derived from it.
type LogResult struct {
	Log             Log                      `json:"log"`
	Feedback        Feedback                 `json:"feedback"`
	Alerts          []Alert                  `json:"alerts"`
	NewAchievements []achievement.Definition `json:"newAchievements"`
	XPGained        int                      `json:"xpGained"`
}
