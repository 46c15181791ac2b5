package profile

import "time"

type Profile struct {
	ID                 string    `json:"id"`
	ClerkID            string    `json:"clerkId"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	AvatarURL          string    `json:"avatarUrl,omitempty"`
	WeightKg           *float64  `json:"weightKg,omitempty"`
	ActivityLevel      *string   `json:"activityLevel,omitempty"`
	Mission            *string   `json:"mission,omitempty"`
	DailyWaterGoalMl   int       `json:"dailyWaterGoalMl"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	XP                 int       `json:"xp"`
	Level              int       `json:"level"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
