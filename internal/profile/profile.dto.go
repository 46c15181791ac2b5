package profile

type CreateProfileRequest struct {
	ClerkID   string `json:"clerkId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type UpdateProfileRequest struct {
	Username           string   `json:"username,omitempty"`
	AvatarURL          string   `json:"avatarUrl,omitempty"`
	WeightKg           *float64 `json:"weightKg,omitempty"`
	WeightUnit         string   `json:"weightUnit,omitempty"` // "kg" or "lbs"
	ActivityLevel      *string  `json:"activityLevel,omitempty"`
	Mission            *string  `json:"mission,omitempty"`
	DailyWaterGoalMl   *int     `json:"dailyWaterGoalMl,omitempty"`
	OnboardingComplete *bool    `json:"onboardingComplete,omitempty"`
}
