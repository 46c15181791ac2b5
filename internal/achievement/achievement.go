package achievement

import (
	"time"

	"github.com/google/uuid"
)

type Key string

const (
	KeyFirstLog          Key = "first_log"
	KeyHydrationStreak3  Key = "hydration_streak_3"
	KeyGoldenFlow        Key = "golden_flow"
	KeyRehydrationMaster Key = "rehydration_master"
	KeyConsistencyKing   Key = "consistency_king"
	KeyEarlyBird         Key = "early_bird"
	KeyWeekWarrior       Key = "week_warrior"
	KeyColorRainbow      Key = "color_rainbow"
	KeyNightOwl          Key = "night_owl"
	KeyHydroGoal         Key = "hydro_goal"
	KeyHydroStreak3      Key = "hydro_streak_3"
)

type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

type Definition struct {
	Key         Key    `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        Tier   `json:"tier"`
}

// Definitions is the closed set of unlockable achievements. Order here is the
// display order.
var Definitions = []Definition{
	{Key: KeyFirstLog, Name: "FIRST DROP", Description: "Log your first urine color", Icon: "\U0001F4A7", Tier: TierBronze},
	{Key: KeyHydrationStreak3, Name: "TRIPLE STREAM", Description: "3 optimal logs in a row", Icon: "\U0001F4AA", Tier: TierBronze},
	{Key: KeyGoldenFlow, Name: "GOLDEN FLOW", Description: "7 optimal logs in a row", Icon: "\U0001F31F", Tier: TierGold},
	{Key: KeyRehydrationMaster, Name: "REHYDRATION MASTER", Description: "Go from amber to clear in 2 hours", Icon: "⚡", Tier: TierGold},
	{Key: KeyConsistencyKing, Name: "CONSISTENCY KING", Description: "Log every day for 7 straight days", Icon: "\U0001F451", Tier: TierSilver},
	{Key: KeyEarlyBird, Name: "EARLY BIRD", Description: "Log before 8am, 5 times", Icon: "\U0001F305", Tier: TierBronze},
	{Key: KeyWeekWarrior, Name: "WEEK WARRIOR", Description: "7 days with 6+ logs each", Icon: "\U0001F6E1", Tier: TierGold},
	{Key: KeyColorRainbow, Name: "FULL SPECTRUM", Description: "Log all 8 colors at least once", Icon: "\U0001F308", Tier: TierSilver},
	{Key: KeyNightOwl, Name: "NIGHT OWL", Description: "Log after 10pm, 5 times", Icon: "\U0001F319", Tier: TierBronze},
	{Key: KeyHydroGoal, Name: "FULL TANK", Description: "Reach your daily hydration goal", Icon: "\U0001F680", Tier: TierBronze},
	{Key: KeyHydroStreak3, Name: "CONSISTENT FLOW", Description: "Hit your daily goal for 3 straight days", Icon: "\U0001F30A", Tier: TierSilver},
}

func Lookup(key Key) (Definition, bool) {
	for _, def := range Definitions {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}

// XPBonus returns the fixed XP reward for unlocking an achievement of the
// given tier.
func XPBonus(tier Tier) int {
	switch tier {
	case TierGold:
		return 100
	case TierSilver:
		return 50
	default:
		return 25
	}
}

type Unlock struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Key        Key       `json:"achievement_key" db:"achievement_key"`
	UnlockedAt time.Time `json:"unlocked_at" db:"unlocked_at"`
}

type WithStatus struct {
	Definition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
