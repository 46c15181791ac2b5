package services

import (
	"context"
	"fmt"
	"time"

	"hydroQuestAPI/internal/achievement"
	"hydroQuestAPI/internal/hydration"
	"hydroQuestAPI/internal/urine"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const waterLogXP = 5

type HydrationService struct {
	db            *pgxpool.Pool
	profiles      *ProfileService
	notifications *NotificationService
}

func NewHydrationService(db *pgxpool.Pool, profiles *ProfileService, notifications *NotificationService) *HydrationService {
	return &HydrationService{db: db, profiles: profiles, notifications: notifications}
}

type AddWaterResult struct {
	Log             hydration.Log            `json:"log"`
	DailyTotalMl    int                      `json:"dailyTotalMl"`
	GoalMl          int                      `json:"goalMl"`
	NewAchievements []achievement.Definition `json:"newAchievements"`
	XPGained        int                      `json:"xpGained"`
}

// AddWater logs a water intake, then evaluates the hydration-goal
// achievements against the updated daily totals. Unlock persistence follows
// the same sequential exactly-once path as urine-log achievements.
func (s *HydrationService) AddWater(ctx context.Context, clerkID string, amountMl int) (*AddWaterResult, error) {
	if amountMl <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	var userID uuid.UUID
	var goalMl int
	err := s.db.QueryRow(ctx, `SELECT id, daily_water_goal_ml FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID, &goalMl)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	newLog := hydration.Log{
		ID:        uuid.New(),
		UserID:    userID,
		AmountMl:  amountMl,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO hydration_logs (id, user_id, amount_ml, created_at) VALUES ($1, $2, $3, $4)`,
		newLog.ID, newLog.UserID, newLog.AmountMl, newLog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save hydration log: %w", err)
	}

	weeklyTotals, err := s.weeklyTotals(ctx, userID, newLog.CreatedAt)
	if err != nil {
		return nil, err
	}
	dailyTotal := weeklyTotals[len(weeklyTotals)-1].AmountMl

	existing, err := s.unlocks(ctx, userID)
	if err != nil {
		return nil, err
	}

	newKeys := urine.CheckHydrationAchievements(dailyTotal, goalMl, weeklyTotals, existing)

	xpGained := waterLogXP
	newDefs, bonusXP, err := s.persistUnlocks(ctx, userID, newKeys)
	if err != nil {
		return nil, err
	}
	xpGained += bonusXP

	if err := s.profiles.ApplyXPDelta(ctx, userID, xpGained); err != nil {
		return nil, err
	}

	return &AddWaterResult{
		Log:             newLog,
		DailyTotalMl:    dailyTotal,
		GoalMl:          goalMl,
		NewAchievements: newDefs,
		XPGained:        xpGained,
	}, nil
}

func (s *HydrationService) GetDailyTotal(ctx context.Context, clerkID string) (int, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("user not found: %w", err)
	}

	var total int
	err = s.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_ml), 0) FROM hydration_logs WHERE user_id = $1 AND created_at >= $2`,
		userID, startOfDay(time.Now())).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily hydration total: %w", err)
	}
	return total, nil
}

func (s *HydrationService) GetWeeklyTotals(ctx context.Context, clerkID string) ([]hydration.DailyTotal, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return s.weeklyTotals(ctx, userID, time.Now())
}

// weeklyTotals returns one entry per calendar day for the 7 days ending now,
// oldest first, with zero-filled gaps.
func (s *HydrationService) weeklyTotals(ctx context.Context, userID uuid.UUID, now time.Time) ([]hydration.DailyTotal, error) {
	since := startOfDay(now).AddDate(0, 0, -6)

	query := `
	SELECT created_at, amount_ml
	FROM hydration_logs
	WHERE user_id = $1 AND created_at >= $2
	`

	rows, err := s.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hydration logs: %w", err)
	}
	defer rows.Close()

	perDay := make(map[string]int)
	for rows.Next() {
		var createdAt time.Time
		var amount int
		if err := rows.Scan(&createdAt, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan hydration log: %w", err)
		}
		perDay[createdAt.Format("2006-01-02")] += amount
	}

	totals := make([]hydration.DailyTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		totals = append(totals, hydration.DailyTotal{Date: date, AmountMl: perDay[date]})
	}

	return totals, nil
}

func (s *HydrationService) unlocks(ctx context.Context, userID uuid.UUID) ([]achievement.Unlock, error) {
	query := `
	SELECT id, user_id, achievement_key, unlocked_at
	FROM urine_achievements
	WHERE user_id = $1
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievement unlocks: %w", err)
	}
	defer rows.Close()

	var unlocks []achievement.Unlock
	for rows.Next() {
		var u achievement.Unlock
		if err := rows.Scan(&u.ID, &u.UserID, &u.Key, &u.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement unlock: %w", err)
		}
		unlocks = append(unlocks, u)
	}

	return unlocks, nil
}

func (s *HydrationService) persistUnlocks(ctx context.Context, userID uuid.UUID, keys []achievement.Key) ([]achievement.Definition, int, error) {
	var defs []achievement.Definition
	totalBonus := 0

	for _, key := range keys {
		def, ok := achievement.Lookup(key)
		if !ok {
			continue
		}

		query := `
		INSERT INTO urine_achievements (id, user_id, achievement_key, unlocked_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, achievement_key) DO NOTHING
		`

		result, err := s.db.Exec(ctx, query, uuid.New(), userID, key)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to persist achievement unlock %s: %w", key, err)
		}
		if result.RowsAffected() == 0 {
			continue
		}

		defs = append(defs, def)
		totalBonus += achievement.XPBonus(def.Tier)
		s.notifications.NotifyAchievementUnlocked(ctx, userID, def)
	}

	return defs, totalBonus, nil
}
