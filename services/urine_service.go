package services

import (
	"context"
	"fmt"
	"time"

	"hydroQuestAPI/internal/achievement"
	"hydroQuestAPI/internal/medication"
	"hydroQuestAPI/internal/urine"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UrineService struct {
	db            *pgxpool.Pool
	profiles      *ProfileService
	notifications *NotificationService
}

func NewUrineService(db *pgxpool.Pool, profiles *ProfileService, notifications *NotificationService) *UrineService {
	return &UrineService{db: db, profiles: profiles, notifications: notifications}
}

// AddLog persists a new observation and runs the full rule chain against the
// updated snapshot: feedback, then health alerts, then achievement checks.
// Unlocks are persisted one at a time, in predicate order, so simultaneous
// qualifications land deterministically. An unlock-write failure is returned
// to the caller rather than logged and skipped: XP and toasts must never
// outrun the durable unlock record.
func (s *UrineService) AddLog(ctx context.Context, clerkID string, req *urine.AddLogRequest) (*urine.LogResult, error) {
	if req.ColorScale < 1 || req.ColorScale > 8 {
		return nil, fmt.Errorf("color scale must be between 1 and 8")
	}

	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	now := time.Now()

	// Snapshot of the prior history; feedback rules distinguish the new
	// reading from what came before it.
	todayLogs, err := s.logsSince(ctx, userID, startOfDay(now))
	if err != nil {
		return nil, err
	}
	weeklyLogs, err := s.logsSince(ctx, userID, startOfDay(now).AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}

	newLog := urine.Log{
		ID:         uuid.New(),
		UserID:     userID,
		ColorScale: req.ColorScale,
		Volume:     req.Volume,
		Notes:      req.Notes,
		CreatedAt:  now,
	}

	query := `
	INSERT INTO urine_logs (id, user_id, color_scale, volume, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = s.db.Exec(ctx, query, newLog.ID, newLog.UserID, newLog.ColorScale, newLog.Volume, newLog.Notes, newLog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save urine log: %w", err)
	}

	medications, err := s.activeMedications(ctx, userID)
	if err != nil {
		return nil, err
	}

	dailyHydration, err := s.dailyHydrationMl(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	feedback := urine.GenerateFeedback(req.ColorScale, todayLogs, weeklyLogs, now, medications, urine.RandomPicker)

	updatedToday := append(todayLogs, newLog)
	updatedWeekly := append(weeklyLogs, newLog)

	alerts := urine.ComputeHealthAlerts(updatedToday, updatedWeekly, dailyHydration, medications, now)

	for _, a := range urine.CriticalAlerts(alerts) {
		s.notifications.NotifyHealthAlert(ctx, userID, string(a.Type), string(a.Severity), a.Message)
	}

	existing, err := s.unlocks(ctx, userID)
	if err != nil {
		return nil, err
	}

	newKeys := urine.CheckLogAchievements(updatedToday, updatedWeekly, existing)

	xpGained := urine.XPForScale(req.ColorScale)
	newDefs, bonusXP, err := s.persistUnlocks(ctx, userID, newKeys)
	if err != nil {
		return nil, err
	}
	xpGained += bonusXP

	if err := s.profiles.ApplyXPDelta(ctx, userID, xpGained); err != nil {
		return nil, err
	}

	return &urine.LogResult{
		Log:             newLog,
		Feedback:        feedback,
		Alerts:          alerts,
		NewAchievements: newDefs,
		XPGained:        xpGained,
	}, nil
}

// persistUnlocks writes unlock records sequentially. ON CONFLICT DO NOTHING
// gives at-most-once persistence per (user, key); a conflicting insert means
// another flow already unlocked the key, so it awards nothing here.
func (s *UrineService) persistUnlocks(ctx context.Context, userID uuid.UUID, keys []achievement.Key) ([]achievement.Definition, int, error) {
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

func (s *UrineService) GetTodayLogs(ctx context.Context, clerkID string) ([]urine.Log, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return s.logsSince(ctx, userID, startOfDay(time.Now()))
}

func (s *UrineService) GetWeeklyLogs(ctx context.Context, clerkID string) ([]urine.Log, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return s.logsSince(ctx, userID, startOfDay(time.Now()).AddDate(0, 0, -6))
}

func (s *UrineService) GetHealthAlerts(ctx context.Context, clerkID string) ([]urine.Alert, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayLogs, err := s.logsSince(ctx, userID, startOfDay(now))
	if err != nil {
		return nil, err
	}
	weeklyLogs, err := s.logsSince(ctx, userID, startOfDay(now).AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}
	medications, err := s.activeMedications(ctx, userID)
	if err != nil {
		return nil, err
	}
	dailyHydration, err := s.dailyHydrationMl(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return urine.ComputeHealthAlerts(todayLogs, weeklyLogs, dailyHydration, medications, now), nil
}

func (s *UrineService) GetInsights(ctx context.Context, clerkID string) ([]string, error) {
	weeklyLogs, err := s.GetWeeklyLogs(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return urine.ComputePredictiveInsights(weeklyLogs), nil
}

func (s *UrineService) GetHeatmap(ctx context.Context, clerkID string) ([]urine.HeatmapDay, error) {
	weeklyLogs, err := s.GetWeeklyLogs(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return urine.ComputeWeeklyHeatmap(weeklyLogs, time.Now()), nil
}

func (s *UrineService) GetFrequency(ctx context.Context, clerkID string) (*urine.FrequencyStatus, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	todayLogs, err := s.logsSince(ctx, userID, startOfDay(time.Now()))
	if err != nil {
		return nil, err
	}
	medications, err := s.activeMedications(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := urine.Frequency(len(todayLogs), urine.HasDiuretics(medications))
	return &status, nil
}

// GetAchievements joins the static definition table with the user's unlock
// records.
func (s *UrineService) GetAchievements(ctx context.Context, clerkID string) ([]achievement.WithStatus, error) {
	userID, err := s.userIDByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	existing, err := s.unlocks(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[achievement.Key]time.Time, len(existing))
	for _, u := range existing {
		unlockedAt[u.Key] = u.UnlockedAt
	}

	result := make([]achievement.WithStatus, 0, len(achievement.Definitions))
	for _, def := range achievement.Definitions {
		ws := achievement.WithStatus{Definition: def}
		if at, ok := unlockedAt[def.Key]; ok {
			ws.Unlocked = true
			t := at
			ws.UnlockedAt = &t
		}
		result = append(result, ws)
	}

	return result, nil
}

func (s *UrineService) userIDByClerkID(ctx context.Context, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user not found: %w", err)
	}
	return userID, nil
}

func (s *UrineService) logsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]urine.Log, error) {
	query := `
	SELECT id, user_id, color_scale, volume, notes, created_at
	FROM urine_logs
	WHERE user_id = $1 AND created_at >= $2
	ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch urine logs: %w", err)
	}
	defer rows.Close()

	var logs []urine.Log
	for rows.Next() {
		var l urine.Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.ColorScale, &l.Volume, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan urine log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, nil
}

func (s *UrineService) unlocks(ctx context.Context, userID uuid.UUID) ([]achievement.Unlock, error) {
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

func (s *UrineService) activeMedications(ctx context.Context, userID uuid.UUID) ([]medication.Medication, error) {
	query := `
	SELECT id, user_id, name, dosage, schedule_time, type, created_at
	FROM medications
	WHERE user_id = $1
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medications: %w", err)
	}
	defer rows.Close()

	var meds []medication.Medication
	for rows.Next() {
		var m medication.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.ScheduleTime, &m.Type, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		meds = append(meds, m)
	}

	return meds, nil
}

func (s *UrineService) dailyHydrationMl(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var total int
	query := `
	SELECT COALESCE(SUM(amount_ml), 0)
	FROM hydration_logs
	WHERE user_id = $1 AND created_at >= $2
	`

	err := s.db.QueryRow(ctx, query, userID, startOfDay(now)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily hydration total: %w", err)
	}
	return total, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
