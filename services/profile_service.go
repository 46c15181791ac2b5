package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hydroQuestAPI/internal/profile"
	"hydroQuestAPI/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileService struct {
	db *pgxpool.Pool
}

func NewProfileService(db *pgxpool.Pool) *ProfileService {
	return &ProfileService{db: db}
}

const profileColumns = `id, clerk_id, email, username, avatar_url, weight_kg, activity_level, mission, daily_water_goal_ml, onboarding_complete, xp, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.ClerkID,
		&p.Email,
		&p.Username,
		&p.AvatarURL,
		&p.WeightKg,
		&p.ActivityLevel,
		&p.Mission,
		&p.DailyWaterGoalMl,
		&p.OnboardingComplete,
		&p.XP,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Level = utils.LevelFromXP(p.XP)
	return p, nil
}

func (s *ProfileService) CreateProfile(ctx context.Context, req *profile.CreateProfileRequest) (*profile.Profile, error) {
	query := `
	INSERT INTO users (id, clerk_id, email, username, avatar_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + profileColumns

	now := time.Now()
	p, err := scanProfile(s.db.QueryRow(ctx, query, uuid.New().String(), req.ClerkID, req.Email, req.Username, req.AvatarURL, now, now))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) GetProfileByClerkID(ctx context.Context, clerkID string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE clerk_id = $1`

	p, err := scanProfile(s.db.QueryRow(ctx, query, clerkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) UpdateProfileByClerkID(ctx context.Context, clerkID string, req *profile.UpdateProfileRequest) (*profile.Profile, error) {
	var weightKg *float64
	if req.WeightKg != nil {
		converted := utils.ConvertToKg(*req.WeightKg, req.WeightUnit)
		weightKg = &converted
	}

	// A weight change recomputes the water goal unless the request pins an
	// explicit goal.
	goal := req.DailyWaterGoalMl
	if goal == nil && weightKg != nil {
		computed := utils.CalculateWaterGoal(*weightKg, "kg")
		goal = &computed
	}

	query := `
	UPDATE users
	SET
		username = COALESCE(NULLIF($2, ''), username),
		avatar_url = COALESCE(NULLIF($3, ''), avatar_url),
		weight_kg = COALESCE($4, weight_kg),
		activity_level = COALESCE($5, activity_level),
		mission = COALESCE($6, mission),
		daily_water_goal_ml = COALESCE($7, daily_water_goal_ml),
		onboarding_complete = COALESCE($8, onboarding_complete),
		updated_at = NOW()
	WHERE clerk_id = $1
	RETURNING ` + profileColumns

	p, err := scanProfile(s.db.QueryRow(ctx, query, clerkID, req.Username, req.AvatarURL, weightKg, req.ActivityLevel, req.Mission, goal, req.OnboardingComplete))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// ApplyXPDelta is the single write path for XP. The relative update keeps
// concurrent awards from different flows (urine logs, water logs, unlocks)
// from losing each other.
func (s *ProfileService) ApplyXPDelta(ctx context.Context, userID uuid.UUID, delta int) error {
	_, err := s.db.Exec(ctx, `UPDATE users SET xp = xp + $2, updated_at = NOW() WHERE id = $1`, userID, delta)
	if err != nil {
		return fmt.Errorf("failed to apply xp delta: %w", err)
	}
	return nil
}

func (s *ProfileService) DeleteProfileByClerkID(ctx context.Context, clerkID string) error {
	result, err := s.db.Exec(ctx, `DELETE FROM users WHERE clerk_id = $1`, clerkID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
