package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hydroQuestAPI/internal/medication"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const medicationTakenXP = 10

type MedicationService struct {
	db       *pgxpool.Pool
	profiles *ProfileService
}

func NewMedicationService(db *pgxpool.Pool, profiles *ProfileService) *MedicationService {
	return &MedicationService{db: db, profiles: profiles}
}

func (s *MedicationService) ListMedications(ctx context.Context, clerkID string) ([]medication.Medication, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT id, user_id, name, dosage, schedule_time, type, created_at
	FROM medications
	WHERE user_id = $1
	ORDER BY schedule_time ASC
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

func (s *MedicationService) AddMedication(ctx context.Context, clerkID string, req *medication.CreateMedicationRequest) (*medication.Medication, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if req.Type != medication.TypePill && req.Type != medication.TypeLiquid {
		return nil, fmt.Errorf("invalid medication type: %s", req.Type)
	}

	m := &medication.Medication{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		ScheduleTime: req.ScheduleTime,
		Type:         req.Type,
		CreatedAt:    time.Now(),
	}

	query := `
	INSERT INTO medications (id, user_id, name, dosage, schedule_time, type, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = s.db.Exec(ctx, query, m.ID, m.UserID, m.Name, m.Dosage, m.ScheduleTime, m.Type, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add medication: %w", err)
	}

	return m, nil
}

func (s *MedicationService) RemoveMedication(ctx context.Context, clerkID string, medicationID string) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	medUUID, err := uuid.Parse(medicationID)
	if err != nil {
		return fmt.Errorf("invalid medication id")
	}

	result, err := s.db.Exec(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, medUUID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove medication: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("medication not found")
	}
	return nil
}

// LogIntake records today's taken/skipped status for a medication. The first
// "taken" of the day awards XP; re-logging the same day only updates the
// status.
func (s *MedicationService) LogIntake(ctx context.Context, clerkID string, req *medication.LogIntakeRequest) (*medication.IntakeLog, int, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, 0, fmt.Errorf("user not found: %w", err)
	}

	medUUID, err := uuid.Parse(req.MedicationID)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid medication id")
	}

	if req.Status != medication.StatusTaken && req.Status != medication.StatusSkipped {
		return nil, 0, fmt.Errorf("invalid intake status: %s", req.Status)
	}

	var existingStatus medication.IntakeStatus
	firstLogToday := false
	err = s.db.QueryRow(ctx, `
		SELECT status FROM medication_logs
		WHERE user_id = $1 AND medication_id = $2 AND taken_at_date = CURRENT_DATE
	`, userID, medUUID).Scan(&existingStatus)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("failed to check intake log: %w", err)
		}
		firstLogToday = true
	}

	intake := &medication.IntakeLog{}
	query := `
	INSERT INTO medication_logs (id, user_id, medication_id, taken_at_date, status, created_at)
	VALUES ($1, $2, $3, CURRENT_DATE, $4, NOW())
	ON CONFLICT (user_id, medication_id, taken_at_date)
	DO UPDATE SET status = $4
	RETURNING id, user_id, medication_id, taken_at_date, status, created_at
	`

	err = s.db.QueryRow(ctx, query, uuid.New(), userID, medUUID, req.Status).Scan(
		&intake.ID,
		&intake.UserID,
		&intake.MedicationID,
		&intake.TakenAtDate,
		&intake.Status,
		&intake.CreatedAt,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to log intake: %w", err)
	}

	xpGained := 0
	if firstLogToday && req.Status == medication.StatusTaken {
		xpGained = medicationTakenXP
		if err := s.profiles.ApplyXPDelta(ctx, userID, xpGained); err != nil {
			return nil, 0, err
		}
	}

	return intake, xpGained, nil
}
