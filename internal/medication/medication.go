package medication

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePill   Type = "pill"
	TypeLiquid Type = "liquid"
)

type IntakeStatus string

const (
	StatusTaken   IntakeStatus = "taken"
	StatusSkipped IntakeStatus = "skipped"
)

type Medication struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Dosage       *string   `json:"dosage,omitempty" db:"dosage"`
	ScheduleTime string    `json:"schedule_time" db:"schedule_time"`
	Type         Type      `json:"type" db:"type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type IntakeLog struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	UserID       uuid.UUID    `json:"user_id" db:"user_id"`
	MedicationID uuid.UUID    `json:"medication_id" db:"medication_id"`
	TakenAtDate  time.Time    `json:"taken_at_date" db:"taken_at_date"`
	Status       IntakeStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}
