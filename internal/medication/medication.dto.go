package medication

type CreateMedicationRequest struct {
	Name         string  `json:"name" validate:"required"`
	Dosage       *string `json:"dosage,omitempty"`
	ScheduleTime string  `json:"scheduleTime" validate:"required"`
	Type         Type    `json:"type" validate:"required"`
}

type LogIntakeRequest struct {
	MedicationID string       `json:"medicationId" validate:"required"`
	Status       IntakeStatus `json:"status" validate:"required"`
}
