package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hydroQuestAPI/internal/medication"
	"hydroQuestAPI/middleware"
	"hydroQuestAPI/services"

	"github.com/gorilla/mux"
)

type MedicationHandler struct {
	medicationService *services.MedicationService
}

func NewMedicationHandler(medicationService *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		medicationService: medicationService,
	}
}

func (h *MedicationHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	meds, err := h.medicationService.ListMedications(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if meds == nil {
		meds = []medication.Medication{}
	}
	respondWithJSON(w, http.StatusOK, meds)
}

func (h *MedicationHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req medication.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	med, err := h.medicationService.AddMedication(ctx, clerkID, &req)
	if err != nil {
		log.Printf("AddMedication Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add medication")
		return
	}

	respondWithJSON(w, http.StatusCreated, med)
}

func (h *MedicationHandler) RemoveMedication(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	medicationID := mux.Vars(r)["id"]
	if medicationID == "" {
		respondWithError(w, http.StatusBadRequest, "medication id is required")
		return
	}

	if err := h.medicationService.RemoveMedication(ctx, clerkID, medicationID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *MedicationHandler) LogIntake(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req medication.LogIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	intake, xpGained, err := h.medicationService.LogIntake(ctx, clerkID, &req)
	if err != nil {
		log.Printf("LogIntake Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log medication intake")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"log":      intake,
		"xpGained": xpGained,
	})
}
