package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hydroQuestAPI/middleware"
	"hydroQuestAPI/services"
)

type HydrationHandler struct {
	hydrationService *services.HydrationService
}

func NewHydrationHandler(hydrationService *services.HydrationService) *HydrationHandler {
	return &HydrationHandler{
		hydrationService: hydrationService,
	}
}

func (h *HydrationHandler) AddWater(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		AmountMl int `json:"amountMl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.AmountMl <= 0 {
		respondWithError(w, http.StatusBadRequest, "amountMl must be positive")
		return
	}

	result, err := h.hydrationService.AddWater(ctx, clerkID, req.AmountMl)
	if err != nil {
		log.Printf("AddWater Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save water log")
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}

func (h *HydrationHandler) GetDailyTotal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	total, err := h.hydrationService.GetDailyTotal(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"dailyTotalMl": total})
}

func (h *HydrationHandler) GetWeeklyTotals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	totals, err := h.hydrationService.GetWeeklyTotals(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, totals)
}
