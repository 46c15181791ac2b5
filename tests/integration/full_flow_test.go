package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydroQuestAPI/handlers"
	"hydroQuestAPI/internal/urine"
	"hydroQuestAPI/middleware"
	"hydroQuestAPI/services"
	"hydroQuestAPI/tests/helpers"
)

// TestFullTrackingFlow simulates the complete flow: sign-up webhook, first
// urine log, water log, and account deletion.
func TestFullTrackingFlow(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	profileService := services.NewProfileService(pool)
	notificationService := services.NewNotificationService(pool)
	urineService := services.NewUrineService(pool, profileService, notificationService)
	hydrationService := services.NewHydrationService(pool, profileService, notificationService)

	profileHandler := handlers.NewProfileHandler(profileService)
	urineHandler := handlers.NewUrineHandler(urineService)
	hydrationHandler := handlers.NewHydrationHandler(hydrationService)
	webhookHandler := handlers.NewWebhookHandler(profileService)

	os.Setenv("CLERK_WEBHOOK_SECRET", "")
	defer os.Unsetenv("CLERK_WEBHOOK_SECRET")

	clerkID := "user_test_" + time.Now().Format("20060102150405")

	// Step 1: user signs up via Clerk
	t.Log("Step 1: User signs up")

	createPayload := helpers.MockClerkWebhookPayload("user.created", clerkID)
	req1 := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", bytes.NewReader(createPayload))
	rr1 := httptest.NewRecorder()

	webhookHandler.HandleClerkWebhook(rr1, req1)
	assert.Equal(t, http.StatusOK, rr1.Code, "Webhook should succeed")

	ctx := context.Background()
	p, err := profileService.GetProfileByClerkID(ctx, clerkID)
	require.NoError(t, err)
	assert.Equal(t, "test.user@example.com", p.Email)
	assert.Equal(t, 1, p.Level)

	// Step 2: user completes onboarding with their weight
	t.Log("Step 2: User sets weight")

	updateData := `{"weightKg": 154, "weightUnit": "lbs"}`
	req2 := httptest.NewRequest(http.MethodPut, "/api/v1/user/update-profile", strings.NewReader(updateData))
	req2.Header.Set("Content-Type", "application/json")
	req2 = req2.WithContext(context.WithValue(req2.Context(), middleware.ClerkIDKey, clerkID))
	rr2 := httptest.NewRecorder()

	profileHandler.UpdateProfile(rr2, req2)
	assert.Equal(t, http.StatusOK, rr2.Code)

	p, err = profileService.GetProfileByClerkID(ctx, clerkID)
	require.NoError(t, err)
	require.NotNil(t, p.WeightKg)
	assert.Equal(t, 69.9, *p.WeightKg)
	assert.Equal(t, 2447, p.DailyWaterGoalMl)

	// Step 3: first urine log unlocks the first achievement and awards XP
	t.Log("Step 3: First urine log")

	logData := `{"colorScale": 2}`
	req3 := httptest.NewRequest(http.MethodPost, "/api/v1/urine/log", strings.NewReader(logData))
	req3.Header.Set("Content-Type", "application/json")
	req3 = req3.WithContext(context.WithValue(req3.Context(), middleware.ClerkIDKey, clerkID))
	rr3 := httptest.NewRecorder()

	urineHandler.AddLog(rr3, req3)
	require.Equal(t, http.StatusCreated, rr3.Code)

	var result urine.LogResult
	require.NoError(t, json.Unmarshal(rr3.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Log.ColorScale)
	assert.NotEmpty(t, result.Feedback.Message)
	assert.NotEmpty(t, result.NewAchievements, "first log should unlock FIRST DROP")
	assert.Greater(t, result.XPGained, 0)

	// Step 4: the same achievement is not unlocked twice
	t.Log("Step 4: Second log does not re-unlock")

	req4 := httptest.NewRequest(http.MethodPost, "/api/v1/urine/log", strings.NewReader(logData))
	req4.Header.Set("Content-Type", "application/json")
	req4 = req4.WithContext(context.WithValue(req4.Context(), middleware.ClerkIDKey, clerkID))
	rr4 := httptest.NewRecorder()

	urineHandler.AddLog(rr4, req4)
	require.Equal(t, http.StatusCreated, rr4.Code)

	var result2 urine.LogResult
	require.NoError(t, json.Unmarshal(rr4.Body.Bytes(), &result2))
	for _, def := range result2.NewAchievements {
		assert.NotEqual(t, "FIRST DROP", def.Name)
	}

	// Step 5: today's logs are visible
	t.Log("Step 5: Fetch today's logs")

	req5 := httptest.NewRequest(http.MethodGet, "/api/v1/urine/logs/today", nil)
	req5 = req5.WithContext(context.WithValue(req5.Context(), middleware.ClerkIDKey, clerkID))
	rr5 := httptest.NewRecorder()

	urineHandler.GetTodayLogs(rr5, req5)
	assert.Equal(t, http.StatusOK, rr5.Code)

	var logs []urine.Log
	require.NoError(t, json.Unmarshal(rr5.Body.Bytes(), &logs))
	assert.Len(t, logs, 2)

	// Step 6: water log counts toward the daily total
	t.Log("Step 6: Log water")

	waterData := `{"amountMl": 500}`
	req6 := httptest.NewRequest(http.MethodPost, "/api/v1/hydration/log", strings.NewReader(waterData))
	req6.Header.Set("Content-Type", "application/json")
	req6 = req6.WithContext(context.WithValue(req6.Context(), middleware.ClerkIDKey, clerkID))
	rr6 := httptest.NewRecorder()

	hydrationHandler.AddWater(rr6, req6)
	require.Equal(t, http.StatusCreated, rr6.Code)

	var waterResult services.AddWaterResult
	require.NoError(t, json.Unmarshal(rr6.Body.Bytes(), &waterResult))
	assert.Equal(t, 500, waterResult.DailyTotalMl)

	// Step 7: user deletes their account via webhook
	t.Log("Step 7: User deletes account")

	deletePayload := helpers.MockClerkWebhookPayload("user.deleted", clerkID)
	req7 := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", bytes.NewReader(deletePayload))
	rr7 := httptest.NewRecorder()

	webhookHandler.HandleClerkWebhook(rr7, req7)
	assert.Equal(t, http.StatusOK, rr7.Code)

	_, err = profileService.GetProfileByClerkID(ctx, clerkID)
	assert.Error(t, err, "User should be deleted")
}
