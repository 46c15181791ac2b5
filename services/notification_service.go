package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hydroQuestAPI/internal/achievement"
	"hydroQuestAPI/internal/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PushProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

type NotificationService struct {
	db   *pgxpool.Pool
	push PushProvider
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) SetPushProvider(p PushProvider) {
	s.push = p
}

// NotifyAchievementUnlocked records an unlock toast and pushes it to the
// user's devices. Delivery problems are logged, never returned: the unlock
// itself has already been persisted by the caller and must not fail over a
// toast.
func (s *NotificationService) NotifyAchievementUnlocked(ctx context.Context, userID uuid.UUID, def achievement.Definition) {
	title := fmt.Sprintf("%s %s", def.Icon, def.Name)
	message := def.Description
	data := map[string]any{
		"achievement_key": string(def.Key),
		"tier":            string(def.Tier),
		"xp_bonus":        achievement.XPBonus(def.Tier),
	}

	if err := s.createNotification(ctx, userID, notification.NotificationAchievement, title, message, data); err != nil {
		log.Printf("NotifyAchievementUnlocked: failed to store notification: %v", err)
	}

	if s.push == nil {
		return
	}

	tokens, err := s.deviceTokens(ctx, userID)
	if err != nil {
		log.Printf("NotifyAchievementUnlocked: failed to load device tokens: %v", err)
		return
	}

	if err := s.push.SendPush(ctx, tokens, title, message, data); err != nil {
		log.Printf("NotifyAchievementUnlocked: push failed: %v", err)
	}
}

// NotifyHealthAlert records a critical health alert and pushes it. Same
// delivery contract as achievement toasts: failures are logged, not returned.
func (s *NotificationService) NotifyHealthAlert(ctx context.Context, userID uuid.UUID, alertType, severity, message string) {
	title := "Health Alert"
	data := map[string]any{
		"alert_type": alertType,
		"severity":   severity,
	}

	if err := s.createNotification(ctx, userID, notification.NotificationHealthAlert, title, message, data); err != nil {
		log.Printf("NotifyHealthAlert: failed to store notification: %v", err)
	}

	if s.push == nil {
		return
	}

	tokens, err := s.deviceTokens(ctx, userID)
	if err != nil {
		log.Printf("NotifyHealthAlert: failed to load device tokens: %v", err)
		return
	}

	if err := s.push.SendPush(ctx, tokens, title, message, data); err != nil {
		log.Printf("NotifyHealthAlert: push failed: %v", err)
	}
}

func (s *NotificationService) createNotification(ctx context.Context, userID uuid.UUID, notifType notification.NotificationType, title, message string, data map[string]any) error {
	dataJSON, _ := json.Marshal(data)

	query := `
	INSERT INTO notifications (id, user_id, type, title, message, is_read, data, created_at)
	VALUES ($1, $2, $3, $4, $5, false, $6, $7)
	`

	_, err := s.db.Exec(ctx, query, uuid.New(), userID, notifType, title, message, dataJSON, time.Now())
	return err
}

func (s *NotificationService) deviceTokens(ctx context.Context, userID uuid.UUID) ([]notification.DeviceToken, error) {
	rows, err := s.db.Query(ctx, `SELECT user_id, token, platform FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.UserID, &t.Token, &t.Platform); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func (s *NotificationService) RegisterDevice(ctx context.Context, clerkID string, req *notification.RegisterDeviceRequest) error {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	query := `
	INSERT INTO device_tokens (user_id, token, platform, created_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id, token)
	DO UPDATE SET platform = $3
	`

	_, err = s.db.Exec(ctx, query, userID, req.Token, req.Platform)
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

func (s *NotificationService) GetNotifications(ctx context.Context, clerkID string) ([]*notification.Notification, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	query := `
	SELECT id, user_id, type, title, message, is_read, data, created_at
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT 50
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		n := &notification.Notification{}
		var dataJSON []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.IsRead, &dataJSON, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &n.Data); err != nil {
				log.Printf("GetNotifications: bad data payload for %s: %v", n.ID, err)
			}
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
