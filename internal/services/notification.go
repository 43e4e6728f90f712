package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService tells the site owner about new contact messages by
// email and, when configured, by chat webhook.
type NotificationService struct {
	db        *gorm.DB
	email     *EmailService
	configSvc *SystemConfigService
	client    *http.Client
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		db:        db,
		email:     NewEmailService(db),
		configSvc: NewSystemConfigService(db),
		client:    notificationHTTPClient,
	}
}

// Recipient is notify_email_to, or the profile email when unset. It is empty
// while the profile still carries the placeholder address.
func (s *NotificationService) Recipient() string {
	if to := s.configSvc.GetWithDefault("notify_email_to", ""); to != "" {
		return to
	}
	profile, err := NewProfileService(s.db).Get()
	if err != nil || profile.Email == models.PlaceholderEmail {
		return ""
	}
	return profile.Email
}

// SendContactNotification is the TaskProcessor for contact:notify tasks.
// A message deleted before processing is not an error.
func (s *NotificationService) SendContactNotification(ctx context.Context, task *ContactNotifyTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg models.ContactMessage
	if err := s.db.WithContext(ctx).First(&msg, task.MessageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("[Notification] Message %d no longer exists, skipping", task.MessageID)
			return nil
		}
		return err
	}

	var errs []error

	if to := s.Recipient(); to != "" {
		if err := s.email.SendContactNotification(&msg, []string{to}); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}

	if webhook := s.configSvc.GetWithDefault("notify_webhook_url", ""); webhook != "" {
		webhookType := s.configSvc.GetWithDefault("notify_webhook_type", WebhookGeneric)
		if err := getAdapter(webhookType).Send(s.client, webhook, &msg); err != nil {
			errs = append(errs, fmt.Errorf("%s webhook: %w", webhookType, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
