package services

import (
	"errors"
	"strconv"

	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

func (s *SystemConfigService) Get(key string) (string, error) {
	var cfg models.SystemConfig
	if err := s.db.Where(models.ConfigKey(key)).First(&cfg).Error; err != nil {
		return "", err
	}
	return cfg.Value, nil
}

func (s *SystemConfigService) GetWithDefault(key, defaultValue string) string {
	value, err := s.Get(key)
	if err != nil {
		return defaultValue
	}
	return value
}

func (s *SystemConfigService) GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(s.GetWithDefault(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func (s *SystemConfigService) GetBool(key string) bool {
	b, _ := strconv.ParseBool(s.GetWithDefault(key, "false"))
	return b
}

func (s *SystemConfigService) Set(key, value string) error {
	var cfg models.SystemConfig
	err := s.db.Where(models.ConfigKey(key)).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.SystemConfig{Key: key, Type: "string"}
		for _, d := range models.DefaultSystemConfigs() {
			if d.Key == key {
				cfg = d
				break
			}
		}
		cfg.Value = value
		return s.db.Create(&cfg).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&cfg).Update("value", value).Error
}

func (s *SystemConfigService) GetByGroup(group string) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := s.db.Where(models.ConfigGroup(group)).Order("id").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// NotificationSettingsResponse never echoes secrets; it only reports whether
// they are set.
type NotificationSettingsResponse struct {
	EmailEnabled     bool   `json:"email_enabled"`
	SMTPHost         string `json:"smtp_host"`
	SMTPPort         int    `json:"smtp_port"`
	SMTPUsername     string `json:"smtp_username"`
	SMTPPasswordSet  bool   `json:"smtp_password_set"`
	FromAddress      string `json:"from_address"`
	FromName         string `json:"from_name"`
	UseTLS           bool   `json:"use_tls"`
	NotifyEmailTo    string `json:"notify_email_to"`
	WebhookType      string `json:"webhook_type"`
	WebhookURLSet    bool   `json:"webhook_url_set"`
	LogRetentionDays int    `json:"log_retention_days"`
}

func (s *SystemConfigService) GetNotificationSettings() *NotificationSettingsResponse {
	return &NotificationSettingsResponse{
		EmailEnabled:     s.GetBool("email_enabled"),
		SMTPHost:         s.GetWithDefault("email_smtp_host", ""),
		SMTPPort:         s.GetInt("email_smtp_port", 587),
		SMTPUsername:     s.GetWithDefault("email_smtp_username", ""),
		SMTPPasswordSet:  s.GetWithDefault("email_smtp_password", "") != "",
		FromAddress:      s.GetWithDefault("email_from_address", ""),
		FromName:         s.GetWithDefault("email_from_name", ""),
		UseTLS:           s.GetBool("email_use_tls"),
		NotifyEmailTo:    s.GetWithDefault("notify_email_to", ""),
		WebhookType:      s.GetWithDefault("notify_webhook_type", ""),
		WebhookURLSet:    s.GetWithDefault("notify_webhook_url", "") != "",
		LogRetentionDays: s.GetInt("log_retention_days", defaultRetentionDays),
	}
}

type UpdateNotificationSettingsRequest struct {
	EmailEnabled     *bool   `json:"email_enabled"`
	SMTPHost         *string `json:"smtp_host"`
	SMTPPort         *int    `json:"smtp_port" binding:"omitempty,min=1,max=65535"`
	SMTPUsername     *string `json:"smtp_username"`
	SMTPPassword     *string `json:"smtp_password"`
	FromAddress      *string `json:"from_address" binding:"omitempty,email"`
	FromName         *string `json:"from_name"`
	UseTLS           *bool   `json:"use_tls"`
	NotifyEmailTo    *string `json:"notify_email_to" binding:"omitempty,email"`
	WebhookType      *string `json:"webhook_type" binding:"omitempty,oneof=slack discord generic"`
	WebhookURL       *string `json:"webhook_url" binding:"omitempty,url"`
	LogRetentionDays *int    `json:"log_retention_days" binding:"omitempty,min=0,max=3650"`
}

// UpdateNotificationSettings writes only the fields present in req. Empty
// secrets leave the stored value untouched.
func (s *SystemConfigService) UpdateNotificationSettings(req *UpdateNotificationSettingsRequest) error {
	updates := map[string]string{}
	if req.EmailEnabled != nil {
		updates["email_enabled"] = strconv.FormatBool(*req.EmailEnabled)
	}
	if req.SMTPHost != nil {
		updates["email_smtp_host"] = *req.SMTPHost
	}
	if req.SMTPPort != nil {
		updates["email_smtp_port"] = strconv.Itoa(*req.SMTPPort)
	}
	if req.SMTPUsername != nil {
		updates["email_smtp_username"] = *req.SMTPUsername
	}
	if req.SMTPPassword != nil && *req.SMTPPassword != "" {
		updates["email_smtp_password"] = *req.SMTPPassword
	}
	if req.FromAddress != nil {
		updates["email_from_address"] = *req.FromAddress
	}
	if req.FromName != nil {
		updates["email_from_name"] = *req.FromName
	}
	if req.UseTLS != nil {
		updates["email_use_tls"] = strconv.FormatBool(*req.UseTLS)
	}
	if req.NotifyEmailTo != nil {
		updates["notify_email_to"] = *req.NotifyEmailTo
	}
	if req.WebhookType != nil {
		updates["notify_webhook_type"] = *req.WebhookType
	}
	if req.WebhookURL != nil && *req.WebhookURL != "" {
		updates["notify_webhook_url"] = *req.WebhookURL
	}
	if req.LogRetentionDays != nil {
		updates["log_retention_days"] = strconv.Itoa(*req.LogRetentionDays)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txSvc := NewSystemConfigService(tx)
		for key, value := range updates {
			if err := txSvc.Set(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}
