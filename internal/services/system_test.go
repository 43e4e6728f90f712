package services

import (
	"testing"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
)

func TestSystemConfigService_SetAndGet(t *testing.T) {
	svc := NewSystemConfigService(testDB(t))

	if got := svc.GetWithDefault("missing", "fallback"); got != "fallback" {
		t.Errorf("GetWithDefault() = %q", got)
	}

	if err := svc.Set("log_retention_days", "7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := svc.Set("log_retention_days", "14"); err != nil {
		t.Fatalf("Set() update error = %v", err)
	}
	if got := svc.GetInt("log_retention_days", 30); got != 14 {
		t.Errorf("GetInt() = %d, expected 14", got)
	}

	configs, err := svc.GetByGroup("system")
	if err != nil {
		t.Fatalf("GetByGroup() error = %v", err)
	}
	if len(configs) != 1 {
		t.Errorf("GetByGroup(system) = %d rows, expected the default group to be applied", len(configs))
	}
}

func TestSystemConfigService_EmptyKeyMatchesNothing(t *testing.T) {
	db := testDB(t)
	if err := models.Seed(db); err != nil {
		t.Fatal(err)
	}
	svc := NewSystemConfigService(db)

	if _, err := svc.Get(""); err == nil {
		t.Error("Get(\"\") matched a seeded row")
	}
	configs, err := svc.GetByGroup("")
	if err != nil {
		t.Fatalf("GetByGroup() error = %v", err)
	}
	if len(configs) != 0 {
		t.Errorf("GetByGroup(\"\") = %d rows, expected none", len(configs))
	}

	if err := svc.Set("email_smtp_host", "smtp.example.com"); err != nil {
		t.Fatal(err)
	}
	if got := svc.GetWithDefault("email_smtp_port", ""); got != "587" {
		t.Errorf("email_smtp_port = %q, Set must only touch its own key", got)
	}
}

func TestSystemConfigService_NotificationSettingsMasksSecrets(t *testing.T) {
	db := testDB(t)
	if err := models.Seed(db); err != nil {
		t.Fatal(err)
	}
	svc := NewSystemConfigService(db)

	password := "smtp-secret"
	hook := "https://hooks.example.com/abc"
	port := 465
	enabled := true
	if err := svc.UpdateNotificationSettings(&UpdateNotificationSettingsRequest{
		EmailEnabled: &enabled,
		SMTPPort:     &port,
		SMTPPassword: &password,
		WebhookURL:   &hook,
	}); err != nil {
		t.Fatalf("UpdateNotificationSettings() error = %v", err)
	}

	settings := svc.GetNotificationSettings()
	if !settings.EmailEnabled || settings.SMTPPort != 465 {
		t.Errorf("settings = %+v", settings)
	}
	if !settings.SMTPPasswordSet || !settings.WebhookURLSet {
		t.Error("secret flags not reported")
	}
	if settings.LogRetentionDays != 30 {
		t.Errorf("LogRetentionDays = %d, expected seeded 30", settings.LogRetentionDays)
	}

	empty := ""
	svc.UpdateNotificationSettings(&UpdateNotificationSettingsRequest{SMTPPassword: &empty})
	if got := svc.GetWithDefault("email_smtp_password", ""); got != password {
		t.Errorf("empty password overwrote the stored secret: %q", got)
	}
}

func TestSystemLog_WriteAndList(t *testing.T) {
	db := testDB(t)
	InitSystemLogger(db)
	t.Cleanup(func() { InitSystemLogger(nil) })

	uid := uint(1)
	LogInfo("project", "create", "created project", LogEntry{UserID: &uid, RequestID: "req-1", Extra: map[string]string{"slug": "x"}})
	LogWarning("auth", "login", "failed login", LogEntry{IP: "1.2.3.4"})
	LogError("contact", "notify", "smtp failure", LogEntry{})

	svc := NewSystemLogService(db)
	logs, total, err := svc.List(&SystemLogListRequest{Level: models.LogLevelWarning})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || logs[0].Module != "auth" {
		t.Errorf("List(warning) = %+v", logs)
	}

	logs, _, _ = svc.List(&SystemLogListRequest{Search: "created"})
	if len(logs) != 1 || logs[0].Extra != `{"slug":"x"}` || logs[0].RequestID != "req-1" {
		t.Errorf("List(search) = %+v", logs)
	}

	modules, err := svc.GetModules()
	if err != nil {
		t.Fatalf("GetModules() error = %v", err)
	}
	if len(modules) != 3 || modules[0] != "auth" {
		t.Errorf("GetModules() = %v", modules)
	}
}

func TestSystemLog_CleanupOldLogs(t *testing.T) {
	db := testDB(t)
	svc := NewSystemLogService(db)

	svc.Create(&models.SystemLog{Level: models.LogLevelInfo, Module: "m", Action: "old", CreatedAt: time.Now().AddDate(0, 0, -40)})
	svc.Create(&models.SystemLog{Level: models.LogLevelInfo, Module: "m", Action: "new", CreatedAt: time.Now()})

	if n, _ := svc.CleanupOldLogs(0); n != 0 {
		t.Errorf("CleanupOldLogs(0) deleted %d, expected disabled", n)
	}

	deleted, err := svc.CleanupOldLogs(svc.GetRetentionDays())
	if err != nil {
		t.Fatalf("CleanupOldLogs() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, expected 1", deleted)
	}
}

func TestScheduler_RegistersCleanup(t *testing.T) {
	s, err := NewScheduler(testDB(t))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	if s.Entries() != 1 {
		t.Errorf("Entries() = %d, expected 1", s.Entries())
	}
}
