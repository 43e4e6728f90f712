package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
	"gorm.io/gorm"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name          string
		msg           string
		maxLen        int
		expectedParts int
	}{
		{
			name:          "short message no split",
			msg:           "short message",
			maxLen:        100,
			expectedParts: 1,
		},
		{
			name:          "exact length no split",
			msg:           "12345",
			maxLen:        5,
			expectedParts: 1,
		},
		{
			name:          "split into two parts",
			msg:           "1234567890",
			maxLen:        5,
			expectedParts: 2,
		},
		{
			name:          "split at newline",
			msg:           "line1\nline2\nline3",
			maxLen:        10,
			expectedParts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := splitMessage(tt.msg, tt.maxLen)
			if len(parts) != tt.expectedParts {
				t.Errorf("splitMessage() returned %d parts, expected %d", len(parts), tt.expectedParts)
			}
			for _, part := range parts {
				if len(part) > tt.maxLen {
					t.Errorf("part length %d exceeds maxLen %d", len(part), tt.maxLen)
				}
			}
		})
	}
}

func TestSplitMessage_PreservesContent(t *testing.T) {
	original := "This is a test message that should be split into multiple parts for testing purposes."
	parts := splitMessage(original, 30)

	if reconstructed := strings.Join(parts, ""); reconstructed != original {
		t.Errorf("reconstructed message differs from original\noriginal: %q\nreconstructed: %q", original, reconstructed)
	}
}

func sampleMessage() *models.ContactMessage {
	return &models.ContactMessage{
		ID:        9,
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "<script>alert(1)</script> nice site",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildContactEmailBody_EscapesContent(t *testing.T) {
	body, err := buildContactEmailBody(sampleMessage())
	if err != nil {
		t.Fatalf("buildContactEmailBody() error = %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("message content must be HTML-escaped")
	}
	for _, want := range []string{"Ada", "mailto:ada@example.com", "Hello", "2024-05-01 10:00 UTC"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestContactSubject(t *testing.T) {
	msg := sampleMessage()
	if got := contactSubject(msg); got != "[Portfolio] Hello" {
		t.Errorf("contactSubject() = %q", got)
	}
	msg.Subject = ""
	if got := contactSubject(msg); got != "[Portfolio] New message from Ada" {
		t.Errorf("contactSubject() = %q", got)
	}
}

func TestBuildMIMEMessage_RejectsHeaderInjection(t *testing.T) {
	cfg := &EmailConfig{From: "site@example.com", FromName: "Portfolio"}
	raw := string(buildMIMEMessage(cfg, []string{"me@example.com"}, "Hi", "<p>x</p>", "evil@example.com\r\nBcc: victim@example.com"))
	if strings.Contains(raw, "Bcc:") {
		t.Error("reply-to with CRLF must be dropped")
	}
	if !strings.Contains(raw, "To: me@example.com\r\n") {
		t.Error("missing To header")
	}
}

type capturedWebhook struct {
	mu       sync.Mutex
	payloads []map[string]interface{}
}

func newWebhookServer(t *testing.T, status int) (*httptest.Server, *capturedWebhook) {
	t.Helper()
	captured := &capturedWebhook{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		json.Unmarshal(body, &payload)
		captured.mu.Lock()
		captured.payloads = append(captured.payloads, payload)
		captured.mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func TestWebhookAdapters(t *testing.T) {
	tests := []struct {
		webhookType string
		key         string
		contains    string
	}{
		{webhookType: WebhookSlack, key: "text", contains: "Ada"},
		{webhookType: WebhookDiscord, key: "content", contains: "nice site"},
		{webhookType: WebhookGeneric, key: "event", contains: "contact_message.created"},
	}

	for _, tt := range tests {
		t.Run(tt.webhookType, func(t *testing.T) {
			srv, captured := newWebhookServer(t, http.StatusOK)
			if err := getAdapter(tt.webhookType).Send(srv.Client(), srv.URL, sampleMessage()); err != nil {
				t.Fatalf("Send() error = %v", err)
			}
			if len(captured.payloads) != 1 {
				t.Fatalf("payloads = %d, expected 1", len(captured.payloads))
			}
			got, _ := captured.payloads[0][tt.key].(string)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("%s = %q, expected to contain %q", tt.key, got, tt.contains)
			}
		})
	}
}

func TestDiscordAdapter_SplitsLongMessages(t *testing.T) {
	srv, captured := newWebhookServer(t, http.StatusNoContent)
	msg := sampleMessage()
	msg.Message = strings.Repeat("x", discordMaxLen+500)

	if err := (&discordAdapter{}).Send(srv.Client(), srv.URL, msg); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(captured.payloads) != 2 {
		t.Errorf("payloads = %d, expected 2", len(captured.payloads))
	}
}

func TestPostJSON_ErrorStatus(t *testing.T) {
	srv, _ := newWebhookServer(t, http.StatusBadRequest)
	if err := postJSONWithClient(srv.Client(), srv.URL, map[string]string{"a": "b"}); err == nil {
		t.Error("expected error for 400 response")
	}
}

func TestNotificationService_SendContactNotification(t *testing.T) {
	db := testDB(t)
	srv, captured := newWebhookServer(t, http.StatusOK)

	cfg := NewSystemConfigService(db)
	cfg.Set("notify_webhook_type", WebhookDiscord)
	cfg.Set("notify_webhook_url", srv.URL)
	cfg.Set("email_enabled", "true")
	cfg.Set("email_smtp_host", "smtp.example.com")
	cfg.Set("email_from_address", "site@example.com")

	setProfileEmail(t, db, "owner@example.com")

	contact := NewContactService(db, nil, nil)
	msg, err := contact.Submit(validSubmission(), "")
	if err != nil {
		t.Fatal(err)
	}

	svc := NewNotificationService(db)
	var sentTo []string
	svc.email.send = func(_ *EmailConfig, to []string, raw []byte) error {
		sentTo = to
		return nil
	}

	if err := svc.SendContactNotification(context.Background(), &ContactNotifyTask{MessageID: msg.ID}); err != nil {
		t.Fatalf("SendContactNotification() error = %v", err)
	}

	if len(sentTo) != 1 || sentTo[0] != "owner@example.com" {
		t.Errorf("email sent to %v, expected profile email fallback", sentTo)
	}
	if len(captured.payloads) != 1 {
		t.Errorf("webhook payloads = %d, expected 1", len(captured.payloads))
	}
}

func setProfileEmail(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	if _, err := NewProfileService(db).Get(); err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&models.Profile{}).Where("id = ?", models.ProfileID).Update("email", email).Error; err != nil {
		t.Fatal(err)
	}
}

func TestNotificationService_Recipient(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)

	if got := svc.Recipient(); got != "" {
		t.Errorf("Recipient() = %q with placeholder profile, expected empty", got)
	}

	setProfileEmail(t, db, "owner@example.com")
	if got := svc.Recipient(); got != "owner@example.com" {
		t.Errorf("Recipient() = %q, expected profile email", got)
	}

	NewSystemConfigService(db).Set("notify_email_to", "inbox@example.com")
	if got := svc.Recipient(); got != "inbox@example.com" {
		t.Errorf("Recipient() = %q, expected notify_email_to", got)
	}
}

func TestNotificationService_PlaceholderProfileSkipsEmail(t *testing.T) {
	db := testDB(t)
	cfg := NewSystemConfigService(db)
	cfg.Set("email_enabled", "true")
	cfg.Set("email_smtp_host", "smtp.example.com")
	cfg.Set("email_from_address", "site@example.com")

	msg, err := NewContactService(db, nil, nil).Submit(validSubmission(), "")
	if err != nil {
		t.Fatal(err)
	}

	svc := NewNotificationService(db)
	sent := false
	svc.email.send = func(*EmailConfig, []string, []byte) error {
		sent = true
		return nil
	}

	if err := svc.SendContactNotification(context.Background(), &ContactNotifyTask{MessageID: msg.ID}); err != nil {
		t.Fatalf("SendContactNotification() error = %v", err)
	}
	if sent {
		t.Error("email sent to the placeholder profile address")
	}
}

func TestEmailService_ConfigLoadError(t *testing.T) {
	db := testDB(t)
	svc := NewEmailService(db)
	svc.send = func(*EmailConfig, []string, []byte) error {
		t.Error("send called after config load failed")
		return nil
	}
	if err := db.Migrator().DropTable(&models.SystemConfig{}); err != nil {
		t.Fatal(err)
	}

	msg := &models.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "hi"}
	if err := svc.SendContactNotification(msg, []string{"owner@example.com"}); err == nil {
		t.Error("expected error when email settings cannot be read")
	}
}

func TestNotificationService_MissingMessageIsSkipped(t *testing.T) {
	svc := NewNotificationService(testDB(t))
	if err := svc.SendContactNotification(context.Background(), &ContactNotifyTask{MessageID: 404}); err != nil {
		t.Errorf("SendContactNotification() = %v, expected nil for deleted message", err)
	}
}

func TestNotificationService_ReportsWebhookFailure(t *testing.T) {
	db := testDB(t)
	srv, _ := newWebhookServer(t, http.StatusInternalServerError)
	cfg := NewSystemConfigService(db)
	cfg.Set("notify_webhook_url", srv.URL)

	msg, _ := NewContactService(db, nil, nil).Submit(validSubmission(), "")
	svc := NewNotificationService(db)
	if err := svc.SendContactNotification(context.Background(), &ContactNotifyTask{MessageID: msg.ID}); err == nil {
		t.Error("expected webhook failure to be returned for retry")
	}
}
