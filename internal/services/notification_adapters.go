package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/logger"
)

const (
	WebhookSlack   = "slack"
	WebhookDiscord = "discord"
	WebhookGeneric = "generic"

	discordMaxLen = 2000
	slackMaxLen   = 3000
)

// WebhookAdapter formats a contact message for one chat platform.
type WebhookAdapter interface {
	Send(client *http.Client, webhook string, msg *models.ContactMessage) error
}

func getAdapter(webhookType string) WebhookAdapter {
	switch webhookType {
	case WebhookSlack:
		return &slackAdapter{}
	case WebhookDiscord:
		return &discordAdapter{}
	default:
		return &genericAdapter{}
	}
}

func postJSONWithClient(client *http.Client, webhookURL string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	logger.Infof("[Notification] Webhook delivered, payload length: %d, status: %d", len(body), resp.StatusCode)
	return nil
}

var notificationHTTPClient = &http.Client{Timeout: 10 * time.Second}

// splitMessage cuts msg into chunks of at most maxLen bytes, preferring
// newline boundaries in the second half of each chunk.
func splitMessage(msg string, maxLen int) []string {
	if len(msg) <= maxLen {
		return []string{msg}
	}

	var parts []string
	remaining := msg

	for len(remaining) > 0 {
		if len(remaining) <= maxLen {
			parts = append(parts, remaining)
			break
		}

		chunk := remaining[:maxLen]
		breakPoint := maxLen

		for i := len(chunk) - 1; i > maxLen/2; i-- {
			if chunk[i] == '\n' {
				breakPoint = i + 1
				break
			}
		}

		parts = append(parts, remaining[:breakPoint])
		remaining = remaining[breakPoint:]
	}

	return parts
}

func buildContactText(msg *models.ContactMessage) string {
	var sb strings.Builder
	sb.WriteString("New contact message\n")
	sb.WriteString(fmt.Sprintf("From: %s <%s>\n", msg.Name, msg.Email))
	if msg.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject: %s\n", msg.Subject))
	}
	sb.WriteString("\n")
	sb.WriteString(msg.Message)
	return sb.String()
}

type slackAdapter struct{}

func (a *slackAdapter) Send(client *http.Client, webhook string, msg *models.ContactMessage) error {
	header := fmt.Sprintf("*New contact message*\n*From*: %s <%s>", msg.Name, msg.Email)
	if msg.Subject != "" {
		header += fmt.Sprintf("\n*Subject*: %s", msg.Subject)
	}

	parts := splitMessage(msg.Message, slackMaxLen)
	for i, part := range parts {
		title := header
		if i > 0 {
			title = fmt.Sprintf("*New contact message [%d/%d]*", i+1, len(parts))
		}
		payload := map[string]interface{}{
			"text": title,
			"blocks": []map[string]interface{}{
				{
					"type": "section",
					"text": map[string]string{"type": "mrkdwn", "text": title},
				},
				{
					"type": "section",
					"text": map[string]string{"type": "plain_text", "text": part},
				},
			},
		}
		if err := postJSONWithClient(client, webhook, payload); err != nil {
			return err
		}
	}
	return nil
}

type discordAdapter struct{}

func (a *discordAdapter) Send(client *http.Client, webhook string, msg *models.ContactMessage) error {
	for _, part := range splitMessage(buildContactText(msg), discordMaxLen) {
		payload := map[string]interface{}{
			"content": part,
		}
		if err := postJSONWithClient(client, webhook, payload); err != nil {
			return err
		}
	}
	return nil
}

type genericAdapter struct{}

func (a *genericAdapter) Send(client *http.Client, webhook string, msg *models.ContactMessage) error {
	payload := map[string]interface{}{
		"event":      "contact_message.created",
		"id":         msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"subject":    msg.Subject,
		"message":    msg.Message,
		"created_at": msg.CreatedAt,
	}
	return postJSONWithClient(client, webhook, payload)
}
