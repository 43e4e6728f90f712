package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

type EmailService struct {
	db   *gorm.DB
	send func(cfg *EmailConfig, to []string, msg []byte) error
}

type EmailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

func NewEmailService(db *gorm.DB) *EmailService {
	return &EmailService{db: db, send: sendSMTP}
}

func (s *EmailService) GetConfig() (*EmailConfig, error) {
	config := &EmailConfig{}

	var configs []models.SystemConfig
	if err := s.db.Where(models.ConfigGroup("email")).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to load email settings: %w", err)
	}

	for _, c := range configs {
		switch c.Key {
		case "email_enabled":
			config.Enabled = c.Value == "true"
		case "email_smtp_host":
			config.Host = c.Value
		case "email_smtp_port":
			if port, err := strconv.Atoi(c.Value); err == nil {
				config.Port = port
			}
		case "email_smtp_username":
			config.Username = c.Value
		case "email_smtp_password":
			config.Password = c.Value
		case "email_from_address":
			config.From = c.Value
		case "email_from_name":
			config.FromName = c.Value
		case "email_use_tls":
			config.UseTLS = c.Value == "true"
		}
	}

	if config.Port == 0 {
		config.Port = 587
	}
	if config.From == "" {
		config.From = config.Username
	}

	return config, nil
}

// Ready reports whether mail can be sent with the stored settings.
func (c *EmailConfig) Ready() bool {
	return c.Enabled && c.Host != "" && c.From != ""
}

var contactEmailTmpl = template.Must(template.New("contact").Parse(`<html><body style="font-family: Arial, sans-serif;">
<h2>New message from your portfolio</h2>
<table style="border-collapse: collapse; margin-bottom: 20px;">
<tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Name</td><td style="padding: 8px; border: 1px solid #ddd;">{{.Name}}</td></tr>
<tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Email</td><td style="padding: 8px; border: 1px solid #ddd;"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
{{if .Subject}}<tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Subject</td><td style="padding: 8px; border: 1px solid #ddd;">{{.Subject}}</td></tr>{{end}}
<tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">Received</td><td style="padding: 8px; border: 1px solid #ddd;">{{.CreatedAt.Format "2006-01-02 15:04 MST"}}</td></tr>
</table>
<div style="background: #f9f9f9; padding: 16px; border-radius: 4px; white-space: pre-wrap;">{{.Message}}</div>
</body></html>`))

func contactSubject(msg *models.ContactMessage) string {
	if msg.Subject != "" {
		return fmt.Sprintf("[Portfolio] %s", msg.Subject)
	}
	return fmt.Sprintf("[Portfolio] New message from %s", msg.Name)
}

func buildContactEmailBody(msg *models.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactNotification mails msg to recipients. It is a no-op when email
// is disabled or unconfigured.
func (s *EmailService) SendContactNotification(msg *models.ContactMessage, recipients []string) error {
	config, err := s.GetConfig()
	if err != nil {
		return err
	}
	if !config.Ready() || len(recipients) == 0 {
		return nil
	}

	body, err := buildContactEmailBody(msg)
	if err != nil {
		return err
	}

	raw := buildMIMEMessage(config, recipients, contactSubject(msg), body, msg.Email)
	if err := s.send(config, recipients, raw); err != nil {
		logger.Errorf("[Email] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Email] Sent contact notification to %v", recipients)
	return nil
}

func buildMIMEMessage(config *EmailConfig, to []string, subject, body, replyTo string) []byte {
	from := config.From
	if config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", config.FromName), config.From)
	}

	headers := [][2]string{
		{"From", from},
		{"To", strings.Join(to, ", ")},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}
	if replyTo != "" && !strings.ContainsAny(replyTo, "\r\n") {
		headers = append(headers, [2]string{"Reply-To", replyTo})
	}

	var message strings.Builder
	for _, h := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", h[0], h[1]))
	}
	message.WriteString("\r\n")
	message.WriteString(body)
	return []byte(message.String())
}

func sendSMTP(config *EmailConfig, to []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	if !config.UseTLS {
		return smtp.SendMail(addr, auth, config.From, to, msg)
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: config.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, config.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(config.From); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
