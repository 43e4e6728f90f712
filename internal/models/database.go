package models

import (
	"fmt"
	"time"

	"github.com/darkred-portfolio/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the configured database. Unique-constraint violations
// surface as gorm.ErrDuplicatedKey.
func Open(cfg *config.DatabaseConfig, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

func InitDB(cfg *config.DatabaseConfig, debug bool) error {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	db, err := Open(cfg, level)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Experience{},
		&Education{},
		&Project{},
		&ContactMessage{},
		&SiteSettings{},
		&SystemConfig{},
		&SystemLog{},
	)
}

func AutoMigrate() error {
	return Migrate(DB)
}

func GetDB() *gorm.DB {
	return DB
}

// DefaultSystemConfigs are seeded once; existing keys are never overwritten.
func DefaultSystemConfigs() []SystemConfig {
	return []SystemConfig{
		{Key: "email_enabled", Value: "false", Type: "bool", Group: "email", Label: "Enable Email Notifications"},
		{Key: "email_smtp_host", Value: "", Type: "string", Group: "email", Label: "SMTP Host"},
		{Key: "email_smtp_port", Value: "587", Type: "int", Group: "email", Label: "SMTP Port"},
		{Key: "email_smtp_username", Value: "", Type: "string", Group: "email", Label: "SMTP Username"},
		{Key: "email_smtp_password", Value: "", Type: "string", Group: "email", Label: "SMTP Password", Secret: true},
		{Key: "email_from_address", Value: "", Type: "string", Group: "email", Label: "From Address"},
		{Key: "email_from_name", Value: "Portfolio", Type: "string", Group: "email", Label: "From Name"},
		{Key: "email_use_tls", Value: "false", Type: "bool", Group: "email", Label: "Use implicit TLS (port 465)"},
		{Key: "notify_email_to", Value: "", Type: "string", Group: "notification", Label: "Notify Email (defaults to profile email)"},
		{Key: "notify_webhook_type", Value: "", Type: "string", Group: "notification", Label: "Chat Webhook Type (slack, discord, generic)"},
		{Key: "notify_webhook_url", Value: "", Type: "string", Group: "notification", Label: "Chat Webhook URL", Secret: true},
		{Key: "log_retention_days", Value: "30", Type: "int", Group: "system", Label: "System Log Retention Days"},
	}
}

// Seed inserts default runtime settings that are not present yet.
func Seed(db *gorm.DB) error {
	for _, cfg := range DefaultSystemConfigs() {
		var count int64
		if err := db.Model(&SystemConfig{}).Where(ConfigKey(cfg.Key)).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&cfg).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
