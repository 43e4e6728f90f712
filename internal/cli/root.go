// Package cli is the folioctl command tree: schema migration, admin account
// recovery and theme inspection for a portfolio deployment.
package cli

import (
	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// configPath is the --config flag shared by every command.
var configPath string

var rootCmd = &cobra.Command{
	Use:           "folioctl",
	Short:         "Operate a portfolio deployment",
	Long:          `Run migrations, manage the dashboard admin account and inspect themes without starting the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig and openDB are replaced in tests.
var (
	loadConfig = func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Init(cfg.Log.Level)
		return cfg, nil
	}
	openDB = func(cfg *config.Config) (*gorm.DB, error) {
		return models.Open(&cfg.Database, gormlogger.Warn)
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
}

// SetVersion records the build version reported by `folioctl version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// withDB loads the config and opens the database, closing it after fn.
func withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(cfg, db)
}
