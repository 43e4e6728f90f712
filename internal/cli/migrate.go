package cli

import (
	"fmt"

	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs the schema migration and seeds default system settings. Safe to run repeatedly.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	return withDB(func(cfg *config.Config, db *gorm.DB) error {
		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		if err := models.Seed(db); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
		cmd.Printf("Database migrated (%s)\n", cfg.Database.Driver)
		return nil
	})
}
