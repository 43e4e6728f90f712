package cli

import (
	"fmt"

	"github.com/darkred-portfolio/backend/internal/config"
	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account or reset its password",
	Long:  `Creates the named dashboard admin. An existing account with that name is restored, promoted to admin and given the new password.`,
	Args:  cobra.NoArgs,
	RunE:  runCreateAdmin,
}

var (
	adminUsername string
	adminPassword string
	adminEmail    string
)

func init() {
	createAdminCmd.Flags().StringVarP(&adminUsername, "username", "u", "admin", "Account name")
	createAdminCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "New password")
	createAdminCmd.Flags().StringVarP(&adminEmail, "email", "e", "", "Contact email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	return withDB(func(cfg *config.Config, db *gorm.DB) error {
		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		auth := services.NewAuthService(db, &cfg.JWT, nil)
		user, err := auth.CreateOrResetAdmin(adminUsername, adminPassword, adminEmail)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		cmd.Printf("Admin %q ready (id %d)\n", user.Username, user.ID)
		return nil
	})
}
