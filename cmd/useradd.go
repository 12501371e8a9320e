package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/infrastructure/config"
	"github.com/newsdesk/news-backend/internal/infrastructure/db/postgres"
)

var (
	useraddUsername string
	useraddPassword string
	useraddAdmin    bool
)

// useraddCmd is the provisioning path: accounts are only ever created
// through this command, never through the HTTP API.
var useraddCmd = &cobra.Command{
	Use:   "useradd",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if useraddUsername == "" || useraddPassword == "" {
			return fmt.Errorf("--username and --password are required")
		}

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		db, err := postgres.Open(cmd.Context(), cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()

		hash, err := bcrypt.GenerateFromPassword([]byte(useraddPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		repo := postgres.NewUserRepository(db)
		user, err := repo.Create(cmd.Context(), &domain.User{
			Username:     useraddUsername,
			PasswordHash: string(hash),
			IsAdmin:      useraddAdmin,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d, role %s)\n", user.Username, user.ID, user.Role())
		return nil
	},
}

func init() {
	useraddCmd.Flags().StringVar(&useraddUsername, "username", "", "username of the new account")
	useraddCmd.Flags().StringVar(&useraddPassword, "password", "", "password of the new account")
	useraddCmd.Flags().BoolVar(&useraddAdmin, "admin", false, "grant the admin role")
	rootCmd.AddCommand(useraddCmd)
}
