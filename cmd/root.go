package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "News publishing backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best effort; the environment wins over .env values.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
