package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "userhubctl",
	Short: "UserHub server and administration tool",
	Long: `userhubctl runs and administers the UserHub registration service.

Common commands:
  userhubctl server      Run the application server
  userhubctl db migrate  Create and/or upgrade the database schema
  userhubctl sweep       Run a one-shot retention sweep`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// .env files are a development convenience; deployments set the
	// environment directly
	_ = godotenv.Load()
	Execute()
}
